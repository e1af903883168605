// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields. Product ids are numeric and server-assigned;
// the mobile client treats them as opaque strings.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)
