// internal/models/news.go
package models

import (
	"github.com/lib/pq"
)

// News is a community announcement shown in the app's news feed.
type News struct {
	BaseModel
	Title     string         `json:"titulo" gorm:"size:255;not null"`
	Body      string         `json:"cuerpo" gorm:"type:text;not null"`
	ImageURL  string         `json:"imagen" gorm:"size:512"`
	Tags      pq.StringArray `json:"tags" gorm:"type:text[]"`
	Published bool           `json:"publicada" gorm:"default:true;index"`
	AuthorID  uint           `json:"autor_id" gorm:"index"`

	Author User `json:"autor,omitempty" gorm:"foreignKey:AuthorID"`
}
