// internal/services/admin_service.go
package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/kccr/storefront/internal/models"
	"github.com/kccr/storefront/internal/utils"
)

type AdminService struct {
	db *gorm.DB
}

type DashboardStats struct {
	TotalProducts     int64 `json:"total_products"`
	TotalBrands       int64 `json:"total_brands"`
	TotalCategories   int64 `json:"total_categories"`
	TotalNews         int64 `json:"total_news"`
	PublishedNews     int64 `json:"published_news"`
	TotalUsers        int64 `json:"total_users"`
	NewUsersThisMonth int64 `json:"new_users_this_month"`
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	if err := s.db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Product{}).Distinct("brand").Count(&stats.TotalBrands).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Product{}).Distinct("category").Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.News{}).Count(&stats.TotalNews).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.News{}).Where("published = ?", true).Count(&stats.PublishedNews).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.User{}).
		Where("created_at >= ?", monthStart).
		Count(&stats.NewUsersThisMonth).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *AdminService) ListUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	query := utils.ApplyPagination(s.db.Order("created_at desc"), params)
	if err := query.Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
