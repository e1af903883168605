// internal/services/news_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/kccr/storefront/internal/models"
	"github.com/kccr/storefront/internal/utils"
)

var ErrNewsNotFound = errors.New("news item not found")

type NewsService struct {
	db *gorm.DB
}

type CreateNewsRequest struct {
	Title     string   `json:"titulo" validate:"required,max=255"`
	Body      string   `json:"cuerpo" validate:"required"`
	ImageURL  string   `json:"imagen" validate:"omitempty,url"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"publicada"`
}

type UpdateNewsRequest struct {
	Title     *string  `json:"titulo" validate:"omitempty,max=255"`
	Body      *string  `json:"cuerpo"`
	ImageURL  *string  `json:"imagen" validate:"omitempty,url"`
	Tags      []string `json:"tags"`
	Published *bool    `json:"publicada"`
}

func NewNewsService(db *gorm.DB) *NewsService {
	return &NewsService{db: db}
}

// List returns published items, newest first. Admins see drafts too.
func (s *NewsService) List(includeDrafts bool) ([]models.News, error) {
	query := s.db.Order("created_at desc")
	if !includeDrafts {
		query = query.Where("published = ?", true)
	}

	var news []models.News
	if err := query.Find(&news).Error; err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}
	return news, nil
}

func (s *NewsService) GetByID(id uint) (*models.News, error) {
	var item models.News
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func (s *NewsService) Create(authorID uint, req *CreateNewsRequest) (*models.News, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	item := &models.News{
		Title:     req.Title,
		Body:      req.Body,
		ImageURL:  req.ImageURL,
		Tags:      pq.StringArray(req.Tags),
		Published: published,
		AuthorID:  authorID,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}
	return item, nil
}

func (s *NewsService) Update(id uint, req *UpdateNewsRequest) (*models.News, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}

	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update news: %w", err)
		}
	}

	return item, nil
}

func (s *NewsService) Delete(id uint) error {
	result := s.db.Delete(&models.News{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete news: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}
	return nil
}
