// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kccr/storefront/internal/models"
	"github.com/kccr/storefront/internal/utils"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Category          string `json:"categoria" validate:"required,max=100"`
	Brand             string `json:"marca" validate:"required,max=255"`
	Detail            string `json:"detalle"`
	ImageURL          string `json:"imgProd" validate:"omitempty,url"`
	Seal              string `json:"sello"`
	Certifier         string `json:"certifica"`
	Pol               string `json:"pol"`
	SealLogoURL       string `json:"logoSello" validate:"omitempty,url"`
	GlutenFree        string `json:"gf"`
	GlutenFreeLogoURL string `json:"logoGf" validate:"omitempty,url"`
	Store             string `json:"tienda"`
	WeightLabel       string `json:"pesaj"`
}

type UpdateProductRequest struct {
	Category          *string `json:"categoria" validate:"omitempty,max=100"`
	Brand             *string `json:"marca" validate:"omitempty,max=255"`
	Detail            *string `json:"detalle"`
	ImageURL          *string `json:"imgProd" validate:"omitempty,url"`
	Seal              *string `json:"sello"`
	Certifier         *string `json:"certifica"`
	Pol               *string `json:"pol"`
	SealLogoURL       *string `json:"logoSello" validate:"omitempty,url"`
	GlutenFree        *string `json:"gf"`
	GlutenFreeLogoURL *string `json:"logoGf" validate:"omitempty,url"`
	Store             *string `json:"tienda"`
	WeightLabel       *string `json:"pesaj"`
}

type ProductSearchParams struct {
	Category    string
	Brand       string
	GlutenFree  string
	Store       string
	WeightLabel string
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns the whole catalog ordered by brand. The mobile app prefers
// the paged variant; the admin panel still consumes this.
func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Order("brand asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListPaged returns one slice of the catalog plus the total row count.
//
// TODO: add id as a secondary sort key. Rows with equal brand have no
// deterministic order, so a page boundary can duplicate or skip rows when
// the catalog changes between requests. The legacy backend has the same
// ordering, and the client de-duplicates by id, so this is kept as-is until
// the admin panel is migrated too.
func (s *ProductService) ListPaged(params utils.PaginationParams) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := utils.ApplyPagination(s.db.Order("brand asc"), params)
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// Search runs the server-side case-insensitive contains filters. Unset
// params never narrow the result.
func (s *ProductService) Search(params ProductSearchParams) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	if params.Category != "" {
		query = query.Where("category ILIKE ?", "%"+params.Category+"%")
	}
	if params.Brand != "" {
		query = query.Where("brand ILIKE ?", "%"+params.Brand+"%")
	}
	if params.GlutenFree != "" {
		query = query.Where("gluten_free ILIKE ?", "%"+params.GlutenFree+"%")
	}
	if params.Store != "" {
		query = query.Where("store ILIKE ?", "%"+params.Store+"%")
	}
	if params.WeightLabel != "" {
		query = query.Where("weight_label ILIKE ?", "%"+params.WeightLabel+"%")
	}

	var products []models.Product
	if err := query.Order("brand asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Create(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Category:          req.Category,
		Brand:             req.Brand,
		Detail:            req.Detail,
		ImageURL:          req.ImageURL,
		Seal:              req.Seal,
		Certifier:         req.Certifier,
		Pol:               req.Pol,
		SealLogoURL:       req.SealLogoURL,
		GlutenFree:        req.GlutenFree,
		GlutenFreeLogoURL: req.GlutenFreeLogoURL,
		Store:             req.Store,
		WeightLabel:       req.WeightLabel,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *ProductService) Update(id uint, req *UpdateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Detail != nil {
		updates["detail"] = *req.Detail
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Seal != nil {
		updates["seal"] = *req.Seal
	}
	if req.Certifier != nil {
		updates["certifier"] = *req.Certifier
	}
	if req.Pol != nil {
		updates["pol"] = *req.Pol
	}
	if req.SealLogoURL != nil {
		updates["seal_logo_url"] = *req.SealLogoURL
	}
	if req.GlutenFree != nil {
		updates["gluten_free"] = *req.GlutenFree
	}
	if req.GlutenFreeLogoURL != nil {
		updates["gluten_free_logo_url"] = *req.GlutenFreeLogoURL
	}
	if req.Store != nil {
		updates["store"] = *req.Store
	}
	if req.WeightLabel != nil {
		updates["weight_label"] = *req.WeightLabel
	}

	if len(updates) > 0 {
		if err := s.db.Model(product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return product, nil
}

func (s *ProductService) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// SetImageURL stores the uploaded image location on the product row.
func (s *ProductService) SetImageURL(id uint, url string) (*models.Product, error) {
	product, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(product).Update("image_url", url).Error; err != nil {
		return nil, fmt.Errorf("failed to update product image: %w", err)
	}
	return product, nil
}
