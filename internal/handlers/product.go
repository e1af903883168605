// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kccr/storefront/internal/services"
	"github.com/kccr/storefront/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// GET /api/productos
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /api/productos/paged
func (h *ProductHandler) ListPaged(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	products, total, err := h.productService.ListPaged(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePagedResult(products, total, params))
}

// GET /api/productos/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, product)
}

// GET /api/productos/search
func (h *ProductHandler) Search(c *gin.Context) {
	params := services.ProductSearchParams{
		Category:    c.Query("categoria"),
		Brand:       c.Query("marca"),
		GlutenFree:  c.Query("gf"),
		Store:       c.Query("tienda"),
		WeightLabel: c.Query("pesaj"),
	}

	products, err := h.productService.Search(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, products)
}

// POST /api/admin/productos
func (h *ProductHandler) Create(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	product, err := h.productService.Create(&req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// PUT /api/admin/productos/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	product, err := h.productService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DELETE /api/admin/productos/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	if err := h.productService.Delete(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// POST /api/admin/productos/:id/image
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Image file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadImage(file, header, "productos")
	if err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			utils.ErrorResponse(c, http.StatusServiceUnavailable, "Image uploads are not available", nil)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	product, err := h.productService.SetImageURL(id, result.URL)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"upload":  result,
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
