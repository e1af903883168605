// internal/handlers/news.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kccr/storefront/internal/services"
	"github.com/kccr/storefront/internal/utils"
)

type NewsHandler struct {
	newsService *services.NewsService
}

func NewNewsHandler(newsService *services.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// GET /api/noticias
func (h *NewsHandler) List(c *gin.Context) {
	news, err := h.newsService.List(false)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	c.JSON(http.StatusOK, news)
}

// GET /api/noticias/:id
func (h *NewsHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "News item")
		return
	}

	item, err := h.newsService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			utils.NotFoundResponse(c, "News item")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, item)
}

// GET /api/admin/noticias
func (h *NewsHandler) ListAll(c *gin.Context) {
	news, err := h.newsService.List(true)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}
	c.JSON(http.StatusOK, news)
}

// POST /api/admin/noticias
func (h *NewsHandler) Create(c *gin.Context) {
	userID, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	item, err := h.newsService.Create(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// PUT /api/admin/noticias/:id
func (h *NewsHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "News item")
		return
	}

	var req services.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	item, err := h.newsService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			utils.NotFoundResponse(c, "News item")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DELETE /api/admin/noticias/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		utils.NotFoundResponse(c, "News item")
		return
	}

	if err := h.newsService.Delete(id); err != nil {
		if errors.Is(err, services.ErrNewsNotFound) {
			utils.NotFoundResponse(c, "News item")
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "News item deleted"})
}
