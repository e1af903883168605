// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kccr/storefront/internal/config"
	"github.com/kccr/storefront/internal/handlers"
	"github.com/kccr/storefront/internal/middleware"
	"github.com/kccr/storefront/internal/services"
	"github.com/kccr/storefront/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Object storage unavailable, image uploads disabled")
		storageService, _ = services.NewStorageService(&config.Config{})
	}

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	newsService := services.NewNewsService(db)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	newsHandler := handlers.NewNewsHandler(newsService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "OK",
				"message": "Storefront backend running",
			})
		})

		// Authentication routes
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Public catalog routes. The paged route must be registered before
		// the :id route so "paged" is not parsed as an id.
		productos := api.Group("/productos")
		{
			productos.GET("", productHandler.List)
			productos.GET("/paged", productHandler.ListPaged)
			productos.GET("/search", productHandler.Search)
			productos.GET("/:id", productHandler.Get)
		}

		// Public news routes
		noticias := api.Group("/noticias")
		{
			noticias.GET("", newsHandler.List)
			noticias.GET("/:id", newsHandler.Get)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/stats", adminHandler.GetDashboardStats)
			admin.GET("/users", adminHandler.ListUsers)

			admin.GET("/productos", productHandler.List)
			admin.POST("/productos", productHandler.Create)
			admin.PUT("/productos/:id", productHandler.Update)
			admin.DELETE("/productos/:id", productHandler.Delete)
			admin.POST("/productos/:id/image", productHandler.UploadImage)

			admin.GET("/noticias", newsHandler.ListAll)
			admin.POST("/noticias", newsHandler.Create)
			admin.PUT("/noticias/:id", newsHandler.Update)
			admin.DELETE("/noticias/:id", newsHandler.Delete)
		}
	}

	return r
}
