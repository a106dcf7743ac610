package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lanternfly/internal/config"
	"lanternfly/internal/handler"
	"lanternfly/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	homeH *handler.HomeHandler,
	galleryH *handler.GalleryHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.MaxBodySize(cfg.Upload.MaxBytes()))

	r.SetHTMLTemplate(handler.Templates())

	r.GET("/", homeH.Home)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.POST("/upload", galleryH.Upload)
	v1.GET("/gallery", galleryH.Gallery)
	// Trailing slash is optional on the health endpoint.
	v1.GET("/health", healthH.Check)
	v1.GET("/health/", healthH.Check)

	return r
}
