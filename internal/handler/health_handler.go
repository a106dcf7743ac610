package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lanternfly/internal/domain"
	"lanternfly/internal/service"
)

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	gallery service.GalleryService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(gallery service.GalleryService) *HealthHandler {
	return &HealthHandler{gallery: gallery}
}

// Check handles GET /api/v1/health. UNHEALTHY means the store was never
// configured; DEGRADED means it is configured but currently unreachable.
func (h *HealthHandler) Check(c *gin.Context) {
	err := h.gallery.Health(c.Request.Context())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, HealthResponse{Status: "OK", Message: "object store reachable"})
	case errors.Is(err, domain.ErrStoreNotConfigured):
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "UNHEALTHY", Message: err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "DEGRADED", Message: err.Error()})
	}
}
