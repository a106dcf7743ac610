package handler

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lanternfly/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

// Templates parses the embedded HTML templates for the router to install.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// HomeHandler renders the landing page.
type HomeHandler struct {
	gallery service.GalleryService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(gallery service.GalleryService) *HomeHandler {
	return &HomeHandler{gallery: gallery}
}

// Home handles GET /. Listing failures are logged and the page renders with
// an empty gallery; the landing page never 500s because of the store.
func (h *HomeHandler) Home(c *gin.Context) {
	urls, err := h.gallery.List(c.Request.Context())
	if err != nil {
		log.Printf("homeHandler.Home: listing gallery failed: %v", err)
		urls = nil
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"Gallery": urls})
}
