package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lanternfly/internal/domain"
	"lanternfly/internal/service"
)

// GalleryHandler handles image upload and gallery listing endpoints.
type GalleryHandler struct {
	gallery service.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(gallery service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// Upload handles POST /api/v1/upload
// @Summary Upload an image
// @Description Upload an image file (png, jpg, jpeg, gif, bmp, webp, tiff; max 10MB)
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Success 200 {object} UploadResponse "Image uploaded"
// @Failure 400 {object} ErrorResponse "Missing file or unsupported extension"
// @Failure 413 {object} ErrorResponse "File too large"
// @Failure 415 {object} ErrorResponse "Content type is not an image"
// @Failure 503 {object} ErrorResponse "Object store not configured"
// @Router /upload [post]
func (h *GalleryHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			RespondError(c, http.StatusRequestEntityTooLarge, domain.ErrFileTooLarge.Error())
			return
		}
		RespondError(c, http.StatusBadRequest, domain.ErrMissingFile.Error())
		return
	}
	defer func() { _ = file.Close() }()

	img, err := h.gallery.Upload(c.Request.Context(), service.UploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{OK: true, URL: img.URL})
}

// Gallery handles GET /api/v1/gallery
// @Summary List uploaded images
// @Description List public URLs of all uploaded images, newest first
// @Tags gallery
// @Produce json
// @Success 200 {object} GalleryResponse "Image URLs, newest first"
// @Failure 503 {object} ErrorResponse "Object store not configured"
// @Router /gallery [get]
func (h *GalleryHandler) Gallery(c *gin.Context) {
	urls, err := h.gallery.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	if urls == nil {
		urls = []string{}
	}

	c.JSON(http.StatusOK, GalleryResponse{OK: true, Gallery: urls})
}
