package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lanternfly/internal/domain"
)

// UploadResponse is the body of a successful upload.
type UploadResponse struct {
	OK  bool   `json:"ok"`
	URL string `json:"url"`
}

// GalleryResponse is the body of a successful gallery listing.
type GalleryResponse struct {
	OK      bool     `json:"ok"`
	Gallery []string `json:"gallery"`
}

// ErrorResponse is the body of any failed upload or gallery request.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{OK: false, Error: msg})
}

// HandleError maps a domain error to an HTTP response, logging server-side
// failures.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	if status >= http.StatusInternalServerError {
		log.Printf("handler: %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	RespondError(c, status, msg)
}

// MapDomainError translates domain errors to HTTP status codes. Client input
// errors surface their message verbatim; store failures keep the wrapped
// error text so callers see the underlying cause.
func MapDomainError(err error) (status int, msg string) {
	switch {
	case errors.Is(err, domain.ErrMissingFile),
		errors.Is(err, domain.ErrEmptyFilename),
		errors.Is(err, domain.ErrUnsupportedExtension):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrNotAnImage):
		return http.StatusUnsupportedMediaType, err.Error()
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, domain.ErrStoreNotConfigured),
		errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}
