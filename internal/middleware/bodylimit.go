package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodySize rejects request bodies larger than maxBytes before any handler
// logic runs. Requests announcing an oversized Content-Length are refused
// outright; chunked requests are capped by http.MaxBytesReader, which makes
// the multipart parser fail with http.MaxBytesError once the limit is hit.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"ok":    false,
				"error": "request body exceeds maximum allowed size",
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
