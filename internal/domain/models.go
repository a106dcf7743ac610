package domain

import "time"

// UploadedImage represents a stored image object. The public URL is derived
// from configuration, never persisted.
type UploadedImage struct {
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
