package domain

import "errors"

var (
	ErrMissingFile          = errors.New("file field is required")
	ErrEmptyFilename        = errors.New("uploaded file has an empty filename")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrNotAnImage           = errors.New("content type is not an image")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrStoreNotConfigured   = errors.New("object store is not configured")
	ErrStoreUnavailable     = errors.New("object store is unreachable")
	ErrUploadFailed         = errors.New("file upload to storage failed")
	ErrListFailed           = errors.New("listing objects from storage failed")
)
