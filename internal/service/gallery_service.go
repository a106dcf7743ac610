package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"lanternfly/internal/config"
	"lanternfly/internal/domain"
	"lanternfly/internal/naming"
	"lanternfly/internal/port"
)

// fallbackContentType is used when neither the client nor the platform MIME
// table can resolve a type for the upload.
const fallbackContentType = "application/octet-stream"

// UploadInput is the DTO for image upload requests.
type UploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// GalleryService defines the image gallery contract.
type GalleryService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.UploadedImage, error)
	List(ctx context.Context) ([]string, error)
	Health(ctx context.Context) error
}

type galleryService struct {
	storage port.ObjectStorage // nil when the store is not configured
	s3cfg   *config.S3Config
	upload  config.UploadConfig
	now     func() time.Time
}

// NewGalleryService creates a new GalleryService implementation. A nil
// storage makes every operation report domain.ErrStoreNotConfigured, which
// lets the server start (and serve 503s) without store credentials.
func NewGalleryService(storage port.ObjectStorage, s3cfg *config.S3Config, upload config.UploadConfig) GalleryService {
	return &galleryService{
		storage: storage,
		s3cfg:   s3cfg,
		upload:  upload,
		now:     time.Now,
	}
}

func (s *galleryService) Upload(ctx context.Context, input UploadInput) (*domain.UploadedImage, error) {
	if s.storage == nil {
		return nil, domain.ErrStoreNotConfigured
	}
	if input.Header == nil || input.Header.Filename == "" {
		return nil, domain.ErrEmptyFilename
	}

	contentType, err := s.validate(input.Header)
	if err != nil {
		return nil, err
	}

	// The HTTP layer caps the request body, so the whole payload fits in
	// memory. Reading it up front means a failed read never leaves a
	// partial object behind.
	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.upload.MaxBytes() {
		return nil, domain.ErrFileTooLarge
	}

	key := naming.UploadKey(s.now(), naming.Sanitize(input.Header.Filename))

	log.Printf("galleryService.Upload: storing %s (%s, %d bytes) as %s",
		input.Header.Filename, contentType, len(data), key)

	ctx, cancel := context.WithTimeout(ctx, s.s3cfg.Timeout)
	defer cancel()

	out, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		log.Printf("galleryService.Upload: store write failed for key %s: %v", key, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	url := out.Location
	if url == "" {
		url = s.urlFor(key)
	}

	return &domain.UploadedImage{
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         url,
		UploadedAt:  s.now().UTC(),
	}, nil
}

func (s *galleryService) List(ctx context.Context) ([]string, error) {
	if s.storage == nil {
		return nil, domain.ErrStoreNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.s3cfg.Timeout)
	defer cancel()

	objects, err := s.storage.List(ctx, s.s3cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrListFailed, err)
	}

	// Keys are timestamp-prefixed, so descending key order is newest first.
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].Key > objects[j].Key
	})

	urls := make([]string, 0, len(objects))
	for _, obj := range objects {
		urls = append(urls, s.urlFor(obj.Key))
	}
	return urls, nil
}

func (s *galleryService) Health(ctx context.Context) error {
	if s.storage == nil {
		return domain.ErrStoreNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, s.s3cfg.Timeout)
	defer cancel()

	if err := s.storage.BucketExists(ctx, s.s3cfg.Bucket); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// validate applies the extension allow-list (strict mode only) and the MIME
// check. Both must pass before any data is written to storage.
func (s *galleryService) validate(header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))

	if s.upload.Strict {
		if ext == "" {
			return "", domain.ErrUnsupportedExtension
		}
		if _, ok := domain.ImageExtensions[ext]; !ok {
			return "", domain.ErrUnsupportedExtension
		}
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(header.Filename))
	}
	if contentType == "" {
		contentType = fallbackContentType
	}
	if !domain.IsImageContentType(contentType) {
		return "", fmt.Errorf("%w (got %s)", domain.ErrNotAnImage, contentType)
	}
	return contentType, nil
}

// urlFor composes the public URL for a key from the configured base URL and
// bucket, trimming duplicate separators.
func (s *galleryService) urlFor(key string) string {
	return strings.TrimRight(s.s3cfg.BaseURL, "/") + "/" + s.s3cfg.Bucket + "/" + key
}
