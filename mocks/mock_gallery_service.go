package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lanternfly/internal/domain"
	"lanternfly/internal/service"
)

// MockGalleryService is a mock implementation of service.GalleryService.
type MockGalleryService struct {
	mock.Mock
}

func (m *MockGalleryService) Upload(ctx context.Context, input service.UploadInput) (*domain.UploadedImage, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadedImage), args.Error(1)
}

func (m *MockGalleryService) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGalleryService) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
