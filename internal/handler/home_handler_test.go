package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lanternfly/internal/handler"
	"lanternfly/mocks"
)

func homeRequest(t *testing.T, urls []string, listErr error) *httptest.ResponseRecorder {
	t.Helper()
	mockSvc := new(mocks.MockGalleryService)
	h := handler.NewHomeHandler(mockSvc)

	if listErr != nil {
		mockSvc.On("List", mock.Anything).Return(nil, listErr)
	} else {
		mockSvc.On("List", mock.Anything).Return(urls, nil)
	}

	w := httptest.NewRecorder()
	c, engine := gin.CreateTestContext(w)
	engine.SetHTMLTemplate(handler.Templates())
	c.Request, _ = http.NewRequest(http.MethodGet, "/", nil)

	h.Home(c)
	return w
}

func TestHomeHandler_RendersGallery(t *testing.T) {
	w := homeRequest(t, []string{"https://storage.example.com/lanternfly-images/20240601T120000-a.png"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "20240601T120000-a.png")
}

func TestHomeHandler_EmptyGallery(t *testing.T) {
	w := homeRequest(t, nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No images uploaded yet")
}

func TestHomeHandler_ListFailureStillRenders(t *testing.T) {
	w := homeRequest(t, nil, errors.New("store down"))

	// Listing errors are swallowed; the page renders with an empty gallery.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No images uploaded yet")
}
