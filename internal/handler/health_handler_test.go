package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lanternfly/internal/domain"
	"lanternfly/internal/handler"
	"lanternfly/mocks"
)

func healthCheck(t *testing.T, err error) (*httptest.ResponseRecorder, handler.HealthResponse) {
	t.Helper()
	mockSvc := new(mocks.MockGalleryService)
	h := handler.NewHealthHandler(mockSvc)

	mockSvc.On("Health", mock.Anything).Return(err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/health", nil)

	h.Check(c)

	var resp handler.HealthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHealthHandler_OK(t *testing.T) {
	w, resp := healthCheck(t, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", resp.Status)
	assert.NotEmpty(t, resp.Message)
}

func TestHealthHandler_Unhealthy_NotConfigured(t *testing.T) {
	w, resp := healthCheck(t, domain.ErrStoreNotConfigured)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "UNHEALTHY", resp.Status)
}

func TestHealthHandler_Degraded_Unreachable(t *testing.T) {
	w, resp := healthCheck(t, domain.ErrStoreUnavailable)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "DEGRADED", resp.Status)
}
