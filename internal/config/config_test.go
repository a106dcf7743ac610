package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lanternfly/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	assert.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "lanternfly-images", cfg.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, 15*time.Second, cfg.S3.Timeout)
	assert.False(t, cfg.S3.Required)
	assert.Equal(t, int64(10), cfg.Upload.MaxSizeMB)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxBytes())
	assert.True(t, cfg.Upload.Strict)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LANTERNFLY_S3_BASE_URL", "https://account.blob.example.net")
	t.Setenv("LANTERNFLY_S3_BUCKET", "holiday-pics")
	t.Setenv("LANTERNFLY_UPLOAD_MAX_SIZE_MB", "25")
	t.Setenv("LANTERNFLY_UPLOAD_STRICT", "false")
	t.Setenv("LANTERNFLY_S3_REQUIRED", "true")
	t.Setenv("LANTERNFLY_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := config.Load()
	assert.NoError(t, err)

	assert.Equal(t, "https://account.blob.example.net", cfg.S3.BaseURL)
	assert.True(t, cfg.S3.Configured())
	assert.Equal(t, "holiday-pics", cfg.S3.Bucket)
	assert.Equal(t, int64(25), cfg.Upload.MaxSizeMB)
	assert.False(t, cfg.Upload.Strict)
	assert.True(t, cfg.S3.Required)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Port)
}

func TestS3Config_NotConfiguredWithoutBaseURL(t *testing.T) {
	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.False(t, cfg.S3.Configured())
}
