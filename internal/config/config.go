package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	S3     S3Config
	Upload UploadConfig
	CORS   CORSConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// S3Config holds object store settings.
type S3Config struct {
	BaseURL   string        `mapstructure:"base_url"`
	Bucket    string        `mapstructure:"bucket"`
	Region    string        `mapstructure:"region"`
	Endpoint  string        `mapstructure:"endpoint"`
	AccessKey string        `mapstructure:"access_key"`
	SecretKey string        `mapstructure:"secret_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Required  bool          `mapstructure:"required"`
}

// Configured reports whether enough settings are present to reach the store.
// BaseURL is mandatory because public URLs are composed from it; credentials
// may still come from the ambient AWS environment.
func (s *S3Config) Configured() bool {
	return s.BaseURL != ""
}

// UploadConfig holds upload validation settings.
type UploadConfig struct {
	MaxSizeMB int64 `mapstructure:"max_size_mb"`
	Strict    bool  `mapstructure:"strict"`
}

// MaxBytes returns the upload size cap in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxSizeMB * 1024 * 1024
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the LANTERNFLY_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LANTERNFLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// S3 defaults
	v.SetDefault("s3.base_url", "")
	v.SetDefault("s3.bucket", "lanternfly-images")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("s3.timeout", "15s")
	v.SetDefault("s3.required", false)

	// Upload defaults
	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("upload.strict", true)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "LANTERNFLY_SERVER_PORT",
		"server.read_timeout":  "LANTERNFLY_SERVER_READ_TIMEOUT",
		"server.write_timeout": "LANTERNFLY_SERVER_WRITE_TIMEOUT",
		"server.environment":   "LANTERNFLY_SERVER_ENVIRONMENT",
		"s3.base_url":          "LANTERNFLY_S3_BASE_URL",
		"s3.bucket":            "LANTERNFLY_S3_BUCKET",
		"s3.region":            "LANTERNFLY_S3_REGION",
		"s3.endpoint":          "LANTERNFLY_S3_ENDPOINT",
		"s3.access_key":        "LANTERNFLY_S3_ACCESS_KEY",
		"s3.secret_key":        "LANTERNFLY_S3_SECRET_KEY",
		"s3.timeout":           "LANTERNFLY_S3_TIMEOUT",
		"s3.required":          "LANTERNFLY_S3_REQUIRED",
		"upload.max_size_mb":   "LANTERNFLY_UPLOAD_MAX_SIZE_MB",
		"upload.strict":        "LANTERNFLY_UPLOAD_STRICT",
		"log.level":            "LANTERNFLY_LOG_LEVEL",
		"log.format":           "LANTERNFLY_LOG_FORMAT",
		"cors.allowed_origins": "LANTERNFLY_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LANTERNFLY_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LANTERNFLY_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.S3 = S3Config{
		BaseURL:   v.GetString("s3.base_url"),
		Bucket:    v.GetString("s3.bucket"),
		Region:    v.GetString("s3.region"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
		Timeout:   v.GetDuration("s3.timeout"),
		Required:  v.GetBool("s3.required"),
	}
	cfg.Upload = UploadConfig{
		MaxSizeMB: v.GetInt64("upload.max_size_mb"),
		Strict:    v.GetBool("upload.strict"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
