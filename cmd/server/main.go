package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"lanternfly/internal/config"
	"lanternfly/internal/handler"
	"lanternfly/internal/port"
	"lanternfly/internal/router"
	"lanternfly/internal/service"
	s3storage "lanternfly/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Optional .env for local development; real deployments use the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize storage. Without a base URL the store-dependent endpoints
	// serve 503 instead of crashing the process, unless s3.required is set.
	var storage port.ObjectStorage
	if cfg.S3.Configured() {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	} else if cfg.S3.Required {
		return fmt.Errorf("object store required but LANTERNFLY_S3_BASE_URL is not set")
	} else {
		log.Print("object store not configured; store-dependent endpoints will return 503")
	}

	// Initialize services
	gallerySvc := service.NewGalleryService(storage, &cfg.S3, cfg.Upload)

	// Initialize handlers
	homeH := handler.NewHomeHandler(gallerySvc)
	galleryH := handler.NewGalleryHandler(gallerySvc)
	healthH := handler.NewHealthHandler(gallerySvc)

	// Setup router
	r := router.Setup(cfg, homeH, galleryH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
