package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"expirychecker/internal/api"
	"expirychecker/internal/auth"
	"expirychecker/internal/config"
	"expirychecker/internal/food"
	"expirychecker/internal/notification"
	"expirychecker/internal/platform/gemini"
	"expirychecker/internal/platform/storage"
	"expirychecker/internal/platform/vision"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	foodStore, err := food.NewPostgresStore(db)
	if err != nil {
		log.Fatalf("failed to create food store: %v", err)
	}

	settingsStore, err := notification.NewPostgresStore(db)
	if err != nil {
		log.Fatalf("failed to create notification settings store: %v", err)
	}

	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatalf("failed to create gemini client: %v", err)
	}

	visionClient, err := vision.NewClient(ctx, cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile)
	if err != nil {
		log.Fatalf("failed to create vision client: %v", err)
	}
	defer visionClient.Close()

	uploader, err := storage.NewUploader(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3PublicBaseURL)
	if err != nil {
		log.Fatalf("failed to create image uploader: %v", err)
	}

	handler := api.NewHandler(foodStore, settingsStore, geminiClient, visionClient, uploader)
	verifier := auth.NewVerifier(cfg.JWTSecret)

	r := api.NewRouter(handler, verifier, cfg.CORSOrigins)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
