package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every environment-provided setting the service needs.
type Config struct {
	ListenAddr string

	JWTSecret string

	DatabaseURL string

	GeminiAPIKey string

	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string

	// GoogleCredentialsJSON is the inline service-account JSON for the Vision
	// API. When empty, GoogleCredentialsFile (a path) is used instead.
	GoogleCredentialsJSON string
	GoogleCredentialsFile string

	CORSOrigins []string
}

// Load reads configuration from the environment. A .env file is honored when
// present but is not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:            getenvDefault("LISTEN_ADDR", ":8080"),
		JWTSecret:             os.Getenv("JWT_SECRET"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		S3Bucket:              os.Getenv("S3_BUCKET"),
		S3Region:              getenvDefault("S3_REGION", os.Getenv("AWS_REGION")),
		S3PublicBaseURL:       os.Getenv("S3_PUBLIC_BASE_URL"),
		GoogleCredentialsJSON: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"),
		GoogleCredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	}

	origins := getenvDefault("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
