package api

import (
	"context"

	"expirychecker/internal/auth"
	"expirychecker/internal/food"
	"expirychecker/internal/notification"
)

// TokenVerifier validates a bearer token and yields the caller's claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// FoodStore defines the food item operations handlers depend on.
type FoodStore interface {
	List(ctx context.Context, userID string) ([]food.Food, error)
	Create(ctx context.Context, f *food.Food) error
	Get(ctx context.Context, userID, id string) (*food.Food, error)
	Update(ctx context.Context, f *food.Food) (*food.Food, error)
	Delete(ctx context.Context, userID, id string) (*food.Food, error)
}

// SettingsStore defines the notification settings operations handlers
// depend on.
type SettingsStore interface {
	Get(ctx context.Context, userID string) (*notification.Settings, error)
	Upsert(ctx context.Context, s notification.Settings) (*notification.Settings, error)
}

// GenerativeClient defines the interface for the generative-language API.
type GenerativeClient interface {
	RecipeText(ctx context.Context, ingredients []string, cookingTime, difficulty string) (string, error)
	LabelText(ctx context.Context, ocrText string, imageData []byte) (string, error)
}

// TextDetector defines the interface for the OCR service.
type TextDetector interface {
	DetectText(ctx context.Context, imageData []byte) (string, error)
}

// ImageUploader defines the interface for blob storage of images.
type ImageUploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Handler handles HTTP requests.
type Handler struct {
	Foods    FoodStore
	Settings SettingsStore
	Gemini   GenerativeClient
	Vision   TextDetector
	Images   ImageUploader
}

// NewHandler creates a new Handler.
func NewHandler(foods FoodStore, settings SettingsStore, gemini GenerativeClient, vision TextDetector, images ImageUploader) *Handler {
	return &Handler{Foods: foods, Settings: settings, Gemini: gemini, Vision: vision, Images: images}
}
