package api

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nfnt/resize"

	"expirychecker/internal/extract"
)

// ocrResponse is the OCR endpoint's payload. Every field besides text is
// best-effort and may be empty.
type ocrResponse struct {
	Text           string `json:"text"`
	GeminiResult   string `json:"gemini_result"`
	Name           string `json:"name"`
	ExpirationDate string `json:"expiration_date"`
	Category       string `json:"category"`
	ImageURL       string `json:"image_url"`
}

// OCRImage runs the photo-to-food-metadata flow: OCR the upload, have the
// model read the label out of image + text, parse its answer, and store a
// resized JPEG copy of the image. A failed insert after the upload leaves
// the blob behind; there is no compensation.
func (h *Handler) OCRImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("get form err: %s", err.Error())})
		return
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded file is not an image"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("open file err: %s", err.Error())})
		return
	}
	defer src.Close()

	imageData, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("read image err: %s", err.Error())})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 45*time.Second)
	defer cancel()

	text, err := h.Vision.DetectText(ctx, imageData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if text == "" {
		// Nothing recognizable in the image; a valid, empty result.
		c.JSON(http.StatusOK, ocrResponse{})
		return
	}

	labelText, err := h.Gemini.LabelText(ctx, text, imageData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	label := extract.ParseLabel(labelText)

	jpegData, err := encodeJPEG(imageData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	key := uuid.NewString() + ".jpg"
	imageURL, err := h.Images.Upload(ctx, key, jpegData, "image/jpeg")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Printf("uploaded OCR image %s", key)

	c.JSON(http.StatusOK, ocrResponse{
		Text:           text,
		GeminiResult:   labelText,
		Name:           label.Name,
		ExpirationDate: label.ExpirationDate,
		Category:       label.Category,
		ImageURL:       imageURL,
	})
}

// encodeJPEG re-encodes an uploaded image as a bounded-width JPEG for
// storage.
func encodeJPEG(imageData []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	img = resize.Resize(800, 0, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
