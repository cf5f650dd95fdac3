package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	visionapi "cloud.google.com/go/vision/apiv1"
	"google.golang.org/api/option"
)

// Client wraps the Cloud Vision text-detection API.
type Client struct {
	annotator *visionapi.ImageAnnotatorClient

	// tempCredentials is the path of the credential file materialized from
	// inline JSON, empty otherwise. It is removed on Close.
	tempCredentials string
}

// NewClient builds a Vision client. Credentials come either as inline
// service-account JSON (written to a temporary file for the SDK) or as a
// path to an existing credential file; when both are empty the SDK's default
// resolution applies.
func NewClient(ctx context.Context, inlineJSON, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	var tempPath string

	switch {
	case inlineJSON != "":
		var err error
		tempPath, err = writeTempCredentials(inlineJSON)
		if err != nil {
			return nil, err
		}
		opts = append(opts, option.WithCredentialsFile(tempPath))
	case credentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	annotator, err := visionapi.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		if tempPath != "" {
			os.Remove(tempPath)
		}
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}

	return &Client{annotator: annotator, tempCredentials: tempPath}, nil
}

// DetectText runs OCR over image bytes and returns the full recognized
// text. An image with no text yields an empty string, not an error.
func (c *Client) DetectText(ctx context.Context, imageData []byte) (string, error) {
	img, err := visionapi.NewImageFromReader(bytes.NewReader(imageData))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	annotations, err := c.annotator.DetectTexts(ctx, img, nil, 10)
	if err != nil {
		return "", fmt.Errorf("text detection failed: %w", err)
	}
	if len(annotations) == 0 {
		return "", nil
	}
	// The first annotation covers the whole image.
	return annotations[0].Description, nil
}

// Close releases the underlying connection and removes the temporary
// credential file if one was written.
func (c *Client) Close() error {
	err := c.annotator.Close()
	if c.tempCredentials != "" {
		os.Remove(c.tempCredentials)
	}
	return err
}

// writeTempCredentials validates the inline JSON and writes it to a temp
// file the SDK can read.
func writeTempCredentials(inlineJSON string) (string, error) {
	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(inlineJSON), &parsed); err != nil {
		return "", fmt.Errorf("invalid inline credentials JSON: %w", err)
	}
	pretty, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to re-encode credentials: %w", err)
	}

	f, err := os.CreateTemp("", "vision-credentials-*.json")
	if err != nil {
		return "", fmt.Errorf("failed to create credential file: %w", err)
	}
	if _, err := f.Write(pretty); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write credential file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close credential file: %w", err)
	}
	return f.Name(), nil
}
