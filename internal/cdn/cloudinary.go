package cdn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"menu-platform-backend/internal/config"
	apperrors "menu-platform-backend/internal/errors"
)

const defaultWidth = 600

// Client uploads menu images to Cloudinary via its unsigned upload API and
// builds the optimized delivery URLs the public menu serves.
type Client struct {
	cloudName    string
	uploadPreset string
	placeholder  string
	uploadURL    string
	deliveryURL  string
	httpClient   *http.Client
}

// NewClient creates a Cloudinary client from configuration. A client with
// no cloud name or upload preset still serves OptimizedURL (placeholders
// only); Upload returns a configuration error.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		cloudName:    cfg.CloudinaryCloudName,
		uploadPreset: cfg.CloudinaryUploadPreset,
		placeholder:  cfg.PlaceholderImage,
		uploadURL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cfg.CloudinaryCloudName),
		deliveryURL:  fmt.Sprintf("https://res.cloudinary.com/%s/image/upload", cfg.CloudinaryCloudName),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// UploadResult is the subset of Cloudinary's upload response we keep
type UploadResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// Upload sends an image through Cloudinary's unsigned upload endpoint.
// folder is optional and namespaces the asset on the Cloudinary side.
func (c *Client) Upload(ctx context.Context, file io.Reader, filename, folder string) (*UploadResult, error) {
	if c.cloudName == "" || c.uploadPreset == "" {
		return nil, apperrors.ErrCloudinaryNotConfigured
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return nil, fmt.Errorf("failed to write form field: %w", err)
	}
	if folder != "" {
		if err := writer.WriteField("folder", folder); err != nil {
			return nil, fmt.Errorf("failed to write form field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("cloudinary upload failed with status %d: %s", resp.StatusCode, string(detail))
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	return &result, nil
}

// OptimizedURL builds the delivery URL for an image reference as stored on
// a menu item. An empty reference yields the local placeholder; a reference
// starting with "/" is already a local asset and passes through unchanged.
func (c *Client) OptimizedURL(image string, width int) string {
	if image == "" {
		return c.placeholder
	}
	if strings.HasPrefix(image, "/") {
		return image
	}
	if c.cloudName == "" {
		return c.placeholder
	}
	if width <= 0 {
		width = defaultWidth
	}
	return fmt.Sprintf("%s/f_auto,q_auto:good,w_%d/%s.webp", c.deliveryURL, width, image)
}
