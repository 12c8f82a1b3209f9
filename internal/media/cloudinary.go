// Package media prepares inline images and uploads them to the image host.
package media

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotConfigured is returned when the image host credentials are absent.
var ErrNotConfigured = errors.New("image hosting is not configured")

// UploadError is returned when the image host rejects an upload.
type UploadError struct {
	Message string
}

func (e *UploadError) Error() string {
	return "image upload failed: " + e.Message
}

// UploadResult describes a hosted image.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Format    string `json:"format,omitempty"`
}

// Uploader sends signed upload requests to Cloudinary.
type Uploader struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string

	// BaseURL overrides the Cloudinary endpoint, for tests.
	BaseURL string

	Client *http.Client
}

// Configured reports whether the uploader has credentials.
func (u *Uploader) Configured() bool {
	return u != nil && u.CloudName != "" && u.APIKey != "" && u.APISecret != ""
}

// UploadDataURL re-encodes an inline image and uploads it with a signed
// request. Returns ErrNotConfigured when credentials are absent and an
// *UploadError when the host rejects the upload.
func (u *Uploader) UploadDataURL(ctx context.Context, dataURL string) (*UploadResult, error) {
	if !u.Configured() {
		return nil, ErrNotConfigured
	}

	prepared, err := PrepareDataURL(dataURL)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Unix()
	signature := u.sign(timestamp)

	form := url.Values{
		"file":      {prepared},
		"folder":    {u.Folder},
		"timestamp": {fmt.Sprint(timestamp)},
		"api_key":   {u.APIKey},
		"signature": {signature},
	}

	base := u.BaseURL
	if base == "" {
		base = "https://api.cloudinary.com"
	}
	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", base, u.CloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := u.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &UploadError{Message: err.Error()}
	}
	defer resp.Body.Close()

	var payload struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Format    string `json:"format"`
		Error     *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &UploadError{Message: "unreadable response from image host"}
	}

	if resp.StatusCode != http.StatusOK || payload.SecureURL == "" || payload.PublicID == "" {
		message := "image upload rejected"
		if payload.Error != nil && payload.Error.Message != "" {
			message = payload.Error.Message
		}
		return nil, &UploadError{Message: message}
	}

	return &UploadResult{
		SecureURL: payload.SecureURL,
		PublicID:  payload.PublicID,
		Width:     payload.Width,
		Height:    payload.Height,
		Format:    payload.Format,
	}, nil
}

// sign computes the Cloudinary request signature over the signed parameters.
func (u *Uploader) sign(timestamp int64) string {
	payload := fmt.Sprintf("folder=%s&timestamp=%d%s", u.Folder, timestamp, u.APISecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
