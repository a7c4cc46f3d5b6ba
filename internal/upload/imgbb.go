package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

// ImgBB uploads images to the imgbb.com API.
type ImgBB struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewImgBB builds an ImgBB uploader. A nil client gets a default with a
// 30 second timeout.
func NewImgBB(endpoint, apiKey string, client *http.Client) *ImgBB {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &ImgBB{endpoint: endpoint, apiKey: apiKey, client: client}
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *ImgBB) Upload(ctx context.Context, file *File) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("image", file.Name)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(file.Data); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	target, err := url.Parse(u.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid imgbb endpoint: %w", err)
	}
	query := target.Query()
	query.Set("key", u.apiKey)
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("imgbb request: %w", err)
	}
	defer resp.Body.Close()

	var out imgbbResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("imgbb response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !out.Success || out.Data.URL == "" {
		return "", fmt.Errorf("imgbb upload failed (status %d): %s", resp.StatusCode, out.Error.Message)
	}
	return out.Data.URL, nil
}
