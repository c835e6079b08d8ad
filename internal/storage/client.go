// Package storage uploads files to a Supabase-style object store and hands
// back the public URL they will be served from.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"furnishing-portal-backend/internal/config"
	apperrors "furnishing-portal-backend/internal/errors"

	"github.com/google/uuid"
)

// Client talks to the object store's HTTP API.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	httpClient *http.Client
}

// NewClient creates a storage client from configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.StorageBaseURL, "/"),
		serviceKey: cfg.StorageServiceKey,
		bucket:     cfg.StorageBucket,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Upload stores file bytes under path and returns the public URL. When
// fixedName is empty a uuid-based filename is synthesized from the original
// name's extension to avoid collisions; a non-empty fixedName is used as-is
// (and overwrites any previous object at that path).
func (c *Client) Upload(ctx context.Context, data []byte, path, originalName, fixedName string) (string, error) {
	if c.baseURL == "" || c.serviceKey == "" {
		return "", apperrors.ErrStorageNotConfigured
	}

	fileName := fixedName
	if fileName == "" {
		fileName = uuid.New().String() + "." + extension(originalName)
	}
	objectPath := path + "/" + fileName

	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, objectPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", mimeTypeFor(extension(fileName)))
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewExternalError("file storage", fmt.Sprintf("upload %s: %v", objectPath, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", apperrors.NewExternalError("file storage", fmt.Sprintf("upload %s: status %d: %s", objectPath, resp.StatusCode, string(body)))
	}

	return c.PublicURL(objectPath), nil
}

// PublicURL returns the public address of an object path in the bucket.
func (c *Client) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, objectPath)
}

func extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx == -1 || idx == len(name)-1 {
		return "bin"
	}
	return strings.ToLower(name[idx+1:])
}

var mimeTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
	"pdf":  "application/pdf",
	"txt":  "text/plain",
	"json": "application/json",
}

func mimeTypeFor(ext string) string {
	if m, ok := mimeTypes[ext]; ok {
		return m
	}
	return "application/octet-stream"
}
