package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"furnishing-portal-backend/internal/config"
	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedUpload struct {
	path        string
	auth        string
	contentType string
	upsert      string
	body        []byte
}

func newFakeStore(t *testing.T, status int) (*httptest.Server, *capturedUpload) {
	captured := &capturedUpload{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		captured.contentType = r.Header.Get("Content-Type")
		captured.upsert = r.Header.Get("x-upsert")
		captured.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func clientFor(serverURL string) *storage.Client {
	return storage.NewClient(&config.Config{
		StorageBaseURL:    serverURL,
		StorageServiceKey: "service-key",
		StorageBucket:     "furniture-system",
	})
}

func TestUpload_FixedName(t *testing.T) {
	server, captured := newFakeStore(t, http.StatusOK)
	client := clientFor(server.URL)

	url, err := client.Upload(context.Background(), []byte("image-bytes"), "projects/7", "room mix.png", "room-mix.png")

	require.NoError(t, err)
	assert.Equal(t, "/storage/v1/object/furniture-system/projects/7/room-mix.png", captured.path)
	assert.Equal(t, "Bearer service-key", captured.auth)
	assert.Equal(t, "image/png", captured.contentType)
	assert.Equal(t, "true", captured.upsert)
	assert.Equal(t, []byte("image-bytes"), captured.body)
	assert.Equal(t, server.URL+"/storage/v1/object/public/furniture-system/projects/7/room-mix.png", url)
}

func TestUpload_SynthesizesUUIDName(t *testing.T) {
	server, captured := newFakeStore(t, http.StatusOK)
	client := clientFor(server.URL)

	url, err := client.Upload(context.Background(), []byte("%PDF"), "rooms", "floor plan.pdf", "")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(captured.path, "/storage/v1/object/furniture-system/rooms/"))
	assert.True(t, strings.HasSuffix(captured.path, ".pdf"))
	// 36-char uuid plus extension, not the original name
	assert.NotContains(t, captured.path, "floor plan")
	assert.Equal(t, "application/pdf", captured.contentType)
	assert.Contains(t, url, "/storage/v1/object/public/furniture-system/rooms/")
}

func TestUpload_UnknownExtensionFallsBack(t *testing.T) {
	server, captured := newFakeStore(t, http.StatusOK)
	client := clientFor(server.URL)

	_, err := client.Upload(context.Background(), []byte("data"), "misc", "archive.xyz", "archive.xyz")

	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", captured.contentType)
}

func TestUpload_RemoteFailure(t *testing.T) {
	server, _ := newFakeStore(t, http.StatusForbidden)
	client := clientFor(server.URL)

	_, err := client.Upload(context.Background(), []byte("data"), "misc", "a.png", "a.png")

	require.Error(t, err)
	assert.True(t, apperrors.IsExternal(err))
}

func TestUpload_NotConfigured(t *testing.T) {
	client := storage.NewClient(&config.Config{})

	_, err := client.Upload(context.Background(), []byte("data"), "misc", "a.png", "a.png")

	assert.ErrorIs(t, err, apperrors.ErrStorageNotConfigured)
}

func TestPublicURL(t *testing.T) {
	client := clientFor("https://store.example.com")

	url := client.PublicURL("projects/1/room-mix.png")

	assert.Equal(t, "https://store.example.com/storage/v1/object/public/furniture-system/projects/1/room-mix.png", url)
}
