package service

import (
	"context"
	"fmt"
	"strings"

	apperrors "furnishing-portal-backend/internal/errors"
)

// FileStore is the slice of the storage client the upload service depends on.
type FileStore interface {
	Upload(ctx context.Context, data []byte, path, originalName, fixedName string) (string, error)
}

// UploadService stores uploaded documents and returns their public URLs
type UploadService struct {
	store FileStore
}

// NewUploadService creates a new upload service
func NewUploadService(store FileStore) *UploadService {
	return &UploadService{store: store}
}

// UploadResponse carries the public URL of a stored document
type UploadResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

var allowedUploadExtensions = map[string]bool{
	"pdf":  true,
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"webp": true,
}

// Upload validates and stores a document under the given folder. Only
// document and image formats the analyzers understand are accepted.
func (s *UploadService) Upload(ctx context.Context, data []byte, folder, fileName string) (*UploadResponse, error) {
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("file", "file is empty")
	}
	if folder == "" {
		folder = "uploads"
	}

	ext := strings.ToLower(strings.TrimPrefix(strings.ToLower(extOf(fileName)), "."))
	if !allowedUploadExtensions[ext] {
		return nil, apperrors.NewValidationError("file", fmt.Sprintf("unsupported file type %q", ext))
	}

	url, err := s.store.Upload(ctx, data, folder, fileName, "")
	if err != nil {
		return nil, err
	}

	return &UploadResponse{URL: url, FileName: fileName}, nil
}

func extOf(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		return ""
	}
	return name[idx:]
}
