package service_test

import (
	"context"
	"testing"

	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/mocks"
	"furnishing-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpload_Success(t *testing.T) {
	store := new(mocks.MockFileStore)
	store.On("Upload", mock.Anything, []byte("%PDF"), "rooms", "plan.pdf", "").
		Return("https://store.example.com/rooms/abc.pdf", nil)
	uploadService := service.NewUploadService(store)

	resp, err := uploadService.Upload(context.Background(), []byte("%PDF"), "rooms", "plan.pdf")

	require.NoError(t, err)
	assert.Equal(t, "https://store.example.com/rooms/abc.pdf", resp.URL)
	assert.Equal(t, "plan.pdf", resp.FileName)
	store.AssertExpectations(t)
}

func TestUpload_DefaultFolder(t *testing.T) {
	store := new(mocks.MockFileStore)
	store.On("Upload", mock.Anything, mock.Anything, "uploads", "mix.png", "").
		Return("https://store.example.com/uploads/abc.png", nil)
	uploadService := service.NewUploadService(store)

	_, err := uploadService.Upload(context.Background(), []byte{1}, "", "mix.png")

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpload_EmptyFile(t *testing.T) {
	uploadService := service.NewUploadService(new(mocks.MockFileStore))

	_, err := uploadService.Upload(context.Background(), nil, "rooms", "plan.pdf")

	assert.True(t, apperrors.IsValidation(err))
}

func TestUpload_UnsupportedExtension(t *testing.T) {
	uploadService := service.NewUploadService(new(mocks.MockFileStore))

	_, err := uploadService.Upload(context.Background(), []byte{1}, "rooms", "malware.exe")

	assert.True(t, apperrors.IsValidation(err))
}

func TestUpload_ExtensionCaseInsensitive(t *testing.T) {
	store := new(mocks.MockFileStore)
	store.On("Upload", mock.Anything, mock.Anything, "rooms", "PLAN.PDF", "").
		Return("https://store.example.com/rooms/abc.pdf", nil)
	uploadService := service.NewUploadService(store)

	_, err := uploadService.Upload(context.Background(), []byte{1}, "rooms", "PLAN.PDF")

	assert.NoError(t, err)
}

func TestUpload_StoreFailurePropagates(t *testing.T) {
	store := new(mocks.MockFileStore)
	store.On("Upload", mock.Anything, mock.Anything, "rooms", "plan.pdf", "").
		Return("", apperrors.ErrStorageNotConfigured)
	uploadService := service.NewUploadService(store)

	_, err := uploadService.Upload(context.Background(), []byte{1}, "rooms", "plan.pdf")

	assert.ErrorIs(t, err, apperrors.ErrStorageNotConfigured)
}
