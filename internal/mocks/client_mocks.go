package mocks

import (
	"context"

	"furnishing-portal-backend/internal/docintel"

	"github.com/stretchr/testify/mock"
)

// MockDocumentParser mocks service.DocumentParser
type MockDocumentParser struct {
	mock.Mock
}

func (m *MockDocumentParser) ParseFurniture(ctx context.Context, fileURL, fileName string) ([]docintel.FurnitureItem, error) {
	args := m.Called(ctx, fileURL, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]docintel.FurnitureItem), args.Error(1)
}

func (m *MockDocumentParser) ParseFloorMapping(ctx context.Context, fileURL, fileName string) ([]docintel.RoomTypeRow, error) {
	args := m.Called(ctx, fileURL, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]docintel.RoomTypeRow), args.Error(1)
}

// MockFileStore mocks service.FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Upload(ctx context.Context, data []byte, path, originalName, fixedName string) (string, error) {
	args := m.Called(ctx, data, path, originalName, fixedName)
	return args.String(0), args.Error(1)
}
