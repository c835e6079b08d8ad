// Package mocks provides testify-backed test doubles for the repository and
// service interfaces.
package mocks

import (
	"furnishing-portal-backend/internal/database/models"

	"github.com/stretchr/testify/mock"
)

// MockProjectRepository mocks repository.ProjectRepositoryInterface
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepository) GetByID(id uint) (*models.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetWithRooms(id uint) (*models.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetAll(limit, offset int) ([]models.Project, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) Update(project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateFloorMapping(id uint, mapping models.FloorMapping) error {
	args := m.Called(id, mapping)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateFloorPlanURL(id uint, url string) error {
	args := m.Called(id, url)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockRoomRepository mocks repository.RoomRepositoryInterface
type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(room *models.Room) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *MockRoomRepository) GetByID(id uint) (*models.Room, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomRepository) GetByProjectID(projectID uint) ([]models.Room, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *MockRoomRepository) Update(room *models.Room) error {
	args := m.Called(room)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdateFurniture(id uint, furniture models.FurnitureList) error {
	args := m.Called(id, furniture)
	return args.Error(0)
}

func (m *MockRoomRepository) UpdatePdfURL(id uint, url string) error {
	args := m.Called(id, url)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockFurnitureRepository mocks repository.FurnitureRepositoryInterface
type MockFurnitureRepository struct {
	mock.Mock
}

func (m *MockFurnitureRepository) Create(record *models.FurnitureRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockFurnitureRepository) GetByID(id uint) (*models.FurnitureRecord, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FurnitureRecord), args.Error(1)
}

func (m *MockFurnitureRepository) GetAll(limit, offset int) ([]models.FurnitureRecord, int64, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.FurnitureRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockFurnitureRepository) Update(record *models.FurnitureRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

func (m *MockFurnitureRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
