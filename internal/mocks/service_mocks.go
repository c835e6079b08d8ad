package mocks

import (
	"context"

	"furnishing-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProjectService mocks service.ProjectServiceInterface
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(req *service.CreateProjectRequest) (*service.ProjectResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectResponse), args.Error(1)
}

func (m *MockProjectService) GetByID(id uint) (*service.ProjectResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectResponse), args.Error(1)
}

func (m *MockProjectService) GetWithRooms(id uint) (*service.ProjectResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectResponse), args.Error(1)
}

func (m *MockProjectService) GetAll(page, pageSize int) (*service.ProjectListResponse, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectListResponse), args.Error(1)
}

func (m *MockProjectService) Update(id uint, req *service.UpdateProjectRequest) (*service.ProjectResponse, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProjectResponse), args.Error(1)
}

func (m *MockProjectService) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockRoomService mocks service.RoomServiceInterface
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) Create(projectID uint, req *service.CreateRoomRequest) (*service.RoomResponse, error) {
	args := m.Called(projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RoomResponse), args.Error(1)
}

func (m *MockRoomService) GetByID(id uint) (*service.RoomResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RoomResponse), args.Error(1)
}

func (m *MockRoomService) GetByProject(projectID uint) ([]service.RoomResponse, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.RoomResponse), args.Error(1)
}

func (m *MockRoomService) Update(id uint, req *service.UpdateRoomRequest) (*service.RoomResponse, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RoomResponse), args.Error(1)
}

func (m *MockRoomService) ReplaceFurniture(id uint, req *service.ReplaceFurnitureRequest) (*service.RoomResponse, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RoomResponse), args.Error(1)
}

func (m *MockRoomService) UpdateFurnitureCount(id uint, itemID uuid.UUID, req *service.UpdateFurnitureCountRequest) (*service.RoomResponse, error) {
	args := m.Called(id, itemID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RoomResponse), args.Error(1)
}

func (m *MockRoomService) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockFloorMappingService mocks service.FloorMappingServiceInterface
type MockFloorMappingService struct {
	mock.Mock
}

func (m *MockFloorMappingService) Get(projectID uint) (*service.FloorMappingResponse, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FloorMappingResponse), args.Error(1)
}

func (m *MockFloorMappingService) Save(projectID uint, req *service.SaveFloorMappingRequest) (*service.FloorMappingResponse, error) {
	args := m.Called(projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FloorMappingResponse), args.Error(1)
}

func (m *MockFloorMappingService) ApplyEdits(projectID uint, req *service.EditFloorMappingRequest) (*service.FloorMappingResponse, error) {
	args := m.Called(projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FloorMappingResponse), args.Error(1)
}

// MockAnalysisService mocks service.AnalysisServiceInterface
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) AnalyzeRoom(ctx context.Context, roomID uint) (*service.RoomResponse, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RoomResponse), args.Error(1)
}

func (m *MockAnalysisService) AnalyzeFloorMapping(ctx context.Context, projectID uint, req *service.AnalyzeFloorMappingRequest) (*service.FloorMappingResponse, error) {
	args := m.Called(ctx, projectID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FloorMappingResponse), args.Error(1)
}

// MockSummaryService mocks service.SummaryServiceInterface
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Summary(projectID uint) (*service.SummaryResponse, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SummaryResponse), args.Error(1)
}

func (m *MockSummaryService) Demand(projectID uint) (*service.DemandResponse, error) {
	args := m.Called(projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DemandResponse), args.Error(1)
}

func (m *MockSummaryService) ExportDemandCSV(projectID uint) (string, error) {
	args := m.Called(projectID)
	return args.String(0), args.Error(1)
}

// MockFurnitureService mocks service.FurnitureServiceInterface
type MockFurnitureService struct {
	mock.Mock
}

func (m *MockFurnitureService) Create(req *service.CreateFurnitureRequest) (*service.FurnitureResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FurnitureResponse), args.Error(1)
}

func (m *MockFurnitureService) GetByID(id uint) (*service.FurnitureResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FurnitureResponse), args.Error(1)
}

func (m *MockFurnitureService) GetAll(page, pageSize int) (*service.FurnitureListResponse, error) {
	args := m.Called(page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FurnitureListResponse), args.Error(1)
}

func (m *MockFurnitureService) Update(id uint, req *service.UpdateFurnitureRequest) (*service.FurnitureResponse, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.FurnitureResponse), args.Error(1)
}

func (m *MockFurnitureService) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockUploadService mocks service.UploadServiceInterface
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, data []byte, folder, fileName string) (*service.UploadResponse, error) {
	args := m.Called(ctx, data, folder, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResponse), args.Error(1)
}
