package service

import (
	"context"

	"github.com/google/uuid"
)

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(req *CreateProjectRequest) (*ProjectResponse, error)
	GetByID(id uint) (*ProjectResponse, error)
	GetWithRooms(id uint) (*ProjectResponse, error)
	GetAll(page, pageSize int) (*ProjectListResponse, error)
	Update(id uint, req *UpdateProjectRequest) (*ProjectResponse, error)
	Delete(id uint) error
}

// RoomServiceInterface defines the interface for room service
type RoomServiceInterface interface {
	Create(projectID uint, req *CreateRoomRequest) (*RoomResponse, error)
	GetByID(id uint) (*RoomResponse, error)
	GetByProject(projectID uint) ([]RoomResponse, error)
	Update(id uint, req *UpdateRoomRequest) (*RoomResponse, error)
	ReplaceFurniture(id uint, req *ReplaceFurnitureRequest) (*RoomResponse, error)
	UpdateFurnitureCount(id uint, itemID uuid.UUID, req *UpdateFurnitureCountRequest) (*RoomResponse, error)
	Delete(id uint) error
}

// FloorMappingServiceInterface defines the interface for floor-mapping service
type FloorMappingServiceInterface interface {
	Get(projectID uint) (*FloorMappingResponse, error)
	Save(projectID uint, req *SaveFloorMappingRequest) (*FloorMappingResponse, error)
	ApplyEdits(projectID uint, req *EditFloorMappingRequest) (*FloorMappingResponse, error)
}

// AnalysisServiceInterface defines the interface for analysis service
type AnalysisServiceInterface interface {
	AnalyzeRoom(ctx context.Context, roomID uint) (*RoomResponse, error)
	AnalyzeFloorMapping(ctx context.Context, projectID uint, req *AnalyzeFloorMappingRequest) (*FloorMappingResponse, error)
}

// SummaryServiceInterface defines the interface for summary service
type SummaryServiceInterface interface {
	Summary(projectID uint) (*SummaryResponse, error)
	Demand(projectID uint) (*DemandResponse, error)
	ExportDemandCSV(projectID uint) (string, error)
}

// FurnitureServiceInterface defines the interface for furniture catalog service
type FurnitureServiceInterface interface {
	Create(req *CreateFurnitureRequest) (*FurnitureResponse, error)
	GetByID(id uint) (*FurnitureResponse, error)
	GetAll(page, pageSize int) (*FurnitureListResponse, error)
	Update(id uint, req *UpdateFurnitureRequest) (*FurnitureResponse, error)
	Delete(id uint) error
}

// UploadServiceInterface defines the interface for upload service
type UploadServiceInterface interface {
	Upload(ctx context.Context, data []byte, folder, fileName string) (*UploadResponse, error)
}
