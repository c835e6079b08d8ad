package repository

import (
	"furnishing-portal-backend/internal/database/models"
)

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uint) (*models.Project, error)
	GetWithRooms(id uint) (*models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	UpdateFloorMapping(id uint, mapping models.FloorMapping) error
	UpdateFloorPlanURL(id uint, url string) error
	Delete(id uint) error
}

// RoomRepositoryInterface defines the interface for room repository operations
type RoomRepositoryInterface interface {
	Create(room *models.Room) error
	GetByID(id uint) (*models.Room, error)
	GetByProjectID(projectID uint) ([]models.Room, error)
	Update(room *models.Room) error
	UpdateFurniture(id uint, furniture models.FurnitureList) error
	UpdatePdfURL(id uint, url string) error
	Delete(id uint) error
}

// FurnitureRepositoryInterface defines the interface for the furniture catalog
type FurnitureRepositoryInterface interface {
	Create(record *models.FurnitureRecord) error
	GetByID(id uint) (*models.FurnitureRecord, error)
	GetAll(limit, offset int) ([]models.FurnitureRecord, int64, error)
	Update(record *models.FurnitureRecord) error
	Delete(id uint) error
}
