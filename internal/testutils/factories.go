package testutils

import (
	"furnishing-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		Name:         "Test Project",
		FloorMapping: models.FloorMapping{},
	}
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(name string) *models.Project {
	project := f.Create()
	project.Name = name
	return project
}

// WithFloorMapping sets a floor mapping for the project
func (f *ProjectFactory) WithFloorMapping(mapping models.FloorMapping) *models.Project {
	project := f.Create()
	project.FloorMapping = mapping
	return project
}

// RoomFactory provides methods to create test Room data
type RoomFactory struct{}

// NewRoomFactory creates a new RoomFactory
func NewRoomFactory() *RoomFactory {
	return &RoomFactory{}
}

// Create creates a test Room with default values
func (f *RoomFactory) Create(projectID uint) *models.Room {
	return &models.Room{
		ProjectID: projectID,
		Name:      "Test Room",
		PdfURL:    "https://example.com/storage/test-room.pdf",
		Furniture: models.FurnitureList{},
	}
}

// WithName sets a custom name for the room
func (f *RoomFactory) WithName(projectID uint, name string) *models.Room {
	room := f.Create(projectID)
	room.Name = name
	return room
}

// WithFurniture sets the furniture list for the room
func (f *RoomFactory) WithFurniture(projectID uint, items ...models.FurnitureItem) *models.Room {
	room := f.Create(projectID)
	room.Furniture = items
	return room
}

// FurnitureItemOf builds one furniture list entry with a fresh id
func FurnitureItemOf(furnitureType string, count int) models.FurnitureItem {
	return models.FurnitureItem{
		ID:    uuid.New(),
		Type:  furnitureType,
		Count: count,
	}
}

// FurnitureRecordFactory provides methods to create test catalog data
type FurnitureRecordFactory struct{}

// NewFurnitureRecordFactory creates a new FurnitureRecordFactory
func NewFurnitureRecordFactory() *FurnitureRecordFactory {
	return &FurnitureRecordFactory{}
}

// Create creates a test FurnitureRecord with default values
func (f *FurnitureRecordFactory) Create() *models.FurnitureRecord {
	return &models.FurnitureRecord{
		Name:        "Test Sofa",
		Type:        "Sofa",
		Description: "A test sofa",
		Quantity:    4,
		Price:       1299.99,
		Location:    "Warehouse A",
	}
}

// SampleFloorMapping builds a small rectangular mapping for tests
func SampleFloorMapping() models.FloorMapping {
	return models.FloorMapping{
		{
			Name:  "Double Room",
			Total: 8,
			Floors: []models.FloorCount{
				{Name: "2F", Count: 3},
				{Name: "3F", Count: 5},
			},
		},
		{
			Name:  "Single Room",
			Total: 6,
			Floors: []models.FloorCount{
				{Name: "2F", Count: 4},
				{Name: "3F", Count: 2},
			},
		},
	}
}
