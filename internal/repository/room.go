package repository

import (
	"furnishing-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// RoomRepository handles database operations for rooms
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// Create creates a new room
func (r *RoomRepository) Create(room *models.Room) error {
	return r.db.Create(room).Error
}

// GetByID retrieves a room by ID
func (r *RoomRepository) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// GetByProjectID retrieves all rooms of a project, newest first
func (r *RoomRepository) GetByProjectID(projectID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Where("project_id = ?", projectID).Order("created_at DESC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// Update updates a room
func (r *RoomRepository) Update(room *models.Room) error {
	return r.db.Save(room).Error
}

// UpdateFurniture replaces the furniture list of a room
func (r *RoomRepository) UpdateFurniture(id uint, furniture models.FurnitureList) error {
	return r.db.Model(&models.Room{}).Where("id = ?", id).Update("furniture", furniture).Error
}

// UpdatePdfURL stores the public URL of the uploaded floor-plan document
func (r *RoomRepository) UpdatePdfURL(id uint, url string) error {
	return r.db.Model(&models.Room{}).Where("id = ?", id).Update("pdf_url", url).Error
}

// Delete deletes a room
func (r *RoomRepository) Delete(id uint) error {
	return r.db.Delete(&models.Room{}, "id = ?", id).Error
}
