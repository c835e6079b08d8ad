package repository

import (
	"furnishing-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// FurnitureRepository handles database operations for the furniture catalog
type FurnitureRepository struct {
	db *gorm.DB
}

// NewFurnitureRepository creates a new furniture repository
func NewFurnitureRepository(db *gorm.DB) *FurnitureRepository {
	return &FurnitureRepository{db: db}
}

// Create creates a new furniture record
func (r *FurnitureRepository) Create(record *models.FurnitureRecord) error {
	return r.db.Create(record).Error
}

// GetByID retrieves a furniture record by ID
func (r *FurnitureRepository) GetByID(id uint) (*models.FurnitureRecord, error) {
	var record models.FurnitureRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetAll retrieves all furniture records with pagination, newest first
func (r *FurnitureRepository) GetAll(limit, offset int) ([]models.FurnitureRecord, int64, error) {
	var records []models.FurnitureRecord
	var total int64

	if err := r.db.Model(&models.FurnitureRecord{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Update updates a furniture record
func (r *FurnitureRepository) Update(record *models.FurnitureRecord) error {
	return r.db.Save(record).Error
}

// Delete deletes a furniture record
func (r *FurnitureRepository) Delete(id uint) error {
	return r.db.Delete(&models.FurnitureRecord{}, "id = ?", id).Error
}
