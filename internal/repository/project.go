package repository

import (
	"furnishing-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetWithRooms retrieves a project with its rooms, newest room first
func (r *ProjectRepository) GetWithRooms(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Rooms", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	}).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects with pagination, newest first
func (r *ProjectRepository) GetAll(limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// UpdateFloorMapping replaces the floor-mapping document of a project.
// A single document replace, not a field-level transaction.
func (r *ProjectRepository) UpdateFloorMapping(id uint, mapping models.FloorMapping) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Update("floor_mapping", mapping).Error
}

// UpdateFloorPlanURL stores the public URL of the uploaded floor-plan image
func (r *ProjectRepository) UpdateFloorPlanURL(id uint, url string) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Update("floor_plan_url", url).Error
}

// Delete deletes a project
func (r *ProjectRepository) Delete(id uint) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
