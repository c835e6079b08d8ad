package service

import (
	"errors"
	"fmt"

	"furnishing-portal-backend/internal/database/models"
	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo      repository.ProjectRepositoryInterface
	validator *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:      repo,
		validator: validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateProjectRequest represents the request to rename a project
type UpdateProjectRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	FloorMapping models.FloorMapping `json:"floor_mapping"`
	FloorPlanURL string              `json:"floor_plan_url"`
	Rooms        []RoomResponse      `json:"rooms,omitempty"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

// ProjectListResponse represents a paginated list of projects
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a new project
func (s *ProjectService) Create(req *CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project := &models.Project{
		Name:         req.Name,
		FloorMapping: models.FloorMapping{},
	}

	if err := s.repo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return s.toResponse(project, nil), nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(id uint) (*ProjectResponse, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return s.toResponse(project, nil), nil
}

// GetWithRooms retrieves a project together with its rooms, newest first
func (s *ProjectService) GetWithRooms(id uint) (*ProjectResponse, error) {
	project, err := s.repo.GetWithRooms(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return s.toResponse(project, project.Rooms), nil
}

// GetAll retrieves projects with pagination, newest first
func (s *ProjectService) GetAll(page, pageSize int) (*ProjectListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	projects, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}

	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = *s.toResponse(&project, nil)
	}

	return &ProjectListResponse{
		Projects: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update renames a project
func (s *ProjectService) Update(id uint, req *UpdateProjectRequest) (*ProjectResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	project, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	project.Name = req.Name
	if err := s.repo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return s.toResponse(project, nil), nil
}

// Delete deletes a project; its rooms go with it via the cascade constraint
func (s *ProjectService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to get project: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// toResponse converts a project model to response
func (s *ProjectService) toResponse(project *models.Project, rooms []models.Room) *ProjectResponse {
	resp := &ProjectResponse{
		ID:           project.ID,
		Name:         project.Name,
		FloorMapping: project.FloorMapping,
		FloorPlanURL: project.FloorPlanURL,
		CreatedAt:    project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    project.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if rooms != nil {
		resp.Rooms = make([]RoomResponse, len(rooms))
		for i, room := range rooms {
			resp.Rooms[i] = *roomToResponse(&room)
		}
	}
	return resp
}
