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

// FurnitureService handles business logic for the furniture catalog
type FurnitureService struct {
	repo      repository.FurnitureRepositoryInterface
	validator *validator.Validate
}

// NewFurnitureService creates a new furniture catalog service
func NewFurnitureService(repo repository.FurnitureRepositoryInterface, validator *validator.Validate) *FurnitureService {
	return &FurnitureService{
		repo:      repo,
		validator: validator,
	}
}

// CreateFurnitureRequest represents the request to create a catalog entry
type CreateFurnitureRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Type        string  `json:"type" validate:"required,max=100"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity" validate:"min=0"`
	Price       float64 `json:"price" validate:"min=0"`
	Location    string  `json:"location,omitempty" validate:"omitempty,max=200"`
}

// UpdateFurnitureRequest represents the request to update a catalog entry
type UpdateFurnitureRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Type        string  `json:"type" validate:"required,max=100"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity" validate:"min=0"`
	Price       float64 `json:"price" validate:"min=0"`
	Location    string  `json:"location,omitempty" validate:"omitempty,max=200"`
}

// FurnitureResponse represents the response for catalog operations
type FurnitureResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// FurnitureListResponse represents a paginated catalog listing
type FurnitureListResponse struct {
	Furniture []FurnitureResponse `json:"furniture"`
	Total     int64               `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

// Create creates a new catalog entry
func (s *FurnitureService) Create(req *CreateFurnitureRequest) (*FurnitureResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	record := &models.FurnitureRecord{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Location:    req.Location,
	}

	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create furniture record: %w", err)
	}

	return s.toResponse(record), nil
}

// GetByID retrieves a catalog entry by ID
func (s *FurnitureService) GetByID(id uint) (*FurnitureResponse, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFurnitureNotFound
		}
		return nil, fmt.Errorf("failed to get furniture record: %w", err)
	}

	return s.toResponse(record), nil
}

// GetAll retrieves catalog entries with pagination, newest first
func (s *FurnitureService) GetAll(page, pageSize int) (*FurnitureListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	records, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get furniture records: %w", err)
	}

	responses := make([]FurnitureResponse, len(records))
	for i, record := range records {
		responses[i] = *s.toResponse(&record)
	}

	return &FurnitureListResponse{
		Furniture: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update updates a catalog entry
func (s *FurnitureService) Update(id uint, req *UpdateFurnitureRequest) (*FurnitureResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFurnitureNotFound
		}
		return nil, fmt.Errorf("failed to get furniture record: %w", err)
	}

	record.Name = req.Name
	record.Type = req.Type
	record.Description = req.Description
	record.Quantity = req.Quantity
	record.Price = req.Price
	record.Location = req.Location

	if err := s.repo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update furniture record: %w", err)
	}

	return s.toResponse(record), nil
}

// Delete deletes a catalog entry
func (s *FurnitureService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFurnitureNotFound
		}
		return fmt.Errorf("failed to get furniture record: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete furniture record: %w", err)
	}

	return nil
}

// toResponse converts a furniture record to response
func (s *FurnitureService) toResponse(record *models.FurnitureRecord) *FurnitureResponse {
	return &FurnitureResponse{
		ID:          record.ID,
		Name:        record.Name,
		Type:        record.Type,
		Description: record.Description,
		Quantity:    record.Quantity,
		Price:       record.Price,
		Location:    record.Location,
		CreatedAt:   record.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   record.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
