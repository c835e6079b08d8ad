package service

import (
	"errors"
	"fmt"

	"furnishing-portal-backend/internal/database/models"
	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomService handles business logic for rooms
type RoomService struct {
	repo        repository.RoomRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
	validator   *validator.Validate
}

// NewRoomService creates a new room service
func NewRoomService(repo repository.RoomRepositoryInterface, projectRepo repository.ProjectRepositoryInterface, validator *validator.Validate) *RoomService {
	return &RoomService{
		repo:        repo,
		projectRepo: projectRepo,
		validator:   validator,
	}
}

// FurnitureItemRequest is one furniture entry in a room payload. The ID is
// optional: entries without one are treated as new items and assigned a
// stable identifier.
type FurnitureItemRequest struct {
	ID    *uuid.UUID `json:"id,omitempty"`
	Type  string     `json:"type" validate:"required,max=100"`
	Count int        `json:"count" validate:"min=0"`
}

// CreateRoomRequest represents the request to create a room
type CreateRoomRequest struct {
	Name      string                 `json:"name" validate:"required,min=1,max=200"`
	PdfURL    string                 `json:"pdf_url,omitempty" validate:"omitempty,max=500"`
	RoomType  string                 `json:"room_type,omitempty" validate:"omitempty,max=200"`
	Furniture []FurnitureItemRequest `json:"furniture,omitempty" validate:"omitempty,dive"`
}

// UpdateRoomRequest represents the request to update a room
type UpdateRoomRequest struct {
	Name     string  `json:"name" validate:"required,min=1,max=200"`
	PdfURL   *string `json:"pdf_url,omitempty" validate:"omitempty,max=500"`
	RoomType *string `json:"room_type,omitempty" validate:"omitempty,max=200"`
}

// ReplaceFurnitureRequest replaces the whole furniture list of a room
type ReplaceFurnitureRequest struct {
	Furniture []FurnitureItemRequest `json:"furniture" validate:"required,dive"`
}

// UpdateFurnitureCountRequest edits one furniture item's count
type UpdateFurnitureCountRequest struct {
	Count int `json:"count" validate:"min=0"`
}

// RoomResponse represents the response for room operations
type RoomResponse struct {
	ID        uint                 `json:"id"`
	ProjectID uint                 `json:"project_id"`
	Name      string               `json:"name"`
	PdfURL    string               `json:"pdf_url"`
	RoomType  string               `json:"room_type"`
	Furniture models.FurnitureList `json:"furniture"`
	CreatedAt string               `json:"created_at"`
	UpdatedAt string               `json:"updated_at"`
}

// Create creates a new room under a project
func (s *RoomService) Create(projectID uint, req *CreateRoomRequest) (*RoomResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	room := &models.Room{
		ProjectID: projectID,
		Name:      req.Name,
		PdfURL:    req.PdfURL,
		RoomType:  req.RoomType,
		Furniture: buildFurnitureList(req.Furniture),
	}

	if err := s.repo.Create(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return roomToResponse(room), nil
}

// GetByID retrieves a room by ID
func (s *RoomService) GetByID(id uint) (*RoomResponse, error) {
	room, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return roomToResponse(room), nil
}

// GetByProject retrieves all rooms of a project, newest first
func (s *RoomService) GetByProject(projectID uint) ([]RoomResponse, error) {
	if _, err := s.projectRepo.GetByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	rooms, err := s.repo.GetByProjectID(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	responses := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = *roomToResponse(&room)
	}
	return responses, nil
}

// Update renames a room or adjusts its document URL / room-type assignment
func (s *RoomService) Update(id uint, req *UpdateRoomRequest) (*RoomResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	room, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	room.Name = req.Name
	if req.PdfURL != nil {
		room.PdfURL = *req.PdfURL
	}
	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}

	if err := s.repo.Update(room); err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}

	return roomToResponse(room), nil
}

// ReplaceFurniture swaps the room's furniture list wholesale, preserving
// incoming ids and assigning fresh ones to entries without
func (s *RoomService) ReplaceFurniture(id uint, req *ReplaceFurnitureRequest) (*RoomResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	room, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	room.Furniture = buildFurnitureList(req.Furniture)
	if err := s.repo.UpdateFurniture(id, room.Furniture); err != nil {
		return nil, fmt.Errorf("failed to update furniture: %w", err)
	}

	return roomToResponse(room), nil
}

// UpdateFurnitureCount edits one item's count, addressed by its stable id
func (s *RoomService) UpdateFurnitureCount(id uint, itemID uuid.UUID, req *UpdateFurnitureCountRequest) (*RoomResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	room, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	found := false
	for i := range room.Furniture {
		if room.Furniture[i].ID == itemID {
			room.Furniture[i].Count = req.Count
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.ErrFurnitureItemNotFound
	}

	if err := s.repo.UpdateFurniture(id, room.Furniture); err != nil {
		return nil, fmt.Errorf("failed to update furniture: %w", err)
	}

	return roomToResponse(room), nil
}

// Delete deletes a room
func (s *RoomService) Delete(id uint) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoomNotFound
		}
		return fmt.Errorf("failed to get room: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

func buildFurnitureList(items []FurnitureItemRequest) models.FurnitureList {
	list := make(models.FurnitureList, len(items))
	for i, item := range items {
		id := uuid.New()
		if item.ID != nil && *item.ID != uuid.Nil {
			id = *item.ID
		}
		list[i] = models.FurnitureItem{ID: id, Type: item.Type, Count: item.Count}
	}
	return list
}

func roomToResponse(room *models.Room) *RoomResponse {
	furniture := room.Furniture
	if furniture == nil {
		furniture = models.FurnitureList{}
	}
	return &RoomResponse{
		ID:        room.ID,
		ProjectID: room.ProjectID,
		Name:      room.Name,
		PdfURL:    room.PdfURL,
		RoomType:  room.RoomType,
		Furniture: furniture,
		CreatedAt: room.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: room.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
