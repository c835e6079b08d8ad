package service

import (
	"errors"
	"fmt"

	"furnishing-portal-backend/internal/database/models"
	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/floormap"
	"furnishing-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// FloorMappingService handles the floor-mapping document of a project
type FloorMappingService struct {
	repo repository.ProjectRepositoryInterface
}

// NewFloorMappingService creates a new floor-mapping service
func NewFloorMappingService(repo repository.ProjectRepositoryInterface) *FloorMappingService {
	return &FloorMappingService{repo: repo}
}

// SaveFloorMappingRequest carries a full replacement mapping. Totals in the
// payload are advisory: they are recomputed from the floor cells on save.
type SaveFloorMappingRequest struct {
	FloorMapping models.FloorMapping `json:"floor_mapping"`
}

// FloorMappingResponse represents the response for floor-mapping operations
type FloorMappingResponse struct {
	ProjectID    uint                `json:"project_id"`
	FloorMapping models.FloorMapping `json:"floor_mapping"`
	FloorPlanURL string              `json:"floor_plan_url"`
}

// Get retrieves the stored floor mapping of a project
func (s *FloorMappingService) Get(projectID uint) (*FloorMappingResponse, error) {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	mapping := project.FloorMapping
	if mapping == nil {
		mapping = models.FloorMapping{}
	}
	return &FloorMappingResponse{
		ProjectID:    project.ID,
		FloorMapping: mapping,
		FloorPlanURL: project.FloorPlanURL,
	}, nil
}

// Floor-mapping edit operation names
const (
	EditRenameFloor    = "rename_floor"
	EditRenameRoomType = "rename_room_type"
	EditSetCount       = "set_count"
	EditAddFloor       = "add_floor"
	EditAddRoomType    = "add_room_type"
	EditDeleteFloor    = "delete_floor"
	EditDeleteRoomType = "delete_room_type"
)

// FloorMappingEdit is one editor operation against the mapping matrix.
// Fields are read per operation: rename operations use Index and Name,
// set_count uses FloorIndex, RoomTypeIndex and Value, delete operations use
// Index, add operations take no arguments.
type FloorMappingEdit struct {
	Op            string `json:"op" binding:"required"`
	Index         int    `json:"index"`
	FloorIndex    int    `json:"floor_index"`
	RoomTypeIndex int    `json:"room_type_index"`
	Name          string `json:"name"`
	Value         string `json:"value"`
}

// EditFloorMappingRequest applies a sequence of editor operations
type EditFloorMappingRequest struct {
	Edits []FloorMappingEdit `json:"edits" binding:"required"`
}

// ApplyEdits runs editor operations against a draft of the stored mapping and
// persists the result when any of them changed it. Invalid operations are
// silent no-ops, matching the editor's behavior of ignoring bad input.
func (s *FloorMappingService) ApplyEdits(projectID uint, req *EditFloorMappingRequest) (*FloorMappingResponse, error) {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	session := floormap.NewSession(project.FloorMapping)
	for _, edit := range req.Edits {
		switch edit.Op {
		case EditRenameFloor:
			session.RenameFloor(edit.Index, edit.Name)
		case EditRenameRoomType:
			session.RenameRoomType(edit.Index, edit.Name)
		case EditSetCount:
			session.SetCount(edit.FloorIndex, edit.RoomTypeIndex, edit.Value)
		case EditAddFloor:
			session.AddFloor()
		case EditAddRoomType:
			session.AddRoomType()
		case EditDeleteFloor:
			session.DeleteFloor(edit.Index)
		case EditDeleteRoomType:
			session.DeleteRoomType(edit.Index)
		default:
			return nil, apperrors.NewValidationError("op", fmt.Sprintf("unknown edit operation %q", edit.Op))
		}
	}

	mapping := session.Snapshot()
	if session.Dirty() {
		if err := s.repo.UpdateFloorMapping(projectID, mapping); err != nil {
			return nil, fmt.Errorf("failed to save floor mapping: %w", err)
		}
		session.MarkSaved()
	}

	return &FloorMappingResponse{
		ProjectID:    project.ID,
		FloorMapping: mapping,
		FloorPlanURL: project.FloorPlanURL,
	}, nil
}

// Save replaces the floor mapping of a project wholesale. The mapping must be
// rectangular: every room-type row carries the same floor columns in the same
// order, and no cell may be negative. Row totals are recomputed from the
// cells before persisting.
func (s *FloorMappingService) Save(projectID uint, req *SaveFloorMappingRequest) (*FloorMappingResponse, error) {
	project, err := s.repo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	mapping := req.FloorMapping
	if mapping == nil {
		mapping = models.FloorMapping{}
	}
	if !mapping.Rectangular() {
		return nil, apperrors.ErrRaggedFloorMapping
	}
	for _, rt := range mapping {
		for _, f := range rt.Floors {
			if f.Count < 0 {
				return nil, apperrors.ErrNegativeFloorCount
			}
		}
	}
	mapping.RecomputeTotals()

	if err := s.repo.UpdateFloorMapping(projectID, mapping); err != nil {
		return nil, fmt.Errorf("failed to save floor mapping: %w", err)
	}

	return &FloorMappingResponse{
		ProjectID:    project.ID,
		FloorMapping: mapping,
		FloorPlanURL: project.FloorPlanURL,
	}, nil
}
