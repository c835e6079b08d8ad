package service

import (
	"context"
	"errors"
	"fmt"

	"furnishing-portal-backend/internal/database/models"
	"furnishing-portal-backend/internal/docintel"
	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentParser is the slice of the document intelligence client the
// analysis service depends on.
type DocumentParser interface {
	ParseFurniture(ctx context.Context, fileURL, fileName string) ([]docintel.FurnitureItem, error)
	ParseFloorMapping(ctx context.Context, fileURL, fileName string) ([]docintel.RoomTypeRow, error)
}

// AnalysisService runs document analysis and persists the extracted results
type AnalysisService struct {
	parser      DocumentParser
	roomRepo    repository.RoomRepositoryInterface
	projectRepo repository.ProjectRepositoryInterface
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(parser DocumentParser, roomRepo repository.RoomRepositoryInterface, projectRepo repository.ProjectRepositoryInterface) *AnalysisService {
	return &AnalysisService{
		parser:      parser,
		roomRepo:    roomRepo,
		projectRepo: projectRepo,
	}
}

// AnalyzeFloorMappingRequest points the analyzer at an uploaded room-mix image
type AnalyzeFloorMappingRequest struct {
	FileURL  string `json:"file_url" binding:"required"`
	FileName string `json:"file_name"`
}

// AnalyzeRoom sends the room's floor-plan PDF through document analysis and
// replaces the room's furniture list with the extracted items. Every item gets
// a fresh stable id.
func (s *AnalysisService) AnalyzeRoom(ctx context.Context, roomID uint) (*RoomResponse, error) {
	room, err := s.roomRepo.GetByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	if room.PdfURL == "" {
		return nil, apperrors.NewValidationError("pdf_url", "room has no floor-plan document to analyze")
	}

	items, err := s.parser.ParseFurniture(ctx, room.PdfURL, room.Name+".pdf")
	if err != nil {
		return nil, err
	}

	furniture := make(models.FurnitureList, len(items))
	for i, item := range items {
		furniture[i] = models.FurnitureItem{
			ID:    uuid.New(),
			Type:  item.Type,
			Count: item.Count,
		}
	}

	if err := s.roomRepo.UpdateFurniture(roomID, furniture); err != nil {
		return nil, fmt.Errorf("failed to save extracted furniture: %w", err)
	}

	room.Furniture = furniture
	return roomToResponse(room), nil
}

// AnalyzeFloorMapping sends a room-mix image through document analysis and
// replaces the project's floor mapping with the extracted matrix. The source
// image URL is remembered on the project so the editor can show it later.
func (s *AnalysisService) AnalyzeFloorMapping(ctx context.Context, projectID uint, req *AnalyzeFloorMappingRequest) (*FloorMappingResponse, error) {
	project, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = "room-mix"
	}

	rows, err := s.parser.ParseFloorMapping(ctx, req.FileURL, fileName)
	if err != nil {
		return nil, err
	}

	mapping := make(models.FloorMapping, len(rows))
	for i, row := range rows {
		floors := make([]models.FloorCount, len(row.Floors))
		for j, fc := range row.Floors {
			floors[j] = models.FloorCount{Name: fc.Name, Count: fc.Count}
		}
		mapping[i] = models.RoomTypeCount{
			Name:   row.Name,
			Total:  row.Total,
			Floors: floors,
		}
	}
	if !mapping.Rectangular() {
		return nil, apperrors.ErrInvalidRoomMatrixShape
	}
	mapping.RecomputeTotals()

	if err := s.projectRepo.UpdateFloorMapping(projectID, mapping); err != nil {
		return nil, fmt.Errorf("failed to save floor mapping: %w", err)
	}
	if err := s.projectRepo.UpdateFloorPlanURL(projectID, req.FileURL); err != nil {
		return nil, fmt.Errorf("failed to save floor-plan url: %w", err)
	}

	return &FloorMappingResponse{
		ProjectID:    project.ID,
		FloorMapping: mapping,
		FloorPlanURL: req.FileURL,
	}, nil
}
