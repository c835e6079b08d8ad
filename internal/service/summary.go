package service

import (
	"errors"
	"fmt"

	"furnishing-portal-backend/internal/aggregation"
	"furnishing-portal-backend/internal/database/models"
	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// SummaryService builds the aggregated analysis views of a project
type SummaryService struct {
	repo repository.ProjectRepositoryInterface
}

// NewSummaryService creates a new summary service
func NewSummaryService(repo repository.ProjectRepositoryInterface) *SummaryService {
	return &SummaryService{repo: repo}
}

// FurnitureTotalEntry is one row of the project-wide totals table
type FurnitureTotalEntry struct {
	Type  string  `json:"type"`
	Count int     `json:"count"`
	Share float64 `json:"share_percent"`
}

// RoomBreakdownEntry is one room row of the per-room detail matrix
type RoomBreakdownEntry struct {
	RoomName string `json:"room_name"`
	Counts   []int  `json:"counts"`
}

// SummaryResponse is the full analysis view for a project
type SummaryResponse struct {
	ProjectID  uint                  `json:"project_id"`
	RoomCount  int                   `json:"room_count"`
	TotalItems int                   `json:"total_items"`
	Totals     []FurnitureTotalEntry `json:"totals"`
	Types      []string              `json:"types"`
	Breakdown  []RoomBreakdownEntry  `json:"breakdown"`
}

// DemandResponse is the building-wide demand projection for a project
type DemandResponse struct {
	ProjectID uint                    `json:"project_id"`
	Rows      []aggregation.DemandRow `json:"rows"`
}

// Summary aggregates furniture across all rooms of a project: totals per type
// in first-seen order, each type's share of the grand total, and the per-room
// count matrix.
func (s *SummaryService) Summary(projectID uint) (*SummaryResponse, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, err
	}

	rooms := project.Rooms
	types := aggregation.TypeOrder(rooms)
	totals := aggregation.FurnitureTotals(rooms)
	grandTotal := aggregation.TotalCount(totals)
	breakdown := aggregation.RoomBreakdown(rooms, types)

	entries := make([]FurnitureTotalEntry, len(types))
	for i, t := range types {
		entries[i] = FurnitureTotalEntry{
			Type:  t,
			Count: totals[t],
			Share: aggregation.SharePercent(totals[t], grandTotal),
		}
	}

	rows := make([]RoomBreakdownEntry, len(breakdown.RoomNames))
	for i, name := range breakdown.RoomNames {
		rows[i] = RoomBreakdownEntry{RoomName: name, Counts: breakdown.Cells[i]}
	}

	return &SummaryResponse{
		ProjectID:  project.ID,
		RoomCount:  len(rooms),
		TotalItems: grandTotal,
		Totals:     entries,
		Types:      types,
		Breakdown:  rows,
	}, nil
}

// Demand projects building-wide furniture demand by crossing the floor
// mapping's room-type totals with sample room furniture lists.
func (s *SummaryService) Demand(projectID uint) (*DemandResponse, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, err
	}
	if len(project.FloorMapping) == 0 {
		return nil, apperrors.ErrEmptyFloorMapping
	}

	types := aggregation.TypeOrder(project.Rooms)
	rows := aggregation.ProjectDemand(types, project.FloorMapping, project.Rooms)

	return &DemandResponse{ProjectID: project.ID, Rows: rows}, nil
}

// ExportDemandCSV renders the demand projection as downloadable CSV text
func (s *SummaryService) ExportDemandCSV(projectID uint) (string, error) {
	demand, err := s.Demand(projectID)
	if err != nil {
		return "", err
	}
	return aggregation.ExportCSV(demand.Rows), nil
}

func (s *SummaryService) loadProject(projectID uint) (*models.Project, error) {
	project, err := s.repo.GetWithRooms(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}
