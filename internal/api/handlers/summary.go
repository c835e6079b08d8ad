package handlers

import (
	"errors"
	"net/http"

	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles HTTP requests for project analysis views
type SummaryHandler struct {
	summaryService service.SummaryServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService service.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// GetSummary handles GET /projects/:id/summary
// @Summary Get furniture summary
// @Description Aggregate furniture across all rooms of a project: totals per type, shares of the grand total and the per-room count matrix
// @Tags analysis
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} service.SummaryResponse "Successfully built summary"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.summaryService.Summary(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetDemand handles GET /projects/:id/demand
// @Summary Get demand projection
// @Description Project building-wide furniture demand by crossing the floor mapping's room-type totals with sample room furniture lists
// @Tags analysis
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} service.DemandResponse "Successfully projected demand"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 422 {object} map[string]interface{} "Project has no floor mapping"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/demand [get]
func (h *SummaryHandler) GetDemand(c *gin.Context) {
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	demand, err := h.summaryService.Demand(projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyFloorMapping) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, demand)
}

// ExportDemand handles GET /projects/:id/demand/export
// @Summary Export demand projection as CSV
// @Description Download the demand projection as a CSV file
// @Tags analysis
// @Produce text/csv
// @Param id path int true "Project ID"
// @Success 200 {string} string "CSV content"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 422 {object} map[string]interface{} "Project has no floor mapping"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/demand/export [get]
func (h *SummaryHandler) ExportDemand(c *gin.Context) {
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	csv, err := h.summaryService.ExportDemandCSV(projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyFloorMapping) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="furniture-demand.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}
