package handlers

import (
	"errors"
	"net/http"

	apperrors "furnishing-portal-backend/internal/errors"
	"furnishing-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FloorMapHandler handles HTTP requests for a project's floor mapping
type FloorMapHandler struct {
	floorMappingService service.FloorMappingServiceInterface
	analysisService     service.AnalysisServiceInterface
}

// NewFloorMapHandler creates a new floor-mapping handler
func NewFloorMapHandler(floorMappingService service.FloorMappingServiceInterface, analysisService service.AnalysisServiceInterface) *FloorMapHandler {
	return &FloorMapHandler{
		floorMappingService: floorMappingService,
		analysisService:     analysisService,
	}
}

// GetFloorMapping handles GET /projects/:id/floor-mapping
// @Summary Get floor mapping
// @Description Get the stored room-type × floor matrix of a project
// @Tags floor-mapping
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} service.FloorMappingResponse "Successfully retrieved floor mapping"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/floor-mapping [get]
func (h *FloorMapHandler) GetFloorMapping(c *gin.Context) {
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	mapping, err := h.floorMappingService.Get(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapping)
}

// SaveFloorMapping handles PUT /projects/:id/floor-mapping
// @Summary Save floor mapping
// @Description Replace the project's room-type × floor matrix. Rows must share the same floor columns and counts must be non-negative; totals are recomputed from the cells.
// @Tags floor-mapping
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param mapping body service.SaveFloorMappingRequest true "Floor mapping"
// @Success 200 {object} service.FloorMappingResponse "Successfully saved floor mapping"
// @Failure 400 {object} map[string]interface{} "Ragged floor mapping or negative count"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/floor-mapping [put]
func (h *FloorMapHandler) SaveFloorMapping(c *gin.Context) {
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req service.SaveFloorMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mapping, err := h.floorMappingService.Save(projectID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRaggedFloorMapping) || errors.Is(err, apperrors.ErrNegativeFloorCount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapping)
}

// EditFloorMapping handles PATCH /projects/:id/floor-mapping
// @Summary Apply floor-mapping edits
// @Description Apply a sequence of editor operations (rename, set count, add or delete floors and room types) to the stored matrix. Invalid operations are ignored.
// @Tags floor-mapping
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param edits body service.EditFloorMappingRequest true "Editor operations"
// @Success 200 {object} service.FloorMappingResponse "Successfully applied edits"
// @Failure 400 {object} map[string]interface{} "Unknown edit operation"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/floor-mapping [patch]
func (h *FloorMapHandler) EditFloorMapping(c *gin.Context) {
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req service.EditFloorMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mapping, err := h.floorMappingService.ApplyEdits(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapping)
}

// AnalyzeFloorMapping handles POST /projects/:id/floor-mapping/analyze
// @Summary Analyze room-mix image
// @Description Run document analysis on an uploaded room-mix image and replace the project's floor mapping with the extracted matrix
// @Tags floor-mapping
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param file body service.AnalyzeFloorMappingRequest true "Uploaded image location"
// @Success 200 {object} service.FloorMappingResponse "Successfully analyzed floor mapping"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 502 {object} map[string]interface{} "Document analysis failed"
// @Router /projects/{id}/floor-mapping/analyze [post]
func (h *FloorMapHandler) AnalyzeFloorMapping(c *gin.Context) {
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req service.AnalyzeFloorMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mapping, err := h.analysisService.AnalyzeFloorMapping(c.Request.Context(), projectID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRoomMatrixShape) || errors.Is(err, apperrors.ErrNoJSONInResponse) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapping)
}
