package handlers

import (
	"net/http"

	"furnishing-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FurnitureHandler handles HTTP requests for the furniture catalog
type FurnitureHandler struct {
	furnitureService service.FurnitureServiceInterface
}

// NewFurnitureHandler creates a new furniture catalog handler
func NewFurnitureHandler(furnitureService service.FurnitureServiceInterface) *FurnitureHandler {
	return &FurnitureHandler{
		furnitureService: furnitureService,
	}
}

// CreateFurniture handles POST /furniture
// @Summary Create a catalog entry
// @Description Create a new furniture catalog entry
// @Tags furniture
// @Accept json
// @Produce json
// @Param furniture body service.CreateFurnitureRequest true "Furniture data"
// @Success 201 {object} service.FurnitureResponse "Successfully created furniture record"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /furniture [post]
func (h *FurnitureHandler) CreateFurniture(c *gin.Context) {
	var req service.CreateFurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.furnitureService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetFurniture handles GET /furniture/:id
// @Summary Get catalog entry by ID
// @Description Get a specific furniture catalog entry
// @Tags furniture
// @Produce json
// @Param id path int true "Furniture ID"
// @Success 200 {object} service.FurnitureResponse "Successfully retrieved furniture record"
// @Failure 400 {object} map[string]interface{} "Invalid furniture ID"
// @Failure 404 {object} map[string]interface{} "Furniture record not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /furniture/{id} [get]
func (h *FurnitureHandler) GetFurniture(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	record, err := h.furnitureService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListFurniture handles GET /furniture
// @Summary List catalog entries
// @Description List furniture catalog entries with pagination, newest first
// @Tags furniture
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.FurnitureListResponse "Successfully retrieved furniture records"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /furniture [get]
func (h *FurnitureHandler) ListFurniture(c *gin.Context) {
	page, pageSize := parsePagination(c)

	records, err := h.furnitureService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// UpdateFurniture handles PUT /furniture/:id
// @Summary Update catalog entry
// @Description Update an existing furniture catalog entry
// @Tags furniture
// @Accept json
// @Produce json
// @Param id path int true "Furniture ID"
// @Param furniture body service.UpdateFurnitureRequest true "Updated furniture data"
// @Success 200 {object} service.FurnitureResponse "Successfully updated furniture record"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Furniture record not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /furniture/{id} [put]
func (h *FurnitureHandler) UpdateFurniture(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateFurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.furnitureService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// DeleteFurniture handles DELETE /furniture/:id
// @Summary Delete catalog entry
// @Description Delete a furniture catalog entry
// @Tags furniture
// @Produce json
// @Param id path int true "Furniture ID"
// @Success 204 "Successfully deleted furniture record"
// @Failure 400 {object} map[string]interface{} "Invalid furniture ID"
// @Failure 404 {object} map[string]interface{} "Furniture record not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /furniture/{id} [delete]
func (h *FurnitureHandler) DeleteFurniture(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.furnitureService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
