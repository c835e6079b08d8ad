package handlers

import (
	"net/http"

	"furnishing-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoomHandler handles HTTP requests for room operations
type RoomHandler struct {
	roomService     service.RoomServiceInterface
	analysisService service.AnalysisServiceInterface
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService service.RoomServiceInterface, analysisService service.AnalysisServiceInterface) *RoomHandler {
	return &RoomHandler{
		roomService:     roomService,
		analysisService: analysisService,
	}
}

// CreateRoom handles POST /projects/:id/rooms
// @Summary Create a new room
// @Description Create a room under a project, optionally seeded with a furniture list
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param room body service.CreateRoomRequest true "Room data"
// @Success 201 {object} service.RoomResponse "Successfully created room"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.Create(projectID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ListRooms handles GET /projects/:id/rooms
// @Summary List rooms of a project
// @Description List all rooms of a project, newest first
// @Tags rooms
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} service.RoomResponse "Successfully retrieved rooms"
// @Failure 404 {object} map[string]interface{} "Project not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /projects/{id}/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	projectID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	rooms, err := h.roomService.GetByProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /rooms/:id
// @Summary Get room by ID
// @Description Get a specific room including its furniture list
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} service.RoomResponse "Successfully retrieved room"
// @Failure 400 {object} map[string]interface{} "Invalid room ID"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	room, err := h.roomService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// UpdateRoom handles PUT /rooms/:id
// @Summary Update room
// @Description Rename a room or adjust its document URL and room-type assignment
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param room body service.UpdateRoomRequest true "Updated room data"
// @Success 200 {object} service.RoomResponse "Successfully updated room"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// ReplaceFurniture handles PUT /rooms/:id/furniture
// @Summary Replace room furniture
// @Description Replace the whole furniture list of a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param furniture body service.ReplaceFurnitureRequest true "Furniture list"
// @Success 200 {object} service.RoomResponse "Successfully replaced furniture"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id}/furniture [put]
func (h *RoomHandler) ReplaceFurniture(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req service.ReplaceFurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.ReplaceFurniture(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// UpdateFurnitureCount handles PATCH /rooms/:id/furniture/:itemId
// @Summary Edit one furniture item's count
// @Description Set the count of a single furniture item, addressed by its stable ID
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param itemId path string true "Furniture item ID (UUID)"
// @Param count body service.UpdateFurnitureCountRequest true "New count"
// @Success 200 {object} service.RoomResponse "Successfully updated furniture item"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Room or furniture item not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id}/furniture/{itemId} [patch]
func (h *RoomHandler) UpdateFurnitureCount(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid furniture item ID"})
		return
	}

	var req service.UpdateFurnitureCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.UpdateFurnitureCount(id, itemID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// AnalyzeRoom handles POST /rooms/:id/analyze
// @Summary Analyze room floor plan
// @Description Run document analysis on the room's floor-plan PDF and replace its furniture list with the extracted items
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} service.RoomResponse "Successfully analyzed room"
// @Failure 400 {object} map[string]interface{} "Room has no document to analyze"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 502 {object} map[string]interface{} "Document analysis failed"
// @Router /rooms/{id}/analyze [post]
func (h *RoomHandler) AnalyzeRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	room, err := h.analysisService.AnalyzeRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /rooms/:id
// @Summary Delete room
// @Description Delete a room and its furniture list
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 204 "Successfully deleted room"
// @Failure 400 {object} map[string]interface{} "Invalid room ID"
// @Failure 404 {object} map[string]interface{} "Room not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.roomService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
