package handlers

import (
	"io"
	"net/http"

	"furnishing-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// uploads larger than this are rejected before touching storage
const maxUploadBytes = 20 << 20

// UploadHandler handles HTTP requests for document uploads
type UploadHandler struct {
	uploadService service.UploadServiceInterface
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService service.UploadServiceInterface) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Upload handles POST /uploads
// @Summary Upload a document
// @Description Store a floor-plan PDF or room-mix image and return its public URL
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to upload"
// @Param folder formData string false "Storage folder" default(uploads)
// @Success 201 {object} service.UploadResponse "Successfully uploaded document"
// @Failure 400 {object} map[string]interface{} "Missing or unsupported file"
// @Failure 502 {object} map[string]interface{} "Storage upload failed"
// @Failure 503 {object} map[string]interface{} "Storage not configured"
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the 20MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	folder := c.PostForm("folder")

	result, err := h.uploadService.Upload(c.Request.Context(), data, folder, fileHeader.Filename)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
