package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "landing-page-backend/internal/errors"
	"landing-page-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VideoHandler handles HTTP requests for video catalog operations
type VideoHandler struct {
	videoService service.VideoServiceInterface
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService service.VideoServiceInterface) *VideoHandler {
	return &VideoHandler{
		videoService: videoService,
	}
}

// ListVideos handles GET /videos
// @Summary List videos
// @Description Get videos with optional category filtering and pagination
// @Tags videos
// @Accept json
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.VideoListResponse "Successfully retrieved videos"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /videos [get]
func (h *VideoHandler) ListVideos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	category := c.Query("category")

	resp, err := h.videoService.List(category, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateVideo handles POST /videos
// @Summary Register a video
// @Description Manually import a single video asset into the catalog
// @Tags videos
// @Accept json
// @Produce json
// @Param video body service.CreateVideoRequest true "Video data"
// @Success 201 {object} service.VideoResponse "Successfully created video"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /videos [post]
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req service.CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videoService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, video)
}

// UpdateVideo handles PUT /videos/:id
// @Summary Update a video
// @Description Edit a video asset's display information
// @Tags videos
// @Accept json
// @Produce json
// @Param id path int true "Video ID"
// @Param video body service.UpdateVideoRequest true "Video data"
// @Success 200 {object} service.VideoResponse "Successfully updated video"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Video not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /videos/{id} [put]
func (h *VideoHandler) UpdateVideo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video ID"})
		return
	}

	var req service.UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videoService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, video)
}

// DeleteVideo handles DELETE /videos/:id
// @Summary Delete a video
// @Description Remove a video asset from the catalog
// @Tags videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted video"
// @Failure 400 {object} map[string]interface{} "Invalid video ID"
// @Failure 404 {object} map[string]interface{} "Video not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /videos/{id} [delete]
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video ID"})
		return
	}

	if err := h.videoService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrVideoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "video deleted"})
}

// SyncVideos handles POST /videos/sync
// @Summary Sync videos from the external catalog
// @Description Import the external ranking feed into the local video catalog
// @Tags videos
// @Accept json
// @Produce json
// @Param request body service.SyncVideosRequest false "Sync window"
// @Success 200 {object} service.SyncVideosResponse "Sync result"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 502 {object} map[string]interface{} "External API failure"
// @Router /videos/sync [post]
func (h *VideoHandler) SyncVideos(c *gin.Context) {
	var req service.SyncVideosRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.videoService.Sync(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrVideoAPINotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
