package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "landing-page-backend/internal/errors"
	"landing-page-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TemplateHandler handles HTTP requests for template catalog operations
type TemplateHandler struct {
	templateService service.TemplateServiceInterface
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService service.TemplateServiceInterface) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
	}
}

// ListTemplates handles GET /templates
// @Summary List templates
// @Description Get templates with optional status filtering and pagination
// @Tags templates
// @Accept json
// @Produce json
// @Param status query string false "Status filter (active/inactive)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TemplateListResponse "Successfully retrieved templates"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	status := c.Query("status")

	resp, err := h.templateService.List(status, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateTemplate handles POST /templates
// @Summary Register a template
// @Description Register a static template (HTML plus asset path) in the catalog
// @Tags templates
// @Accept json
// @Produce json
// @Param template body service.CreateTemplateRequest true "Template data"
// @Success 201 {object} service.TemplateResponse "Successfully created template"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /templates [post]
func (h *TemplateHandler) CreateTemplate(c *gin.Context) {
	var req service.CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, template)
}

// UpdateTemplate handles PUT /templates/:id
// @Summary Update a template
// @Description Edit a template's metadata
// @Tags templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param template body service.UpdateTemplateRequest true "Template data"
// @Success 200 {object} service.TemplateResponse "Successfully updated template"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /templates/{id} [put]
func (h *TemplateHandler) UpdateTemplate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template ID"})
		return
	}

	var req service.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteTemplate handles DELETE /templates/:id
// @Summary Delete a template
// @Description Remove a template from the catalog
// @Tags templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted template"
// @Failure 400 {object} map[string]interface{} "Invalid template ID"
// @Failure 404 {object} map[string]interface{} "Template not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /templates/{id} [delete]
func (h *TemplateHandler) DeleteTemplate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template ID"})
		return
	}

	if err := h.templateService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}
