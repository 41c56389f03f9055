package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "landing-page-backend/internal/errors"
	"landing-page-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler handles HTTP requests for workflow operations, including
// landing page generation and preview
type WorkflowHandler struct {
	workflowService   service.WorkflowServiceInterface
	generationService service.GenerationServiceInterface
}

// NewWorkflowHandler creates a new workflow handler
func NewWorkflowHandler(workflowService service.WorkflowServiceInterface, generationService service.GenerationServiceInterface) *WorkflowHandler {
	return &WorkflowHandler{
		workflowService:   workflowService,
		generationService: generationService,
	}
}

// ListWorkflows handles GET /workflows
// @Summary List workflows
// @Description Get workflow batches with optional status filtering and pagination
// @Tags workflows
// @Accept json
// @Produce json
// @Param status query string false "Status filter"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.WorkflowListResponse "Successfully retrieved workflows"
// @Failure 400 {object} map[string]interface{} "Invalid status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /workflows [get]
func (h *WorkflowHandler) ListWorkflows(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	status := c.Query("status")

	resp, err := h.workflowService.List(status, page, pageSize)
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

// CreateWorkflow handles POST /workflows
// @Summary Create a workflow
// @Description Create a new workflow batch in draft status
// @Tags workflows
// @Accept json
// @Produce json
// @Param workflow body service.CreateWorkflowRequest true "Workflow data"
// @Success 201 {object} service.WorkflowResponse "Successfully created workflow"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /workflows [post]
func (h *WorkflowHandler) CreateWorkflow(c *gin.Context) {
	var req service.CreateWorkflowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workflow, err := h.workflowService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, workflow)
}

// GetWorkflow handles GET /workflows/:id
// @Summary Get workflow detail
// @Description Get a workflow batch with all of its landing pages
// @Tags workflows
// @Produce json
// @Param id path int true "Workflow ID"
// @Success 200 {object} service.WorkflowDetailResponse "Successfully retrieved workflow"
// @Failure 400 {object} map[string]interface{} "Invalid workflow ID"
// @Failure 404 {object} map[string]interface{} "Workflow not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /workflows/{id} [get]
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workflow ID"})
		return
	}

	workflow, err := h.workflowService.GetDetail(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrWorkflowNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workflow)
}

// GenerateLandingPages handles POST /workflows/:id/generate
// @Summary Generate landing pages
// @Description Render one landing page per selected template for the workflow and advance it to pending_ad
// @Tags workflows
// @Accept json
// @Produce json
// @Param id path int true "Workflow ID"
// @Param request body service.GenerateRequest true "Video and template selection"
// @Success 200 {object} service.WorkflowDetailResponse "Generation result"
// @Failure 400 {object} map[string]interface{} "Selection validation failed"
// @Failure 404 {object} map[string]interface{} "Workflow, template or video not found"
// @Failure 409 {object} map[string]interface{} "Workflow not in draft status or pages already generated"
// @Failure 500 {object} map[string]interface{} "Render or persistence failure"
// @Router /workflows/{id}/generate [post]
func (h *WorkflowHandler) GenerateLandingPages(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workflow ID"})
		return
	}

	var req service.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.generationService.Generate(id, &req)
	if err != nil {
		h.writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PreviewLandingPage handles POST /workflows/preview
// @Summary Preview a landing page
// @Description Render a throwaway artifact for a single template without persisting anything
// @Tags workflows
// @Accept json
// @Produce json
// @Param request body service.PreviewRequest true "Video selection and template"
// @Success 200 {object} service.PreviewResponse "Preview artifact URL"
// @Failure 400 {object} map[string]interface{} "Selection validation failed"
// @Failure 404 {object} map[string]interface{} "Template or video not found"
// @Failure 500 {object} map[string]interface{} "Render failure"
// @Router /workflows/preview [post]
func (h *WorkflowHandler) PreviewLandingPage(c *gin.Context) {
	var req service.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.generationService.Preview(&req)
	if err != nil {
		h.writeGenerationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ArchiveWorkflow handles POST /workflows/:id/archive
// @Summary Archive a workflow
// @Description Move a ready workflow to archived status
// @Tags workflows
// @Produce json
// @Param id path int true "Workflow ID"
// @Success 200 {object} map[string]interface{} "Successfully archived workflow"
// @Failure 400 {object} map[string]interface{} "Invalid workflow ID"
// @Failure 404 {object} map[string]interface{} "Workflow not found"
// @Failure 409 {object} map[string]interface{} "Workflow not in ready status"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /workflows/{id}/archive [post]
func (h *WorkflowHandler) ArchiveWorkflow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workflow ID"})
		return
	}

	if err := h.workflowService.Archive(id); err != nil {
		if errors.Is(err, apperrors.ErrWorkflowNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsState(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workflow archived"})
}

// DeleteWorkflow handles DELETE /workflows/:id
// @Summary Delete a workflow
// @Description Delete a workflow batch and all of its landing pages
// @Tags workflows
// @Produce json
// @Param id path int true "Workflow ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted workflow"
// @Failure 400 {object} map[string]interface{} "Invalid workflow ID"
// @Failure 404 {object} map[string]interface{} "Workflow not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /workflows/{id} [delete]
func (h *WorkflowHandler) DeleteWorkflow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workflow ID"})
		return
	}

	if err := h.workflowService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrWorkflowNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workflow deleted"})
}

// writeGenerationError maps generation/preview error kinds onto HTTP
// statuses: validation failures are 400, missing entities 404, state
// conflicts and duplicate pages 409, render/persistence failures 500.
func (h *WorkflowHandler) writeGenerationError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsState(err), errors.Is(err, apperrors.ErrLandingPageExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
