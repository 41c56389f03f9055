package service

import (
	"errors"
	"fmt"

	"landing-page-backend/internal/database/models"
	apperrors "landing-page-backend/internal/errors"
	"landing-page-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// WorkflowService provides workflow batch business logic outside of
// generation itself: creation, listing, detail, archival and deletion
type WorkflowService struct {
	repo      repository.WorkflowRepositoryInterface
	pageRepo  repository.LandingPageRepositoryInterface
	validator *validator.Validate
}

// Ensure WorkflowService implements WorkflowServiceInterface
var _ WorkflowServiceInterface = (*WorkflowService)(nil)

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(repo repository.WorkflowRepositoryInterface, pageRepo repository.LandingPageRepositoryInterface, validator *validator.Validate) *WorkflowService {
	return &WorkflowService{
		repo:      repo,
		pageRepo:  pageRepo,
		validator: validator,
	}
}

// CreateWorkflowRequest represents the request to create a workflow batch
type CreateWorkflowRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	CreatedBy string `json:"created_by,omitempty" validate:"max=100"`
}

// WorkflowResponse represents a workflow in list responses.
// LandingPageCount is computed from owned rows on every read.
type WorkflowResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	CreatedBy        string `json:"created_by"`
	CreatedAt        string `json:"created_at"`
	LandingPageCount int64  `json:"landing_page_count"`
}

// WorkflowListResponse represents a paginated list of workflows
type WorkflowListResponse struct {
	Workflows []WorkflowResponse `json:"workflows"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// LandingPageResponse represents one rendered landing page
type LandingPageResponse struct {
	ID               int64   `json:"id"`
	TemplateID       int64   `json:"template_id"`
	SelectedVideoIDs []int64 `json:"selected_video_ids"`
	GeneratedPageURL string  `json:"generated_page_url"`
}

// WorkflowDetailResponse represents a workflow with its landing pages
type WorkflowDetailResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Status       string                `json:"status"`
	CreatedBy    string                `json:"created_by"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
	LandingPages []LandingPageResponse `json:"landing_pages"`
}

// Create creates a new workflow batch in draft status
func (s *WorkflowService) Create(req *CreateWorkflowRequest) (*WorkflowResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = "system"
	}

	workflow := &models.Workflow{
		Name:      req.Name,
		Status:    models.WorkflowStatusDraft,
		CreatedBy: createdBy,
	}

	if err := s.repo.Create(workflow); err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}

	return s.toResponse(workflow, 0), nil
}

// List retrieves workflows with optional status filtering, computing the
// landing page count per row
func (s *WorkflowService) List(status string, page, pageSize int) (*WorkflowListResponse, error) {
	if status != "" && !models.WorkflowStatus(status).IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	workflows, total, err := s.repo.GetAll(models.WorkflowStatus(status), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get workflows: %w", err)
	}

	ids := make([]int64, len(workflows))
	for i, w := range workflows {
		ids[i] = w.ID
	}
	counts, err := s.pageRepo.CountByWorkflowIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to count landing pages: %w", err)
	}

	responses := make([]WorkflowResponse, len(workflows))
	for i, w := range workflows {
		responses[i] = *s.toResponse(&w, counts[w.ID])
	}

	return &WorkflowListResponse{
		Workflows: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// GetDetail retrieves a workflow with all of its landing pages
func (s *WorkflowService) GetDetail(id int64) (*WorkflowDetailResponse, error) {
	workflow, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkflowNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}

	pages, err := s.pageRepo.GetByWorkflowID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get landing pages: %w", err)
	}

	return toDetailResponse(workflow, pages), nil
}

// Archive moves a workflow from ready to archived, ending the batch
func (s *WorkflowService) Archive(id int64) error {
	err := s.repo.UpdateStatus(id, models.WorkflowStatusReady, models.WorkflowStatusArchived)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkflowNotFound
		}
		if errors.Is(err, apperrors.ErrInvalidWorkflowState) {
			return apperrors.ErrWorkflowNotReady
		}
		return fmt.Errorf("failed to archive workflow: %w", err)
	}
	return nil
}

// Delete removes a workflow and its landing pages. Allowed from any status;
// videos and templates referenced by the pages are untouched.
func (s *WorkflowService) Delete(id int64) error {
	err := s.repo.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrWorkflowNotFound
		}
		return fmt.Errorf("failed to delete workflow: %w", err)
	}
	return nil
}

// toResponse converts a Workflow model to API response
func (s *WorkflowService) toResponse(workflow *models.Workflow, pageCount int64) *WorkflowResponse {
	return &WorkflowResponse{
		ID:               workflow.ID,
		Name:             workflow.Name,
		Status:           string(workflow.Status),
		CreatedBy:        workflow.CreatedBy,
		CreatedAt:        workflow.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		LandingPageCount: pageCount,
	}
}

// toDetailResponse builds the detail view shared with the generation
// orchestrator's success response
func toDetailResponse(workflow *models.Workflow, pages []models.LandingPage) *WorkflowDetailResponse {
	pageResponses := make([]LandingPageResponse, len(pages))
	for i, p := range pages {
		pageResponses[i] = LandingPageResponse{
			ID:               p.ID,
			TemplateID:       p.TemplateID,
			SelectedVideoIDs: p.SelectedVideoIDs,
			GeneratedPageURL: p.GeneratedPageURL,
		}
	}

	return &WorkflowDetailResponse{
		ID:           workflow.ID,
		Name:         workflow.Name,
		Status:       string(workflow.Status),
		CreatedBy:    workflow.CreatedBy,
		CreatedAt:    workflow.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    workflow.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		LandingPages: pageResponses,
	}
}
