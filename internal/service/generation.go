package service

import (
	"errors"
	"fmt"

	"landing-page-backend/internal/database/models"
	apperrors "landing-page-backend/internal/errors"
	"landing-page-backend/internal/logger"
	"landing-page-backend/internal/render"
	"landing-page-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerationService drives landing-page generation and preview. Generation
// renders one artifact per selected template and commits the batch together
// with the workflow's status transition; preview renders a single throwaway
// artifact and persists nothing.
type GenerationService struct {
	workflowRepo repository.WorkflowRepositoryInterface
	templateRepo repository.TemplateRepositoryInterface
	videoRepo    repository.VideoRepositoryInterface
	pageRepo     repository.LandingPageRepositoryInterface
	renderer     render.PageRenderer
	validator    *validator.Validate
}

// Ensure GenerationService implements GenerationServiceInterface
var _ GenerationServiceInterface = (*GenerationService)(nil)

// NewGenerationService creates a new GenerationService
func NewGenerationService(
	workflowRepo repository.WorkflowRepositoryInterface,
	templateRepo repository.TemplateRepositoryInterface,
	videoRepo repository.VideoRepositoryInterface,
	pageRepo repository.LandingPageRepositoryInterface,
	renderer render.PageRenderer,
	validator *validator.Validate,
) *GenerationService {
	return &GenerationService{
		workflowRepo: workflowRepo,
		templateRepo: templateRepo,
		videoRepo:    videoRepo,
		pageRepo:     pageRepo,
		renderer:     renderer,
		validator:    validator,
	}
}

// GenerateRequest selects the videos and templates for a workflow batch.
// Both lists are ordered: video order dictates slot placement, template
// order dictates the order of the returned landing pages.
type GenerateRequest struct {
	VideoIDs    []int64 `json:"video_ids" validate:"required,min=1"`
	TemplateIDs []int64 `json:"template_ids" validate:"required,min=1"`
}

// PreviewRequest selects videos and a single template for an ephemeral render
type PreviewRequest struct {
	VideoIDs   []int64 `json:"video_ids" validate:"required,min=1"`
	TemplateID int64   `json:"template_id" validate:"required"`
}

// PreviewResponse carries the URL of the throwaway preview artifact
type PreviewResponse struct {
	PreviewURL string `json:"preview_url"`
}

// Generate validates the selection, renders one landing page per selected
// template and commits the batch atomically with the workflow's transition
// to pending_ad. On any failure the workflow ends up back in draft with no
// pages and no artifacts.
func (s *GenerationService) Generate(workflowID int64, req *GenerateRequest) (*WorkflowDetailResponse, error) {
	// The only tagged fields are the selection lists themselves, so a
	// struct failure means the request selected nothing.
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrEmptySelection
	}
	if !uniqueIDs(req.TemplateIDs) {
		return nil, apperrors.ErrDuplicateTemplates
	}

	workflow, err := s.workflowRepo.GetByID(workflowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkflowNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}
	if workflow.Status != models.WorkflowStatusDraft {
		return nil, apperrors.ErrInvalidWorkflowState
	}

	templates, err := s.resolveTemplates(req.TemplateIDs)
	if err != nil {
		return nil, err
	}

	if err := ValidateSelection(req.VideoIDs, templates); err != nil {
		return nil, err
	}

	slots, err := s.resolveVideos(req.VideoIDs)
	if err != nil {
		return nil, err
	}

	// One page per template per workflow; re-generation over an existing
	// pair would orphan the previous artifact.
	existing, err := s.pageRepo.ExistingTemplateIDs(workflowID, req.TemplateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing landing pages: %w", err)
	}
	if len(existing) > 0 {
		return nil, apperrors.ErrLandingPageExists
	}

	// Claim the workflow. The conditional update serializes concurrent
	// generate calls: the loser fails here with no side effects.
	if err := s.workflowRepo.MarkGenerating(workflowID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkflowNotFound
		}
		return nil, err
	}

	log := logger.New().WithFields(map[string]interface{}{
		"workflow_id": workflowID,
		"videos":      len(req.VideoIDs),
		"templates":   len(templates),
	})
	log.Info("Starting landing page generation")

	pages := make([]*models.LandingPage, 0, len(templates))
	rendered := make([]string, 0, len(templates))
	for i := range templates {
		tmpl := &templates[i]
		relPath := fmt.Sprintf("%d/%d.html", workflowID, tmpl.ID)

		pageURL, err := s.renderer.Render(tmpl, slots, relPath)
		if err != nil {
			s.rollback(workflowID, rendered)
			return nil, apperrors.NewRenderError(tmpl.ID, err)
		}
		rendered = append(rendered, relPath)

		pages = append(pages, &models.LandingPage{
			WorkflowID:       workflowID,
			TemplateID:       tmpl.ID,
			SelectedVideoIDs: models.Int64List(req.VideoIDs),
			GeneratedPageURL: pageURL,
		})
	}

	if err := s.workflowRepo.CompleteGeneration(workflowID, pages); err != nil {
		s.rollback(workflowID, rendered)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistenceFailed, err)
	}

	log.Info("Landing page generation finished")

	workflow.Status = models.WorkflowStatusPendingAd
	result := make([]models.LandingPage, len(pages))
	for i, p := range pages {
		result[i] = *p
	}
	return toDetailResponse(workflow, result), nil
}

// Preview renders a single template against the selection without touching
// any workflow or landing page. Every call produces a fresh artifact.
func (s *GenerationService) Preview(req *PreviewRequest) (*PreviewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.ErrEmptySelection
	}

	templates, err := s.resolveTemplates([]int64{req.TemplateID})
	if err != nil {
		return nil, err
	}
	tmpl := &templates[0]

	if err := ValidateSelection(req.VideoIDs, templates); err != nil {
		return nil, err
	}

	slots, err := s.resolveVideos(req.VideoIDs)
	if err != nil {
		return nil, err
	}

	relPath := fmt.Sprintf("preview/%d_%s.html", tmpl.ID, uuid.New().String())
	previewURL, err := s.renderer.Render(tmpl, slots, relPath)
	if err != nil {
		return nil, apperrors.NewRenderError(tmpl.ID, err)
	}

	return &PreviewResponse{PreviewURL: previewURL}, nil
}

// resolveTemplates loads the selected templates, keeps only active ones and
// restores selection order. Any id that is missing or inactive fails the
// whole selection: silently dropping a template would break the
// one-page-per-selected-template guarantee.
func (s *GenerationService) resolveTemplates(templateIDs []int64) ([]models.Template, error) {
	found, err := s.templateRepo.GetActiveByIDs(templateIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve templates: %w", err)
	}

	byID := make(map[int64]models.Template, len(found))
	for _, t := range found {
		byID[t.ID] = t
	}

	templates := make([]models.Template, 0, len(templateIDs))
	for _, id := range templateIDs {
		tmpl, ok := byID[id]
		if !ok {
			return nil, apperrors.ErrTemplateNotFound
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// resolveVideos confirms every selected video exists and builds the ordered
// slot payload handed to the renderer
func (s *GenerationService) resolveVideos(videoIDs []int64) ([]render.Video, error) {
	videos, err := s.videoRepo.GetByIDs(videoIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve videos: %w", err)
	}

	byID := make(map[int64]models.Video, len(videos))
	for _, v := range videos {
		byID[v.ID] = v
	}

	slots := make([]render.Video, 0, len(videoIDs))
	for _, id := range videoIDs {
		video, ok := byID[id]
		if !ok {
			return nil, apperrors.ErrVideoNotFound
		}
		slots = append(slots, render.Video{
			ID:        video.ID,
			Title:     video.Title,
			PosterURL: video.PosterURL,
		})
	}
	return slots, nil
}

// rollback releases the claimed workflow and removes any artifacts written
// before the failure, so a failed batch leaves nothing behind
func (s *GenerationService) rollback(workflowID int64, rendered []string) {
	log := logger.New().WithField("workflow_id", workflowID)

	for _, relPath := range rendered {
		if err := s.renderer.Remove(relPath); err != nil {
			log.WithError(err).WithField("artifact", relPath).Warn("Failed to remove partial artifact")
		}
	}

	if err := s.workflowRepo.RevertToDraft(workflowID); err != nil {
		log.WithError(err).Error("Failed to revert workflow to draft after generation failure")
	}
}
