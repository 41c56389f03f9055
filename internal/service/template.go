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

// TemplateService provides template catalog business logic
type TemplateService struct {
	repo      repository.TemplateRepositoryInterface
	validator *validator.Validate
}

// Ensure TemplateService implements TemplateServiceInterface
var _ TemplateServiceInterface = (*TemplateService)(nil)

// NewTemplateService creates a new TemplateService
func NewTemplateService(repo repository.TemplateRepositoryInterface, validator *validator.Validate) *TemplateService {
	return &TemplateService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTemplateRequest registers a static template (HTML plus asset path)
type CreateTemplateRequest struct {
	Name             string `json:"name" validate:"required,max=100"`
	Description      string `json:"description,omitempty"`
	ThumbnailURL     string `json:"thumbnail_url,omitempty"`
	HTMLFilePath     string `json:"html_file_path" validate:"required"`
	MaxVideos        int    `json:"max_videos" validate:"required,min=1"`
	StaticAssetsPath string `json:"static_assets_path,omitempty"`
	Status           string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// UpdateTemplateRequest edits template metadata
type UpdateTemplateRequest struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description      *string `json:"description,omitempty"`
	ThumbnailURL     *string `json:"thumbnail_url,omitempty"`
	HTMLFilePath     *string `json:"html_file_path,omitempty"`
	MaxVideos        *int    `json:"max_videos,omitempty" validate:"omitempty,min=1"`
	StaticAssetsPath *string `json:"static_assets_path,omitempty"`
	Status           *string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
}

// TemplateResponse represents a template in API responses
type TemplateResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	ThumbnailURL     string `json:"thumbnail_url,omitempty"`
	HTMLFilePath     string `json:"html_file_path"`
	MaxVideos        int    `json:"max_videos"`
	StaticAssetsPath string `json:"static_assets_path,omitempty"`
	Status           string `json:"status"`
}

// TemplateListResponse represents a paginated list of templates
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int64              `json:"total"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
}

// Create registers a new template
func (s *TemplateService) Create(req *CreateTemplateRequest) (*TemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.TemplateStatus(req.Status)
	if status == "" {
		status = models.TemplateStatusActive
	}

	template := &models.Template{
		Name:             req.Name,
		Description:      req.Description,
		ThumbnailURL:     req.ThumbnailURL,
		HTMLFilePath:     req.HTMLFilePath,
		MaxVideos:        req.MaxVideos,
		StaticAssetsPath: req.StaticAssetsPath,
		Status:           status,
	}

	if err := s.repo.Create(template); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	return s.toResponse(template), nil
}

// GetByID retrieves a template by id
func (s *TemplateService) GetByID(id int64) (*TemplateResponse, error) {
	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return s.toResponse(template), nil
}

// List retrieves templates with optional status filtering
func (s *TemplateService) List(status string, page, pageSize int) (*TemplateListResponse, error) {
	if status != "" && !models.TemplateStatus(status).IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	templates, total, err := s.repo.GetAll(models.TemplateStatus(status), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get templates: %w", err)
	}

	responses := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		responses[i] = *s.toResponse(&t)
	}

	return &TemplateListResponse{
		Templates: responses,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update edits an existing template
func (s *TemplateService) Update(id int64, req *UpdateTemplateRequest) (*TemplateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	template, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTemplateNotFound
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Description != nil {
		template.Description = *req.Description
	}
	if req.ThumbnailURL != nil {
		template.ThumbnailURL = *req.ThumbnailURL
	}
	if req.HTMLFilePath != nil {
		template.HTMLFilePath = *req.HTMLFilePath
	}
	if req.MaxVideos != nil {
		template.MaxVideos = *req.MaxVideos
	}
	if req.StaticAssetsPath != nil {
		template.StaticAssetsPath = *req.StaticAssetsPath
	}
	if req.Status != nil {
		template.Status = models.TemplateStatus(*req.Status)
	}

	if err := s.repo.Update(template); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	return s.toResponse(template), nil
}

// Delete removes a template from the catalog
func (s *TemplateService) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTemplateNotFound
		}
		return fmt.Errorf("failed to get template: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	return nil
}

// toResponse converts a Template model to API response
func (s *TemplateService) toResponse(template *models.Template) *TemplateResponse {
	return &TemplateResponse{
		ID:               template.ID,
		Name:             template.Name,
		Description:      template.Description,
		ThumbnailURL:     template.ThumbnailURL,
		HTMLFilePath:     template.HTMLFilePath,
		MaxVideos:        template.MaxVideos,
		StaticAssetsPath: template.StaticAssetsPath,
		Status:           string(template.Status),
	}
}
