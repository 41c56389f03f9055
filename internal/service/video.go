package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"landing-page-backend/internal/database/models"
	apperrors "landing-page-backend/internal/errors"
	"landing-page-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// VideoService provides video catalog business logic
type VideoService struct {
	repo      repository.VideoRepositoryInterface
	syncer    *VideoSyncClient
	validator *validator.Validate
}

// Ensure VideoService implements VideoServiceInterface
var _ VideoServiceInterface = (*VideoService)(nil)

// NewVideoService creates a new VideoService
func NewVideoService(repo repository.VideoRepositoryInterface, syncer *VideoSyncClient, validator *validator.Validate) *VideoService {
	return &VideoService{
		repo:      repo,
		syncer:    syncer,
		validator: validator,
	}
}

// CreateVideoRequest represents the request to register a video asset
type CreateVideoRequest struct {
	ExternalID string                 `json:"external_id,omitempty" validate:"max=64"`
	Title      string                 `json:"title" validate:"required,max=255"`
	Category   string                 `json:"category,omitempty" validate:"max=50"`
	PosterURL  string                 `json:"poster_url" validate:"required"`
	ViewCount  int64                  `json:"view_count" validate:"min=0"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// UpdateVideoRequest represents the request to update a video asset
type UpdateVideoRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Category  *string `json:"category,omitempty" validate:"omitempty,max=50"`
	PosterURL *string `json:"poster_url,omitempty"`
	ViewCount *int64  `json:"view_count,omitempty" validate:"omitempty,min=0"`
}

// VideoResponse represents a video in API responses
type VideoResponse struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id,omitempty"`
	Title      string `json:"title"`
	Category   string `json:"category,omitempty"`
	PosterURL  string `json:"poster_url"`
	ViewCount  int64  `json:"view_count"`
	Status     string `json:"status"`
	UpdatedAt  string `json:"updated_at"`
}

// VideoListResponse represents a paginated list of videos
type VideoListResponse struct {
	Videos   []VideoResponse `json:"videos"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create registers a new video asset
func (s *VideoService) Create(req *CreateVideoRequest) (*VideoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var metadataJSON json.RawMessage
	if req.Metadata != nil {
		jsonData, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadataJSON = jsonData
	}

	video := &models.Video{
		ExternalID: req.ExternalID,
		Title:      req.Title,
		Category:   req.Category,
		PosterURL:  req.PosterURL,
		ViewCount:  req.ViewCount,
		Status:     models.VideoStatusActive,
		Metadata:   metadataJSON,
	}

	if err := s.repo.Create(video); err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	return s.toResponse(video), nil
}

// GetByID retrieves a video by id
func (s *VideoService) GetByID(id int64) (*VideoResponse, error) {
	video, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return s.toResponse(video), nil
}

// List retrieves videos with optional category filtering
func (s *VideoService) List(category string, page, pageSize int) (*VideoListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	videos, total, err := s.repo.GetAll(category, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get videos: %w", err)
	}

	responses := make([]VideoResponse, len(videos))
	for i, v := range videos {
		responses[i] = *s.toResponse(&v)
	}

	return &VideoListResponse{
		Videos:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update edits a video asset
func (s *VideoService) Update(id int64, req *UpdateVideoRequest) (*VideoResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	video, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVideoNotFound
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	if req.Title != nil {
		video.Title = *req.Title
	}
	if req.Category != nil {
		video.Category = *req.Category
	}
	if req.PosterURL != nil {
		video.PosterURL = *req.PosterURL
	}
	if req.ViewCount != nil {
		video.ViewCount = *req.ViewCount
	}

	if err := s.repo.Update(video); err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	return s.toResponse(video), nil
}

// Delete removes a video asset from the catalog
func (s *VideoService) Delete(id int64) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVideoNotFound
		}
		return fmt.Errorf("failed to get video: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return nil
}

// toResponse converts a Video model to API response
func (s *VideoService) toResponse(video *models.Video) *VideoResponse {
	return &VideoResponse{
		ID:         video.ID,
		ExternalID: video.ExternalID,
		Title:      video.Title,
		Category:   video.Category,
		PosterURL:  video.PosterURL,
		ViewCount:  video.ViewCount,
		Status:     string(video.Status),
		UpdatedAt:  video.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
