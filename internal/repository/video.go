package repository

import (
	"landing-page-backend/internal/database/models"

	"gorm.io/gorm"
)

// VideoRepository handles database operations for videos
type VideoRepository struct {
	db *gorm.DB
}

// Ensure VideoRepository implements VideoRepositoryInterface
var _ VideoRepositoryInterface = (*VideoRepository)(nil)

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create inserts a new video
func (r *VideoRepository) Create(video *models.Video) error {
	return r.db.Create(video).Error
}

// GetByID retrieves a video by its id
func (r *VideoRepository) GetByID(id int64) (*models.Video, error) {
	var video models.Video
	if err := r.db.First(&video, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// GetByIDs retrieves all videos matching the given ids. Callers compare
// result length against the input to detect unknown ids.
func (r *VideoRepository) GetByIDs(ids []int64) ([]models.Video, error) {
	var videos []models.Video
	if len(ids) == 0 {
		return videos, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// GetByExternalID retrieves a video by the id it carries in the external catalog
func (r *VideoRepository) GetByExternalID(externalID string) (*models.Video, error) {
	var video models.Video
	if err := r.db.First(&video, "external_id = ?", externalID).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// GetAll retrieves videos with optional category filtering and pagination
func (r *VideoRepository) GetAll(category string, limit, offset int) ([]models.Video, int64, error) {
	var videos []models.Video
	var total int64

	query := r.db.Model(&models.Video{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&videos).Error; err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

// Update saves changes to an existing video
func (r *VideoRepository) Update(video *models.Video) error {
	return r.db.Save(video).Error
}

// Delete removes a video by id
func (r *VideoRepository) Delete(id int64) error {
	return r.db.Delete(&models.Video{}, "id = ?", id).Error
}
