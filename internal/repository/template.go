package repository

import (
	"landing-page-backend/internal/database/models"

	"gorm.io/gorm"
)

// TemplateRepository handles database operations for templates
type TemplateRepository struct {
	db *gorm.DB
}

// Ensure TemplateRepository implements TemplateRepositoryInterface
var _ TemplateRepositoryInterface = (*TemplateRepository)(nil)

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Create inserts a new template
func (r *TemplateRepository) Create(template *models.Template) error {
	return r.db.Create(template).Error
}

// GetByID retrieves a template by its id
func (r *TemplateRepository) GetByID(id int64) (*models.Template, error) {
	var template models.Template
	if err := r.db.First(&template, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &template, nil
}

// GetActiveByIDs retrieves the active templates among the given ids.
// Inactive templates are excluded; callers compare the result against the
// selection to detect unknown or retired templates.
func (r *TemplateRepository) GetActiveByIDs(ids []int64) ([]models.Template, error) {
	var templates []models.Template
	if len(ids) == 0 {
		return templates, nil
	}
	err := r.db.Where("id IN ? AND status = ?", ids, models.TemplateStatusActive).Find(&templates).Error
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// GetAll retrieves templates with optional status filtering and pagination
func (r *TemplateRepository) GetAll(status models.TemplateStatus, limit, offset int) ([]models.Template, int64, error) {
	var templates []models.Template
	var total int64

	query := r.db.Model(&models.Template{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&templates).Error; err != nil {
		return nil, 0, err
	}

	return templates, total, nil
}

// Update saves changes to an existing template
func (r *TemplateRepository) Update(template *models.Template) error {
	return r.db.Save(template).Error
}

// Delete removes a template by id
func (r *TemplateRepository) Delete(id int64) error {
	return r.db.Delete(&models.Template{}, "id = ?", id).Error
}
