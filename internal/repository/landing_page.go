package repository

import (
	"landing-page-backend/internal/database/models"

	"gorm.io/gorm"
)

// LandingPageRepository handles read access to landing pages. Writes happen
// only through WorkflowRepository.CompleteGeneration, which keeps the page
// batch and the workflow status in one transaction.
type LandingPageRepository struct {
	db *gorm.DB
}

// Ensure LandingPageRepository implements LandingPageRepositoryInterface
var _ LandingPageRepositoryInterface = (*LandingPageRepository)(nil)

// NewLandingPageRepository creates a new landing page repository
func NewLandingPageRepository(db *gorm.DB) *LandingPageRepository {
	return &LandingPageRepository{db: db}
}

// GetByID retrieves a landing page by its id
func (r *LandingPageRepository) GetByID(id int64) (*models.LandingPage, error) {
	var page models.LandingPage
	if err := r.db.First(&page, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByWorkflowID retrieves all landing pages owned by a workflow
func (r *LandingPageRepository) GetByWorkflowID(workflowID int64) ([]models.LandingPage, error) {
	var pages []models.LandingPage
	if err := r.db.Where("workflow_id = ?", workflowID).Order("id ASC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// CountByWorkflowID counts the landing pages owned by a workflow. The count
// is always computed, never cached.
func (r *LandingPageRepository) CountByWorkflowID(workflowID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.LandingPage{}).Where("workflow_id = ?", workflowID).Count(&count).Error
	return count, err
}

// CountByWorkflowIDs counts landing pages per workflow for list views
func (r *LandingPageRepository) CountByWorkflowIDs(workflowIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(workflowIDs))
	if len(workflowIDs) == 0 {
		return counts, nil
	}

	type row struct {
		WorkflowID int64
		Count      int64
	}
	var rows []row
	err := r.db.Model(&models.LandingPage{}).
		Select("workflow_id, COUNT(*) as count").
		Where("workflow_id IN ?", workflowIDs).
		Group("workflow_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		counts[r.WorkflowID] = r.Count
	}
	return counts, nil
}

// ExistingTemplateIDs returns the subset of templateIDs that already have a
// landing page in the workflow, backing the one-page-per-template guard.
func (r *LandingPageRepository) ExistingTemplateIDs(workflowID int64, templateIDs []int64) ([]int64, error) {
	var ids []int64
	if len(templateIDs) == 0 {
		return ids, nil
	}
	err := r.db.Model(&models.LandingPage{}).
		Where("workflow_id = ? AND template_id IN ?", workflowID, templateIDs).
		Pluck("template_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
