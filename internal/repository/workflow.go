package repository

import (
	"errors"

	"landing-page-backend/internal/database/models"
	apperrors "landing-page-backend/internal/errors"

	"gorm.io/gorm"
)

// WorkflowRepository handles database operations for workflows, including
// the conditional status transitions that serialize generation
type WorkflowRepository struct {
	db *gorm.DB
}

// Ensure WorkflowRepository implements WorkflowRepositoryInterface
var _ WorkflowRepositoryInterface = (*WorkflowRepository)(nil)

// NewWorkflowRepository creates a new workflow repository
func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

// Create inserts a new workflow in draft status
func (r *WorkflowRepository) Create(workflow *models.Workflow) error {
	if workflow.Status == "" {
		workflow.Status = models.WorkflowStatusDraft
	}
	return r.db.Create(workflow).Error
}

// GetByID retrieves a workflow by its id
func (r *WorkflowRepository) GetByID(id int64) (*models.Workflow, error) {
	var workflow models.Workflow
	if err := r.db.First(&workflow, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &workflow, nil
}

// GetAll retrieves workflows with optional status filtering and pagination
func (r *WorkflowRepository) GetAll(status models.WorkflowStatus, limit, offset int) ([]models.Workflow, int64, error) {
	var workflows []models.Workflow
	var total int64

	query := r.db.Model(&models.Workflow{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&workflows).Error; err != nil {
		return nil, 0, err
	}

	return workflows, total, nil
}

// MarkGenerating claims the workflow for generation. The status check and
// the transition are a single conditional UPDATE, so of two concurrent
// callers exactly one wins; the loser sees zero affected rows and gets
// ErrInvalidWorkflowState.
func (r *WorkflowRepository) MarkGenerating(id int64) error {
	return r.UpdateStatus(id, models.WorkflowStatusDraft, models.WorkflowStatusGenerating)
}

// RevertToDraft releases a claimed workflow after a failed generation so the
// batch can be retried
func (r *WorkflowRepository) RevertToDraft(id int64) error {
	return r.UpdateStatus(id, models.WorkflowStatusGenerating, models.WorkflowStatusDraft)
}

// CompleteGeneration commits the rendered batch: all landing page rows and
// the generating -> pending_ad transition are written in one transaction, so
// observers never see pages without the status or the status without pages.
func (r *WorkflowRepository) CompleteGeneration(id int64, pages []*models.LandingPage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, page := range pages {
			if err := tx.Create(page).Error; err != nil {
				return err
			}
		}

		result := tx.Model(&models.Workflow{}).
			Where("id = ? AND status = ?", id, models.WorkflowStatusGenerating).
			Update("status", models.WorkflowStatusPendingAd)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrInvalidWorkflowState
		}
		return nil
	})
}

// UpdateStatus performs a guarded status transition. The from-status guard
// makes the check-and-set atomic without row locks.
func (r *WorkflowRepository) UpdateStatus(id int64, from, to models.WorkflowStatus) error {
	if !from.CanTransitionTo(to) {
		return apperrors.ErrInvalidWorkflowState
	}

	result := r.db.Model(&models.Workflow{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish a missing row from a lost status race
		var count int64
		if err := r.db.Model(&models.Workflow{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		return apperrors.ErrInvalidWorkflowState
	}
	return nil
}

// Delete removes a workflow and, through the cascade constraint, all of its
// landing pages. Deletion is allowed from any status.
func (r *WorkflowRepository) Delete(id int64) error {
	result := r.db.Select("LandingPages").Delete(&models.Workflow{BaseModel: models.BaseModel{ID: id}})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IsNotFound reports whether err is the underlying record-not-found error
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
