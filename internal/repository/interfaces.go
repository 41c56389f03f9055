package repository

import (
	"landing-page-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// VideoRepositoryInterface defines the interface for video repository operations
type VideoRepositoryInterface interface {
	Create(video *models.Video) error
	GetByID(id int64) (*models.Video, error)
	GetByIDs(ids []int64) ([]models.Video, error)
	GetByExternalID(externalID string) (*models.Video, error)
	GetAll(category string, limit, offset int) ([]models.Video, int64, error)
	Update(video *models.Video) error
	Delete(id int64) error
}

// TemplateRepositoryInterface defines the interface for template repository operations
type TemplateRepositoryInterface interface {
	Create(template *models.Template) error
	GetByID(id int64) (*models.Template, error)
	GetActiveByIDs(ids []int64) ([]models.Template, error)
	GetAll(status models.TemplateStatus, limit, offset int) ([]models.Template, int64, error)
	Update(template *models.Template) error
	Delete(id int64) error
}

// WorkflowRepositoryInterface defines the interface for workflow repository operations
type WorkflowRepositoryInterface interface {
	Create(workflow *models.Workflow) error
	GetByID(id int64) (*models.Workflow, error)
	GetAll(status models.WorkflowStatus, limit, offset int) ([]models.Workflow, int64, error)
	MarkGenerating(id int64) error
	RevertToDraft(id int64) error
	CompleteGeneration(id int64, pages []*models.LandingPage) error
	UpdateStatus(id int64, from, to models.WorkflowStatus) error
	Delete(id int64) error
}

// LandingPageRepositoryInterface defines the interface for landing page repository operations
type LandingPageRepositoryInterface interface {
	GetByID(id int64) (*models.LandingPage, error)
	GetByWorkflowID(workflowID int64) ([]models.LandingPage, error)
	CountByWorkflowID(workflowID int64) (int64, error)
	CountByWorkflowIDs(workflowIDs []int64) (map[int64]int64, error)
	ExistingTemplateIDs(workflowID int64, templateIDs []int64) ([]int64, error)
}
