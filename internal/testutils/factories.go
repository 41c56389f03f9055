package testutils

import (
	"fmt"
	"time"

	"landing-page-backend/internal/database/models"

	"github.com/google/uuid"
)

// VideoFactory provides methods to create test Video data
type VideoFactory struct{}

// NewVideoFactory creates a new VideoFactory
func NewVideoFactory() *VideoFactory {
	return &VideoFactory{}
}

// Create creates a test Video with default values. The external id is
// randomized so repeated inserts do not trip the unique index.
func (f *VideoFactory) Create() *models.Video {
	return &models.Video{
		BaseModel: models.BaseModel{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ExternalID: "ext-" + uuid.New().String()[:8],
		Title:      "Test Video",
		Category:   "drama",
		PosterURL:  "https://cdn.test.com/posters/test.jpg",
		ViewCount:  1000,
		Status:     models.VideoStatusActive,
	}
}

// WithID sets an explicit id, for unit tests that never touch the database
func (f *VideoFactory) WithID(id int64) *models.Video {
	video := f.Create()
	video.ID = id
	return video
}

// WithTitle sets a custom title for the video
func (f *VideoFactory) WithTitle(title string) *models.Video {
	video := f.Create()
	video.Title = title
	return video
}

// WithCategory sets a custom category for the video
func (f *VideoFactory) WithCategory(category string) *models.Video {
	video := f.Create()
	video.Category = category
	return video
}

// WithStatus sets a custom status for the video
func (f *VideoFactory) WithStatus(status models.VideoStatus) *models.Video {
	video := f.Create()
	video.Status = status
	return video
}

// TemplateFactory provides methods to create test Template data
type TemplateFactory struct{}

// NewTemplateFactory creates a new TemplateFactory
func NewTemplateFactory() *TemplateFactory {
	return &TemplateFactory{}
}

// Create creates a test Template with default values
func (f *TemplateFactory) Create() *models.Template {
	return &models.Template{
		Name:             "test-template",
		Description:      "A test template",
		ThumbnailURL:     "https://cdn.test.com/thumbnails/test.png",
		HTMLFilePath:     "test-template/index.html",
		MaxVideos:        3,
		StaticAssetsPath: "test-template",
		Status:           models.TemplateStatusActive,
		CreatedAt:        time.Now(),
	}
}

// WithID sets an explicit id, for unit tests that never touch the database
func (f *TemplateFactory) WithID(id int64) *models.Template {
	template := f.Create()
	template.ID = id
	return template
}

// WithMaxVideos sets the slot capacity for the template
func (f *TemplateFactory) WithMaxVideos(maxVideos int) *models.Template {
	template := f.Create()
	template.MaxVideos = maxVideos
	return template
}

// WithStatus sets a custom status for the template
func (f *TemplateFactory) WithStatus(status models.TemplateStatus) *models.Template {
	template := f.Create()
	template.Status = status
	return template
}

// WithName sets a custom name for the template
func (f *TemplateFactory) WithName(name string) *models.Template {
	template := f.Create()
	template.Name = name
	return template
}

// WorkflowFactory provides methods to create test Workflow data
type WorkflowFactory struct{}

// NewWorkflowFactory creates a new WorkflowFactory
func NewWorkflowFactory() *WorkflowFactory {
	return &WorkflowFactory{}
}

// Create creates a test Workflow in draft status
func (f *WorkflowFactory) Create() *models.Workflow {
	return &models.Workflow{
		BaseModel: models.BaseModel{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "test-workflow",
		Status:    models.WorkflowStatusDraft,
		CreatedBy: "tester",
	}
}

// WithID sets an explicit id, for unit tests that never touch the database
func (f *WorkflowFactory) WithID(id int64) *models.Workflow {
	workflow := f.Create()
	workflow.ID = id
	return workflow
}

// WithStatus sets a custom status for the workflow
func (f *WorkflowFactory) WithStatus(status models.WorkflowStatus) *models.Workflow {
	workflow := f.Create()
	workflow.Status = status
	return workflow
}

// WithName sets a custom name for the workflow
func (f *WorkflowFactory) WithName(name string) *models.Workflow {
	workflow := f.Create()
	workflow.Name = name
	return workflow
}

// LandingPageFactory provides methods to create test LandingPage data
type LandingPageFactory struct{}

// NewLandingPageFactory creates a new LandingPageFactory
func NewLandingPageFactory() *LandingPageFactory {
	return &LandingPageFactory{}
}

// Create creates a test LandingPage linked to the given workflow and template
func (f *LandingPageFactory) Create(workflowID, templateID int64) *models.LandingPage {
	return &models.LandingPage{
		WorkflowID:       workflowID,
		TemplateID:       templateID,
		SelectedVideoIDs: models.Int64List{1, 2, 3},
		GeneratedPageURL: fmt.Sprintf("/generated/%d/%d.html", workflowID, templateID),
		CreatedAt:        time.Now(),
	}
}

// WithVideos sets the selected video ids for the landing page
func (f *LandingPageFactory) WithVideos(workflowID, templateID int64, videoIDs []int64) *models.LandingPage {
	page := f.Create(workflowID, templateID)
	page.SelectedVideoIDs = models.Int64List(videoIDs)
	return page
}

// FactorySet provides access to all factories
type FactorySet struct {
	Video       *VideoFactory
	Template    *TemplateFactory
	Workflow    *WorkflowFactory
	LandingPage *LandingPageFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Video:       NewVideoFactory(),
		Template:    NewTemplateFactory(),
		Workflow:    NewWorkflowFactory(),
		LandingPage: NewLandingPageFactory(),
	}
}
