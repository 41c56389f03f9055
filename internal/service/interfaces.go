package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// VideoServiceInterface defines the interface for video catalog operations
type VideoServiceInterface interface {
	Create(req *CreateVideoRequest) (*VideoResponse, error)
	GetByID(id int64) (*VideoResponse, error)
	List(category string, page, pageSize int) (*VideoListResponse, error)
	Update(id int64, req *UpdateVideoRequest) (*VideoResponse, error)
	Delete(id int64) error
	Sync(req *SyncVideosRequest) (*SyncVideosResponse, error)
}

// TemplateServiceInterface defines the interface for template catalog operations
type TemplateServiceInterface interface {
	Create(req *CreateTemplateRequest) (*TemplateResponse, error)
	GetByID(id int64) (*TemplateResponse, error)
	List(status string, page, pageSize int) (*TemplateListResponse, error)
	Update(id int64, req *UpdateTemplateRequest) (*TemplateResponse, error)
	Delete(id int64) error
}

// WorkflowServiceInterface defines the interface for workflow batch operations
type WorkflowServiceInterface interface {
	Create(req *CreateWorkflowRequest) (*WorkflowResponse, error)
	List(status string, page, pageSize int) (*WorkflowListResponse, error)
	GetDetail(id int64) (*WorkflowDetailResponse, error)
	Archive(id int64) error
	Delete(id int64) error
}

// GenerationServiceInterface defines the interface for the generation and
// preview orchestrators
type GenerationServiceInterface interface {
	Generate(workflowID int64, req *GenerateRequest) (*WorkflowDetailResponse, error)
	Preview(req *PreviewRequest) (*PreviewResponse, error)
}
