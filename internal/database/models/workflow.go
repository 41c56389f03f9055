package models

// WorkflowStatus represents the lifecycle state of a generation workflow.
// Transitions are one-directional; there is no edge back to an earlier
// state.
type WorkflowStatus string

const (
	WorkflowStatusDraft      WorkflowStatus = "draft"
	WorkflowStatusGenerating WorkflowStatus = "generating"
	WorkflowStatusPendingAd  WorkflowStatus = "pending_ad"
	WorkflowStatusReady      WorkflowStatus = "ready"
	WorkflowStatusInUse      WorkflowStatus = "in_use"
	WorkflowStatusArchived   WorkflowStatus = "archived"
)

// workflowTransitions holds the legal forward edges of the lifecycle.
var workflowTransitions = map[WorkflowStatus][]WorkflowStatus{
	WorkflowStatusDraft:      {WorkflowStatusGenerating},
	WorkflowStatusGenerating: {WorkflowStatusPendingAd, WorkflowStatusDraft},
	WorkflowStatusPendingAd:  {WorkflowStatusReady},
	WorkflowStatusReady:      {WorkflowStatusInUse, WorkflowStatusArchived},
	WorkflowStatusInUse:      {WorkflowStatusArchived},
	WorkflowStatusArchived:   {},
}

// IsValid checks if the WorkflowStatus is valid
func (s WorkflowStatus) IsValid() bool {
	_, ok := workflowTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to target is legal.
// generating -> draft is the rollback edge used when a render fails after
// the workflow has been claimed.
func (s WorkflowStatus) CanTransitionTo(target WorkflowStatus) bool {
	for _, next := range workflowTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Workflow represents one batch of landing-page generation work. It is
// created in draft status and advanced by the generation engine; landing
// pages are owned by their workflow and cascade-deleted with it.
type Workflow struct {
	BaseModel
	Name      string         `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Status    WorkflowStatus `json:"status" gorm:"type:varchar(30);not null;default:'draft';index"`
	CreatedBy string         `json:"created_by" gorm:"size:100;not null;index" validate:"required,max=100"`

	// Relationships
	LandingPages []LandingPage `json:"landing_pages,omitempty" gorm:"foreignKey:WorkflowID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Workflow
func (Workflow) TableName() string {
	return "workflows"
}
