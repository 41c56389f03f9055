package models

import "time"

// LandingPage is one rendered artifact binding a template to an ordered
// video selection. Rows are written only by the generation engine and are
// immutable afterwards; a workflow holds at most one page per template.
type LandingPage struct {
	ID               int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	WorkflowID       int64     `json:"workflow_id" gorm:"not null;index;uniqueIndex:uq_workflow_template"`
	TemplateID       int64     `json:"template_id" gorm:"not null;index;uniqueIndex:uq_workflow_template"`
	SelectedVideoIDs Int64List `json:"selected_video_ids" gorm:"type:jsonb;not null"`
	GeneratedPageURL string    `json:"generated_page_url" gorm:"type:text;not null"`
	CreatedAt        time.Time `json:"created_at"`

	// Relationships
	Template Template `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
}

// TableName returns the table name for LandingPage
func (LandingPage) TableName() string {
	return "landing_pages"
}
