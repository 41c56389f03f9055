package models

import "time"

// TemplateStatus represents the availability of a landing page template
type TemplateStatus string

const (
	TemplateStatusActive   TemplateStatus = "active"
	TemplateStatusInactive TemplateStatus = "inactive"
)

// IsValid checks if the TemplateStatus is valid
func (s TemplateStatus) IsValid() bool {
	switch s {
	case TemplateStatusActive, TemplateStatusInactive:
		return true
	}
	return false
}

// Template is a registered page layout. MaxVideos is the number of video
// slots the layout can display; only active templates are eligible for
// generation and preview.
type Template struct {
	ID               int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string         `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Description      string         `json:"description,omitempty" gorm:"type:text"`
	ThumbnailURL     string         `json:"thumbnail_url,omitempty" gorm:"type:text"`
	HTMLFilePath     string         `json:"html_file_path" gorm:"type:text;not null" validate:"required"`
	MaxVideos        int            `json:"max_videos" gorm:"not null" validate:"required,min=1"`
	StaticAssetsPath string         `json:"static_assets_path,omitempty" gorm:"type:text"`
	Status           TemplateStatus `json:"status" gorm:"type:varchar(20);default:'active'"`
	CreatedAt        time.Time      `json:"created_at"`
}

// TableName returns the table name for Template
func (Template) TableName() string {
	return "templates"
}

// IsActive reports whether the template can be used for generation
func (t *Template) IsActive() bool {
	return t.Status == TemplateStatusActive
}
