package models

import "encoding/json"

// VideoStatus represents the lifecycle status of a video asset
type VideoStatus string

const (
	VideoStatusActive   VideoStatus = "active"
	VideoStatusInactive VideoStatus = "inactive"
)

// IsValid checks if the VideoStatus is valid
func (s VideoStatus) IsValid() bool {
	switch s {
	case VideoStatusActive, VideoStatusInactive:
		return true
	}
	return false
}

// Video represents a video asset in the catalog. Landing pages reference
// videos by id; the generation engine only ever reads these rows.
type Video struct {
	BaseModel
	ExternalID string          `json:"external_id,omitempty" gorm:"size:64;uniqueIndex" validate:"max=64"`
	Title      string          `json:"title" gorm:"size:255;not null" validate:"required,max=255"`
	Category   string          `json:"category,omitempty" gorm:"size:50;index" validate:"max=50"`
	PosterURL  string          `json:"poster_url" gorm:"type:text;not null" validate:"required"`
	ViewCount  int64           `json:"view_count" gorm:"not null;default:0" validate:"min=0"`
	Status     VideoStatus     `json:"status" gorm:"type:varchar(20);default:'active';index"`
	Metadata   json.RawMessage `json:"metadata,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for Video
func (Video) TableName() string {
	return "videos"
}
