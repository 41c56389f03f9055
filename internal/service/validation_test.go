package service_test

import (
	"testing"

	"landing-page-backend/internal/database/models"
	apperrors "landing-page-backend/internal/errors"
	"landing-page-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

// sentinel for the table below; the concrete fields are asserted separately
var errInsufficient = apperrors.NewInsufficientVideosError(0, 0, 0)

func tmpl(id int64, maxVideos int) models.Template {
	return models.Template{
		ID:        id,
		Name:      "tmpl",
		MaxVideos: maxVideos,
		Status:    models.TemplateStatusActive,
	}
}

func TestValidateSelection(t *testing.T) {
	tests := []struct {
		name      string
		videoIDs  []int64
		templates []models.Template
		wantErr   error
	}{
		{
			name:      "exact capacity",
			videoIDs:  []int64{1, 2, 3},
			templates: []models.Template{tmpl(10, 3)},
			wantErr:   nil,
		},
		{
			name:      "surplus videos allowed",
			videoIDs:  []int64{1, 2, 3, 4, 5},
			templates: []models.Template{tmpl(10, 3)},
			wantErr:   nil,
		},
		{
			name:      "largest template bounds the batch",
			videoIDs:  []int64{1, 2, 3},
			templates: []models.Template{tmpl(10, 1), tmpl(11, 5)},
			wantErr:   errInsufficient,
		},
		{
			name:      "no videos",
			videoIDs:  nil,
			templates: []models.Template{tmpl(10, 1)},
			wantErr:   apperrors.ErrEmptySelection,
		},
		{
			name:      "no templates",
			videoIDs:  []int64{1},
			templates: nil,
			wantErr:   apperrors.ErrEmptySelection,
		},
		{
			name:      "duplicate video ids",
			videoIDs:  []int64{1, 2, 1},
			templates: []models.Template{tmpl(10, 2)},
			wantErr:   apperrors.ErrDuplicateVideoIDs,
		},
		{
			name:      "single video single slot",
			videoIDs:  []int64{7},
			templates: []models.Template{tmpl(10, 1)},
			wantErr:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidateSelection(tt.videoIDs, tt.templates)
			switch tt.wantErr {
			case nil:
				assert.NoError(t, err)
			case errInsufficient:
				var insufficient *apperrors.InsufficientVideosError
				assert.ErrorAs(t, err, &insufficient)
				assert.Equal(t, int64(11), insufficient.TemplateID)
				assert.Equal(t, 5, insufficient.Required)
				assert.Equal(t, 3, insufficient.Provided)
			default:
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// The validator is a pure decision: repeated calls over the same inputs must
// agree, and the inputs must come back untouched.
func TestValidateSelection_PureAndIdempotent(t *testing.T) {
	videoIDs := []int64{3, 1, 2}
	templates := []models.Template{tmpl(10, 2), tmpl(11, 3)}

	first := service.ValidateSelection(videoIDs, templates)
	second := service.ValidateSelection(videoIDs, templates)

	assert.Equal(t, first, second)
	assert.Equal(t, []int64{3, 1, 2}, videoIDs)
	assert.Equal(t, int64(10), templates[0].ID)
	assert.Equal(t, 3, templates[1].MaxVideos)
}

func TestValidateSelection_ValidationErrorKind(t *testing.T) {
	err := service.ValidateSelection([]int64{1}, []models.Template{tmpl(10, 4)})

	assert.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "requires at least 4")
}
