package models_test

import (
	"testing"

	"landing-page-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowStatus_IsValid(t *testing.T) {
	valid := []models.WorkflowStatus{
		models.WorkflowStatusDraft,
		models.WorkflowStatusGenerating,
		models.WorkflowStatusPendingAd,
		models.WorkflowStatusReady,
		models.WorkflowStatusInUse,
		models.WorkflowStatusArchived,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}

	assert.False(t, models.WorkflowStatus("bogus").IsValid())
	assert.False(t, models.WorkflowStatus("").IsValid())
}

func TestWorkflowStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    models.WorkflowStatus
		to      models.WorkflowStatus
		allowed bool
	}{
		{models.WorkflowStatusDraft, models.WorkflowStatusGenerating, true},
		{models.WorkflowStatusGenerating, models.WorkflowStatusPendingAd, true},
		// rollback edge for failed generation
		{models.WorkflowStatusGenerating, models.WorkflowStatusDraft, true},
		{models.WorkflowStatusPendingAd, models.WorkflowStatusReady, true},
		{models.WorkflowStatusReady, models.WorkflowStatusInUse, true},
		{models.WorkflowStatusReady, models.WorkflowStatusArchived, true},
		{models.WorkflowStatusInUse, models.WorkflowStatusArchived, true},

		// no skipping forward
		{models.WorkflowStatusDraft, models.WorkflowStatusPendingAd, false},
		{models.WorkflowStatusDraft, models.WorkflowStatusReady, false},
		{models.WorkflowStatusPendingAd, models.WorkflowStatusInUse, false},
		// no moving backward
		{models.WorkflowStatusReady, models.WorkflowStatusDraft, false},
		{models.WorkflowStatusPendingAd, models.WorkflowStatusDraft, false},
		{models.WorkflowStatusInUse, models.WorkflowStatusReady, false},
		// archived is terminal
		{models.WorkflowStatusArchived, models.WorkflowStatusDraft, false},
		{models.WorkflowStatusArchived, models.WorkflowStatusReady, false},
		// no self loops
		{models.WorkflowStatusDraft, models.WorkflowStatusDraft, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransitionTo(tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}
