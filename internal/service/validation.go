package service

import (
	"landing-page-backend/internal/database/models"
	apperrors "landing-page-backend/internal/errors"
)

// ValidateSelection checks that an ordered video selection can fully
// populate every chosen template. It is a pure decision function: no side
// effects, identical inputs always yield identical results.
//
// Rules, in order:
//   - the selection must name at least one video and one template
//   - video ids must be unique within the selection
//   - every template must be fully fillable: the selection length must reach
//     the largest max_videos among the chosen templates. A template needing
//     more media than was chosen blocks the whole batch rather than silently
//     producing an under-filled page.
func ValidateSelection(videoIDs []int64, templates []models.Template) error {
	if len(videoIDs) == 0 || len(templates) == 0 {
		return apperrors.ErrEmptySelection
	}

	if !uniqueIDs(videoIDs) {
		return apperrors.ErrDuplicateVideoIDs
	}

	for _, tmpl := range templates {
		if len(videoIDs) < tmpl.MaxVideos {
			return apperrors.NewInsufficientVideosError(tmpl.ID, tmpl.MaxVideos, len(videoIDs))
		}
	}

	return nil
}

// uniqueIDs reports whether the id list is free of duplicates
func uniqueIDs(ids []int64) bool {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}
