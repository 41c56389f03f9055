package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"landing-page-backend/internal/config"
	"landing-page-backend/internal/database/models"
	apperrors "landing-page-backend/internal/errors"
	"landing-page-backend/internal/logger"

	"gorm.io/gorm"
)

// VideoSyncClient pulls the external catalog's ranking feed so popular
// videos can be imported without manual entry
type VideoSyncClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewVideoSyncClient creates a new sync client
func NewVideoSyncClient(cfg *config.Config) *VideoSyncClient {
	timeout := time.Duration(cfg.VideoAPITimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &VideoSyncClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SyncVideosRequest controls the ranking window to import. Dates are
// YYYY-MM-DD; both default to yesterday when omitted.
type SyncVideosRequest struct {
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=500"`
	StartDate string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// SyncVideosResponse reports how the imported rows were applied
type SyncVideosResponse struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// rankingAPIResponse mirrors the external ranking endpoint's payload shape
type rankingAPIResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Lists []rankingEntry `json:"lists"`
	} `json:"data"`
}

type rankingEntry struct {
	ID        json.Number `json:"id"`
	Title     string      `json:"title"`
	Category  string      `json:"category"`
	PosterURL string      `json:"poster_url"`
	ViewCount int64       `json:"view_count"`
}

// Sync fetches the ranking window and upserts each entry by external id
func (s *VideoService) Sync(req *SyncVideosRequest) (*SyncVideosResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entries, err := s.syncer.FetchRanking(req)
	if err != nil {
		return nil, err
	}

	log := logger.New().WithField("component", "video_sync")
	result := &SyncVideosResponse{Fetched: len(entries)}

	for _, entry := range entries {
		externalID := entry.ID.String()
		if externalID == "" || entry.Title == "" || entry.PosterURL == "" {
			result.Skipped++
			continue
		}

		existing, err := s.repo.GetByExternalID(externalID)
		switch {
		case err == nil:
			existing.Title = entry.Title
			existing.Category = entry.Category
			existing.PosterURL = entry.PosterURL
			existing.ViewCount = entry.ViewCount
			if err := s.repo.Update(existing); err != nil {
				return nil, fmt.Errorf("failed to update synced video %s: %w", externalID, err)
			}
			result.Updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			video := &models.Video{
				ExternalID: externalID,
				Title:      entry.Title,
				Category:   entry.Category,
				PosterURL:  entry.PosterURL,
				ViewCount:  entry.ViewCount,
				Status:     models.VideoStatusActive,
			}
			if err := s.repo.Create(video); err != nil {
				return nil, fmt.Errorf("failed to import synced video %s: %w", externalID, err)
			}
			result.Created++
		default:
			return nil, fmt.Errorf("failed to look up synced video %s: %w", externalID, err)
		}
	}

	log.WithFields(map[string]interface{}{
		"fetched": result.Fetched,
		"created": result.Created,
		"updated": result.Updated,
		"skipped": result.Skipped,
	}).Info("Video catalog sync finished")

	return result, nil
}

// FetchRanking calls the external ranking endpoint for the requested window
func (c *VideoSyncClient) FetchRanking(req *SyncVideosRequest) ([]rankingEntry, error) {
	if c.cfg.VideoAPIURL == "" {
		return nil, apperrors.ErrVideoAPINotConfigured
	}

	limit := req.Limit
	if limit == 0 {
		limit = 50
	}

	start, end := normalizeWindow(req.StartDate, req.EndDate)

	params := url.Values{}
	params.Set("start_date", start)
	params.Set("end_date", end)
	params.Set("page_no", "1")
	params.Set("page_size", strconv.Itoa(limit))

	resp, err := c.httpClient.Get(c.cfg.VideoAPIURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to call video ranking API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("video ranking API returned status %d", resp.StatusCode)
	}

	var payload rankingAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode video ranking API response: %w", err)
	}
	if payload.Code != 0 {
		return nil, fmt.Errorf("video ranking API returned error code %d: %s", payload.Code, payload.Message)
	}

	return payload.Data.Lists, nil
}

// normalizeWindow fills missing window bounds: both default to yesterday,
// a single bound collapses the window to one day
func normalizeWindow(start, end string) (string, string) {
	if start == "" && end == "" {
		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		return yesterday, yesterday
	}
	if start == "" {
		return end, end
	}
	if end == "" {
		return start, start
	}
	return start, end
}
