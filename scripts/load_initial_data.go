package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"landing-page-backend/internal/config"
	"landing-page-backend/internal/database"
	"landing-page-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type VideoData struct {
	ExternalID string `yaml:"external_id"`
	Title      string `yaml:"title"`
	Category   string `yaml:"category,omitempty"`
	PosterURL  string `yaml:"poster_url,omitempty"`
	ViewCount  int64  `yaml:"view_count"`
	Status     string `yaml:"status"`
}

type TemplateData struct {
	Name             string `yaml:"name"`
	Description      string `yaml:"description,omitempty"`
	ThumbnailURL     string `yaml:"thumbnail_url,omitempty"`
	HTMLFilePath     string `yaml:"html_file_path"`
	MaxVideos        int    `yaml:"max_videos"`
	StaticAssetsPath string `yaml:"static_assets_path,omitempty"`
	Status           string `yaml:"status"`
}

// File structures
type VideosFile struct {
	Videos []VideoData `yaml:"videos"`
}

type TemplatesFile struct {
	Templates []TemplateData `yaml:"templates"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	videos, err := loadVideos(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load videos: %w", err)
	}

	templates, err := loadTemplates(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	videoCreated := 0
	for _, videoData := range videos {
		created, err := createVideo(db, videoData)
		if err != nil {
			return fmt.Errorf("failed to create video %s: %w", videoData.ExternalID, err)
		}
		if created {
			videoCreated++
		}
	}
	log.Printf("Videos: %d created, %d total", videoCreated, len(videos))

	templateCreated := 0
	for _, templateData := range templates {
		created, err := createTemplate(db, templateData)
		if err != nil {
			return fmt.Errorf("failed to create template %s: %w", templateData.Name, err)
		}
		if created {
			templateCreated++
		}
	}
	log.Printf("Templates: %d created, %d total", templateCreated, len(templates))

	return nil
}

func loadVideos(dataDir string) ([]VideoData, error) {
	path := filepath.Join(dataDir, "videos.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No videos.yaml found in %s, skipping", dataDir)
			return nil, nil
		}
		return nil, err
	}

	var file VideosFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse videos.yaml: %w", err)
	}
	return file.Videos, nil
}

func loadTemplates(dataDir string) ([]TemplateData, error) {
	path := filepath.Join(dataDir, "templates.yaml")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No templates.yaml found in %s, skipping", dataDir)
			return nil, nil
		}
		return nil, err
	}

	var file TemplatesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse templates.yaml: %w", err)
	}
	return file.Templates, nil
}

// createVideo inserts the video if its external id is not already present.
// Returns true when a new row was created.
func createVideo(db *gorm.DB, data VideoData) (bool, error) {
	var existing models.Video
	err := db.Where("external_id = ?", data.ExternalID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	status := models.VideoStatus(data.Status)
	if data.Status == "" {
		status = models.VideoStatusActive
	}
	if !status.IsValid() {
		return false, fmt.Errorf("invalid video status: %s", data.Status)
	}

	video := models.Video{
		ExternalID: data.ExternalID,
		Title:      data.Title,
		Category:   data.Category,
		PosterURL:  data.PosterURL,
		ViewCount:  data.ViewCount,
		Status:     status,
	}
	if err := db.Create(&video).Error; err != nil {
		return false, err
	}
	return true, nil
}

// createTemplate inserts the template if its name is not already present.
// Returns true when a new row was created.
func createTemplate(db *gorm.DB, data TemplateData) (bool, error) {
	var existing models.Template
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	status := models.TemplateStatus(data.Status)
	if data.Status == "" {
		status = models.TemplateStatusActive
	}
	if !status.IsValid() {
		return false, fmt.Errorf("invalid template status: %s", data.Status)
	}

	maxVideos := data.MaxVideos
	if maxVideos <= 0 {
		maxVideos = 1
	}

	template := models.Template{
		Name:             data.Name,
		Description:      data.Description,
		ThumbnailURL:     data.ThumbnailURL,
		HTMLFilePath:     data.HTMLFilePath,
		MaxVideos:        maxVideos,
		StaticAssetsPath: data.StaticAssetsPath,
		Status:           status,
	}
	if err := db.Create(&template).Error; err != nil {
		return false, err
	}
	return true, nil
}
