package routes

import (
	"landing-page-backend/internal/api/handlers"
	"landing-page-backend/internal/api/middleware"
	"landing-page-backend/internal/config"
	"landing-page-backend/internal/render"
	"landing-page-backend/internal/repository"
	"landing-page-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures the router: repositories, services, handlers and
// the HTTP surface they hang off
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validate := validator.New()

	// Repositories
	videoRepo := repository.NewVideoRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	workflowRepo := repository.NewWorkflowRepository(db)
	pageRepo := repository.NewLandingPageRepository(db)

	// Rendering
	renderer := render.NewFileRenderer(cfg.TemplatesRoot, cfg.GeneratedRoot)

	// Services
	videoService := service.NewVideoService(videoRepo, service.NewVideoSyncClient(cfg), validate)
	templateService := service.NewTemplateService(templateRepo, validate)
	workflowService := service.NewWorkflowService(workflowRepo, pageRepo, validate)
	generationService := service.NewGenerationService(workflowRepo, templateRepo, videoRepo, pageRepo, renderer, validate)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	videoHandler := handlers.NewVideoHandler(videoService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	workflowHandler := handlers.NewWorkflowHandler(workflowService, generationService)

	// Health checks
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static surfaces: registered template assets and generated artifacts
	router.Static("/templates", cfg.TemplatesRoot)
	router.Static("/generated", cfg.GeneratedRoot)

	v1 := router.Group("/api/v1")
	{
		videos := v1.Group("/videos")
		{
			videos.GET("", videoHandler.ListVideos)
			videos.POST("", videoHandler.CreateVideo)
			videos.POST("/sync", videoHandler.SyncVideos)
			videos.PUT("/:id", videoHandler.UpdateVideo)
			videos.DELETE("/:id", videoHandler.DeleteVideo)
		}

		templates := v1.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.POST("", templateHandler.CreateTemplate)
			templates.PUT("/:id", templateHandler.UpdateTemplate)
			templates.DELETE("/:id", templateHandler.DeleteTemplate)
		}

		workflows := v1.Group("/workflows")
		{
			workflows.GET("", workflowHandler.ListWorkflows)
			workflows.POST("", workflowHandler.CreateWorkflow)
			workflows.POST("/preview", workflowHandler.PreviewLandingPage)
			workflows.GET("/:id", workflowHandler.GetWorkflow)
			workflows.POST("/:id/generate", workflowHandler.GenerateLandingPages)
			workflows.POST("/:id/archive", workflowHandler.ArchiveWorkflow)
			workflows.DELETE("/:id", workflowHandler.DeleteWorkflow)
		}
	}
}
