package routes

import (
	"log"

	"project-showcase-backend/internal/api/handlers"
	"project-showcase-backend/internal/api/middleware"
	"project-showcase-backend/internal/auth"
	"project-showcase-backend/internal/config"
	"project-showcase-backend/internal/repository"
	"project-showcase-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	starRepo := repository.NewStarRepository(db)
	collaborationRepo := repository.NewCollaborationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// GitHub enrichment is optional; project detail pages work without it
	var githubService *service.GitHubService
	if cfg.GitHubEnrichment {
		var err error
		githubService, err = service.NewGitHubService(cfg.GitHubToken, cfg.GitHubAPIBaseURL)
		if err != nil {
			log.Printf("Warning: GitHub enrichment disabled: %v", err)
			githubService = nil
		}
	}

	// Initialize services
	interactionService := service.NewInteractionService(db, voteRepo, starRepo, commentRepo, projectRepo)
	collaborationService := service.NewCollaborationService(db, collaborationRepo, projectRepo, userRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	projectService := service.NewProjectService(db, projectRepo, userRepo, voteRepo, starRepo, collaborationRepo, commentRepo, notificationRepo, githubService, validate)
	commentService := service.NewCommentService(commentRepo, projectRepo, validate)

	// Initialize auth
	authService := auth.NewService(cfg)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	interactionHandler := handlers.NewInteractionHandler(interactionService)
	collaborationHandler := handlers.NewCollaborationHandler(collaborationService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	projectHandler := handlers.NewProjectHandler(projectService)
	commentHandler := handlers.NewCommentHandler(commentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/mine", projectHandler.ListMyProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.UpdateProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)

			// Interactions
			projects.POST("/:id/vote", interactionHandler.Vote)
			projects.POST("/:id/star", interactionHandler.Star)
			projects.DELETE("/:id/star", interactionHandler.Unstar)
			projects.GET("/:id/stats", interactionHandler.Stats)

			// Collaboration entry points scoped to a project
			projects.POST("/:id/collaborations", collaborationHandler.Request)
			projects.POST("/:id/collaborations/invite", collaborationHandler.Invite)

			// Comments
			projects.GET("/:id/comments", commentHandler.ListComments)
			projects.POST("/:id/comments", commentHandler.CreateComment)
		}

		// Collaboration routes
		collaborations := v1.Group("/collaborations")
		{
			collaborations.GET("/requests", collaborationHandler.ListRequests)
			collaborations.GET("/sent", collaborationHandler.ListSent)
			collaborations.GET("/active", collaborationHandler.ListActive)
			collaborations.POST("/:id/respond", collaborationHandler.Respond)
			collaborations.DELETE("/:id", collaborationHandler.Cancel)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.List)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.PUT("/read-all", notificationHandler.MarkAllRead)
			notifications.PUT("/:id/read", notificationHandler.MarkRead)
			notifications.DELETE("/:id", notificationHandler.Delete)
		}

		// Comment routes
		comments := v1.Group("/comments")
		{
			comments.DELETE("/:id", commentHandler.DeleteComment)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			admin.POST("/collaborations/:id/respond", collaborationHandler.AdminRespond)
			admin.DELETE("/collaborations/:id", collaborationHandler.AdminRemove)
			admin.GET("/notifications", notificationHandler.ListAll)
			admin.DELETE("/notifications/:id", notificationHandler.Delete)
			admin.PUT("/projects/:id/archive", projectHandler.ArchiveProject)
			admin.PUT("/projects/:id/activate", projectHandler.ActivateProject)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
