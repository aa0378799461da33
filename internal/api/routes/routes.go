package routes

import (
	"time"

	"feedback-hub-backend/internal/api/handlers"
	"feedback-hub-backend/internal/api/middleware"
	"feedback-hub-backend/internal/auth"
	"feedback-hub-backend/internal/config"
	"feedback-hub-backend/internal/database/models"
	"feedback-hub-backend/internal/repository"
	"feedback-hub-backend/internal/service"

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
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	// Initialize auth
	tokenService := auth.NewService(cfg.JWTSecret, time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute)
	authMiddleware := auth.NewMiddleware(tokenService, userRepo)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	accountService := service.NewAccountService(userRepo, organizationRepo, tokenService, validator)
	userService := service.NewUserService(userRepo, feedbackRepo, validator)
	invitationService := service.NewInvitationService(invitationRepo, userRepo, tokenService, validator, time.Duration(cfg.InvitationTTLHours)*time.Hour)
	feedbackService := service.NewFeedbackService(feedbackRepo, userRepo, validator)
	dashboardService := service.NewDashboardService(userRepo, feedbackRepo, invitationRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	authHandler := handlers.NewAuthHandler(accountService, invitationService)
	userHandler := handlers.NewUserHandler(userService)
	employeeHandler := handlers.NewEmployeeHandler(userService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes - public, no token required
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/invitations/accept", authHandler.AcceptInvitation)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// Public organization routes - creating an organization is the entry
	// point before any user exists
	public := router.Group("/api/v1")
	{
		public.POST("/organizations", organizationHandler.CreateOrganization)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.GET("/:id", organizationHandler.GetOrganization)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.PATCH("/:id", authMiddleware.RequireRole(models.RoleOwner, models.RoleAdmin), userHandler.UpdateUser)
		}

		// Employee routes
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.GET("/:id/feedback", feedbackHandler.ListEmployeeFeedback)
		}

		// Invitation routes
		invitations := v1.Group("/invitations")
		invitations.Use(authMiddleware.RequireRole(models.RoleOwner, models.RoleAdmin, models.RoleManager))
		{
			invitations.POST("", invitationHandler.CreateInvitation)
			invitations.GET("", invitationHandler.ListInvitations)
		}

		// Feedback routes
		feedback := v1.Group("/feedback")
		{
			feedback.POST("", feedbackHandler.CreateFeedback)
			feedback.GET("/received", feedbackHandler.ListMyFeedback)
			feedback.GET("/:id", feedbackHandler.GetFeedback)
			feedback.PATCH("/:id", feedbackHandler.UpdateFeedback)
			feedback.POST("/:id/acknowledge", feedbackHandler.AcknowledgeFeedback)
			feedback.POST("/:id/comment", feedbackHandler.CommentFeedback)
		}

		// Dashboard routes
		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetStats)
		}
	}

	return router
}
