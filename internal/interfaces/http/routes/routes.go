package routes

import (
	"github.com/margdarshak/career-intelligence-api/internal/application/analytics"
	"github.com/margdarshak/career-intelligence-api/internal/application/scoring"
	"github.com/margdarshak/career-intelligence-api/internal/application/usecases"
	"github.com/margdarshak/career-intelligence-api/internal/domain/repositories"
	"github.com/margdarshak/career-intelligence-api/internal/infrastructure/ai"
	"github.com/margdarshak/career-intelligence-api/internal/interfaces/http/handlers"
	"github.com/margdarshak/career-intelligence-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	wellnessRepo := repositories.NewWellnessRepository(db)
	collegeRepo := repositories.NewCollegeRepository(db)
	timelineRepo := repositories.NewTimelineRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	recommendationRepo := repositories.NewRecommendationRepository(db)

	// AI collaborator (best effort: todo erro cai no fallback determinístico)
	gemini := ai.NewClient()

	// Use Cases
	authUseCase := usecases.NewAuthUseCase(userRepo)
	userUseCase := usecases.NewUserUseCase(userRepo)
	assessmentUseCase := usecases.NewAssessmentUseCase(
		assessmentRepo,
		userRepo,
		scoring.NewRegistry(),
		scoring.DefaultTemplates(),
		gemini,
	)
	wellnessUseCase := usecases.NewWellnessUseCase(wellnessRepo, analytics.NewInsightEngine())
	collegeUseCase := usecases.NewCollegeUseCase(collegeRepo, userRepo)
	timelineUseCase := usecases.NewTimelineUseCase(timelineRepo)
	chatUseCase := usecases.NewChatUseCase(chatRepo, userRepo, gemini)
	recommendationUseCase := usecases.NewRecommendationUseCase(recommendationRepo, userRepo, assessmentRepo, gemini)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentUseCase)
	wellnessHandler := handlers.NewWellnessHandler(wellnessUseCase)
	collegeHandler := handlers.NewCollegeHandler(collegeUseCase)
	timelineHandler := handlers.NewTimelineHandler(timelineUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationUseCase)

	api := app.Group("/api")

	// Rotas públicas, registradas antes do middleware de autenticação
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Catálogos públicos de referência
	api.Get("/recommendations/course-mapping", recommendationHandler.GetCourseMapping)
	api.Get("/recommendations/courses/all", recommendationHandler.GetCourses)

	// Rotas autenticadas
	protected := api.Group("", middleware.Protected())

	// User
	protected.Get("/users/me", userHandler.GetMe)
	protected.Get("/users/me/profile", userHandler.GetProfile)
	protected.Put("/users/me/profile", userHandler.UpsertProfile)

	// Assessments
	protected.Get("/assessments", assessmentHandler.GetAvailable)
	protected.Get("/assessments/mine", assessmentHandler.GetMine)
	protected.Post("/assessments", assessmentHandler.Start)
	protected.Get("/assessments/analytics", assessmentHandler.GetAnalytics)
	protected.Get("/assessments/:id", assessmentHandler.GetResult)
	protected.Post("/assessments/:id/submit", assessmentHandler.Submit)
	protected.Post("/assessments/:id/regenerate", assessmentHandler.Regenerate)

	// Wellness
	protected.Post("/wellness/checkins", wellnessHandler.CreateCheckin)
	protected.Get("/wellness/checkins/today", wellnessHandler.GetToday)
	protected.Put("/wellness/checkins/:id", wellnessHandler.UpdateCheckin)
	protected.Get("/wellness/dashboard", wellnessHandler.GetDashboard)
	protected.Get("/wellness/analytics", wellnessHandler.GetAnalytics)
	protected.Get("/wellness/insights", wellnessHandler.GetInsights)
	protected.Patch("/wellness/insights/:id/read", wellnessHandler.MarkInsightRead)
	protected.Post("/wellness/goals", wellnessHandler.CreateGoal)
	protected.Get("/wellness/goals", wellnessHandler.GetGoals)
	protected.Put("/wellness/goals/:id", wellnessHandler.UpdateGoal)
	protected.Delete("/wellness/goals/:id", wellnessHandler.DeleteGoal)

	// Colleges
	protected.Get("/colleges", collegeHandler.GetColleges)
	protected.Get("/colleges/nearby/search", collegeHandler.GetNearby)
	protected.Get("/colleges/programs/:program", collegeHandler.GetByProgram)
	protected.Get("/colleges/meta/programs", collegeHandler.GetPrograms)
	protected.Get("/colleges/meta/locations", collegeHandler.GetLocations)
	protected.Get("/colleges/:id", collegeHandler.GetCollege)

	// Recommendations
	protected.Get("/recommendations/career/:role", recommendationHandler.GetCareerResources)
	protected.Get("/recommendations/careers", recommendationHandler.GetCareerRecommendations)
	protected.Get("/recommendations/courses", recommendationHandler.GetCourseRecommendations)
	protected.Post("/recommendations/roadmap", recommendationHandler.CreateRoadmap)
	protected.Get("/recommendations/roadmaps", recommendationHandler.GetRoadmaps)
	protected.Patch("/recommendations/milestone/:id/complete", recommendationHandler.CompleteMilestone)

	// Timeline
	protected.Get("/timeline", timelineHandler.GetEvents)
	protected.Get("/timeline/reminders", timelineHandler.GetReminders)
	protected.Post("/timeline", timelineHandler.CreateEvent)
	protected.Put("/timeline/:id", timelineHandler.UpdateEvent)
	protected.Patch("/timeline/:id/toggle", timelineHandler.ToggleCompleted)
	protected.Delete("/timeline/:id", timelineHandler.DeleteEvent)

	// Chat
	protected.Post("/chat/sessions", chatHandler.CreateSession)
	protected.Get("/chat/sessions", chatHandler.GetSessions)
	protected.Get("/chat/sessions/:id", chatHandler.GetSession)
	protected.Post("/chat/sessions/:id/messages", chatHandler.SendMessage)
}
