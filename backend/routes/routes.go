package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"
	"project/backend/service"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	svc := service.New(db)

	// Auth routes
	authController := controllers.NewAuthController(svc, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(svc, cfg)
	adminMiddleware := middleware.AdminMiddleware()

	// Profile routes
	profileController := controllers.NewProfileController(svc, cfg)
	profile := app.Group("/api/profile", authMiddleware)
	profile.Get("/", profileController.GetProfile)
	profile.Get("/stats", profileController.GetStats)
	profile.Put("/name", profileController.UpdateName)
	profile.Put("/password", profileController.UpdatePassword)
	profile.Put("/avatar", profileController.UpdateAvatar)
	profile.Put("/settings", profileController.UpdateSettings)
	profile.Put("/title", profileController.SetActiveTitle)

	// Score routes
	scoresController := controllers.NewScoresController(svc, cfg)
	app.Post("/api/scores", authMiddleware, scoresController.RecordScore)

	// Quest routes
	questsController := controllers.NewQuestsController(svc, cfg)
	app.Get("/api/missions", authMiddleware, questsController.GetMissions)

	// Title request routes
	requestsController := controllers.NewRequestsController(svc, cfg)
	app.Post("/api/requests", authMiddleware, requestsController.Submit)
	app.Get("/api/requests/pending", authMiddleware, requestsController.GetPending)

	// Leaderboard routes
	leaderboardController := controllers.NewLeaderboardController(svc, cfg)
	app.Get("/api/leaderboard", authMiddleware, leaderboardController.GetLeaderboard)

	// Admin routes
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Get("/requests/:name", requestsController.PendingForProfile)
	admin.Post("/requests/:id/approve", requestsController.Approve)
	admin.Post("/requests/:id/deny", requestsController.Deny)
	admin.Post("/quests/claim", questsController.ClaimQuest)
}
