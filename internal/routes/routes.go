// Package routes wires repositories, services and handlers onto the HTTP
// surface.
package routes

import (
	"tajiri/internal/handlers"
	"tajiri/internal/repositories"
	"tajiri/internal/services/alerts"
	"tajiri/internal/services/chama"
	"tajiri/internal/services/dashboard"
	"tajiri/internal/services/fraud"
	"tajiri/internal/services/savings"
	"tajiri/internal/services/sms"
	"tajiri/internal/services/smsparser"
	"tajiri/internal/services/trustscore"
	"tajiri/internal/services/users"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes, grouped by feature.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	txRepo := repositories.NewTransactionRepository(db)
	alertRepo := repositories.NewFraudAlertRepository(db)
	savingsRepo := repositories.NewSavingsRepository(db)
	chamaRepo := repositories.NewChamaRepository(db)

	// Core engines
	parser := smsparser.NewParser(smsparser.DefaultConfig())
	detector := fraud.NewDetector(fraud.DefaultConfig())
	calculator := trustscore.NewCalculator(trustscore.DefaultWeights())

	// Services
	trustService := trustscore.NewService(userRepo, txRepo, alertRepo,
		savingsRepo, chamaRepo, repositories.CacheService, calculator)
	userService := users.NewService(userRepo)
	smsService := sms.NewService(parser, detector, userRepo, txRepo, alertRepo, trustService)
	alertService := alerts.NewService(alertRepo, detector, trustService)
	dashboardService := dashboard.NewService(userRepo, txRepo)
	chamaService := chama.NewService(chamaRepo, chama.SimulatedRegistrar{}, trustService)
	savingsService := savings.NewService(savingsRepo, trustService)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	smsHandler := handlers.NewSMSHandler(smsService)
	fraudHandler := handlers.NewFraudHandler(alertService)
	trustHandler := handlers.NewTrustScoreHandler(trustService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	chamaHandler := handlers.NewChamaHandler(chamaService)
	savingsHandler := handlers.NewSavingsHandler(savingsService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")

	api.Post("/auth/register", userHandler.Register)
	api.Get("/user/:phone", userHandler.GetByPhone)

	api.Post("/sms/parse", smsHandler.Parse)
	api.Post("/sms/sale", smsHandler.RecordSale)

	api.Get("/dashboard/:userID", dashboardHandler.GetSummary)
	api.Get("/tax-records/:userID", dashboardHandler.GetTaxRecords)

	api.Get("/fraud-alerts/:userID", fraudHandler.ListAlerts)
	api.Post("/fraud-alerts/:alertID/action", fraudHandler.ActOnAlert)
	api.Post("/fraud/report", fraudHandler.Report)
	api.Post("/fraud/call", fraudHandler.CheckCall)

	api.Get("/trust-score/:userID", trustHandler.GetScore)
	api.Get("/trust-score/:userID/breakdown", trustHandler.GetBreakdown)
	api.Post("/trust-score/:userID/recompute", trustHandler.Recompute)

	api.Get("/chamas/:userID", chamaHandler.ListForUser)
	api.Post("/chamas", chamaHandler.Create)
	api.Post("/chamas/:chamaID/join", chamaHandler.Join)

	api.Get("/savings/goals/:userID", savingsHandler.ListGoals)
	api.Post("/savings/goals", savingsHandler.CreateGoal)
	api.Post("/savings/contributions", savingsHandler.Contribute)
	api.Post("/savings/goals/:goalID/achieve", savingsHandler.AchieveGoal)
}
