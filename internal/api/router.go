package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/gridiron-gm/internal/api/handlers"
	"github.com/jstittsworth/gridiron-gm/internal/api/middleware"
	"github.com/jstittsworth/gridiron-gm/internal/services"
	"github.com/jstittsworth/gridiron-gm/pkg/config"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, franchise *services.FranchiseService, cfg *config.Config) {
	// Initialize handlers
	saveHandler := handlers.NewSaveHandler(franchise, cfg.DefaultSeed)
	simulationHandler := handlers.NewSimulationHandler(franchise)
	rosterHandler := handlers.NewRosterHandler(franchise)
	draftHandler := handlers.NewDraftHandler(franchise)
	tradeHandler := handlers.NewTradeHandler(franchise)
	trainingHandler := handlers.NewTrainingHandler(franchise)
	leagueHandler := handlers.NewLeagueHandler(franchise)
	staffHandler := handlers.NewStaffHandler(franchise)

	group.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Static league data
	group.GET("/teams", leagueHandler.ListTeams)
	group.GET("/training/programs", trainingHandler.ListPrograms)

	// Save management
	group.GET("/saves", saveHandler.ListSaves)
	group.POST("/saves", saveHandler.CreateSave)
	group.GET("/saves/:id", saveHandler.GetState)
	group.DELETE("/saves/:id", saveHandler.DeleteSave)

	// League views
	group.GET("/saves/:id/standings", leagueHandler.GetStandings)
	group.GET("/saves/:id/schedule", leagueHandler.GetSchedule)
	group.GET("/saves/:id/bracket", leagueHandler.GetBracket)
	group.GET("/saves/:id/history", leagueHandler.GetHistory)
	group.GET("/saves/:id/leaders", leagueHandler.GetLeaders)

	// Roster and market views
	group.GET("/saves/:id/teams/:teamId/roster", rosterHandler.GetRoster)
	group.GET("/saves/:id/free-agents", rosterHandler.GetFreeAgents)
	group.GET("/saves/:id/coaches", staffHandler.GetCoachMarket)

	// Draft board
	group.GET("/saves/:id/draft", draftHandler.GetBoard)

	// Trade history
	group.GET("/saves/:id/trades", tradeHandler.History)

	// Mutating endpoints. In development these stay open so the frontend
	// can drive a save without a login flow; production requires a token.
	sim := group.Group("")
	if cfg.IsProduction() {
		sim.Use(middleware.AuthRequired(cfg.JWTSecret))
	} else {
		sim.Use(middleware.OptionalAuth(cfg.JWTSecret))
	}
	{
		sim.POST("/saves/:id/advance-week", simulationHandler.AdvanceWeek)
		sim.POST("/saves/:id/advance-season", simulationHandler.AdvanceSeason)
		sim.POST("/saves/:id/free-agents/:playerId/sign", rosterHandler.SignFreeAgent)
		sim.DELETE("/saves/:id/teams/:teamId/roster/:playerId", rosterHandler.ReleasePlayer)
		sim.POST("/saves/:id/teams/:teamId/staff/hire", staffHandler.HireCoach)
		sim.DELETE("/saves/:id/teams/:teamId/staff/:role", staffHandler.FireCoach)
		sim.POST("/saves/:id/draft/pick", draftHandler.MakePick)
		sim.POST("/saves/:id/trades/propose", tradeHandler.Propose)
		sim.POST("/saves/:id/trades/execute", tradeHandler.Execute)
		sim.POST("/saves/:id/training/apply", trainingHandler.Apply)
		sim.POST("/saves/:id/training/assign", trainingHandler.Assign)
	}

	// WebSocket endpoint lives at root level, not under /api/v1.
	// It is wired in main.go.
}
