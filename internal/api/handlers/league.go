package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/season"
	"github.com/jstittsworth/gridiron-gm/internal/services"
	"github.com/jstittsworth/gridiron-gm/pkg/utils"
)

type LeagueHandler struct {
	franchise *services.FranchiseService
}

func NewLeagueHandler(franchise *services.FranchiseService) *LeagueHandler {
	return &LeagueHandler{franchise: franchise}
}

// ListTeams returns the static league structure. No save required.
func (h *LeagueHandler) ListTeams(c *gin.Context) {
	utils.SendSuccess(c, league.Teams)
}

// GetStandings returns the current regular-season standings.
func (h *LeagueHandler) GetStandings(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	state, err := h.franchise.State(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{
		"season":    state.CurrentSeason,
		"week":      state.CurrentWeek,
		"phase":     state.Phase,
		"standings": state.Standings,
	})
}

// GetSchedule returns the season schedule, optionally filtered to one week.
func (h *LeagueHandler) GetSchedule(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	state, err := h.franchise.State(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}

	if weekStr := c.Query("week"); weekStr != "" {
		week, err := strconv.Atoi(weekStr)
		if err != nil || week < 1 {
			utils.SendValidationError(c, "invalid week", weekStr)
			return
		}
		utils.SendSuccess(c, season.WeekGames(state.Schedule, state.CurrentSeason, week))
		return
	}
	utils.SendSuccess(c, state.Schedule)
}

// GetBracket returns the playoff bracket, or null outside the playoffs.
func (h *LeagueHandler) GetBracket(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	state, err := h.franchise.State(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, state.Bracket)
}

// GetHistory returns the per-season records and awards archive.
func (h *LeagueHandler) GetHistory(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	state, err := h.franchise.State(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{
		"records": state.History,
		"awards":  state.Awards,
	})
}

// GetLeaders returns the league leaders for one stat category.
func (h *LeagueHandler) GetLeaders(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}
	category := c.DefaultQuery("category", "passing_yards")
	limit := 10
	if limitStr := c.Query("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 || n > 100 {
			utils.SendValidationError(c, "invalid limit", limitStr)
			return
		}
		limit = n
	}

	if !season.ValidCategory(category) {
		utils.SendValidationError(c, "unknown stat category", category)
		return
	}

	state, err := h.franchise.State(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, season.Leaders(state.Rosters, category, limit))
}
