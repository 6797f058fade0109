package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/gridiron-gm/internal/services"
	"github.com/jstittsworth/gridiron-gm/pkg/utils"
)

type SimulationHandler struct {
	franchise *services.FranchiseService
}

func NewSimulationHandler(franchise *services.FranchiseService) *SimulationHandler {
	return &SimulationHandler{franchise: franchise}
}

// AdvanceWeek simulates the save's next step: a week of games, the rest of
// the draft, or the free-agency period, depending on phase.
func (h *SimulationHandler) AdvanceWeek(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	state, summary, err := h.franchise.AdvanceWeek(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"season":  state.CurrentSeason,
		"week":    state.CurrentWeek,
		"phase":   state.Phase,
		"summary": summary,
	})
}

// AdvanceSeason rolls an offseason save into the next year.
func (h *SimulationHandler) AdvanceSeason(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	state, summary, err := h.franchise.AdvanceSeason(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"season":  state.CurrentSeason,
		"phase":   state.Phase,
		"summary": summary,
	})
}
