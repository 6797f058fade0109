package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/gridiron-gm/internal/services"
	"github.com/jstittsworth/gridiron-gm/pkg/utils"
)

type DraftHandler struct {
	franchise *services.FranchiseService
}

func NewDraftHandler(franchise *services.FranchiseService) *DraftHandler {
	return &DraftHandler{franchise: franchise}
}

// GetBoard returns the prospect pool, the pick order, and who is on the clock.
func (h *DraftHandler) GetBoard(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	state, err := h.franchise.State(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}

	var onClock string
	if state.NextPick < len(state.DraftPicks) {
		onClock = state.DraftPicks[state.NextPick].TeamID
	}

	utils.SendSuccess(c, gin.H{
		"phase":     state.Phase,
		"prospects": state.Prospects,
		"picks":     state.DraftPicks,
		"next_pick": state.NextPick,
		"on_clock":  onClock,
	})
}

type draftPickRequest struct {
	TeamID     string `json:"team_id" binding:"required"`
	ProspectID string `json:"prospect_id" binding:"required"`
}

// MakePick drafts a prospect for the team on the clock. AI teams pick
// automatically until the user is back on the clock or the draft ends.
func (h *DraftHandler) MakePick(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	var req draftPickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid request body", err.Error())
		return
	}

	state, player, err := h.franchise.DraftPlayer(c.Request.Context(), saveID, req.TeamID, req.ProspectID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"player":    player,
		"phase":     state.Phase,
		"next_pick": state.NextPick,
	})
}
