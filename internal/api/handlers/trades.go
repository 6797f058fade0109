package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/gridiron-gm/internal/services"
	"github.com/jstittsworth/gridiron-gm/internal/trades"
	"github.com/jstittsworth/gridiron-gm/pkg/utils"
)

type TradeHandler struct {
	franchise *services.FranchiseService
}

func NewTradeHandler(franchise *services.FranchiseService) *TradeHandler {
	return &TradeHandler{franchise: franchise}
}

type tradeRequest struct {
	FromTeamID       string   `json:"from_team_id" binding:"required"`
	ToTeamID         string   `json:"to_team_id" binding:"required"`
	OfferedPlayers   []string `json:"offered_players"`
	OfferedPicks     []string `json:"offered_picks"`
	RequestedPlayers []string `json:"requested_players"`
	RequestedPicks   []string `json:"requested_picks"`
}

func (r tradeRequest) proposal() *trades.Proposal {
	return trades.NewProposal(r.FromTeamID, r.ToTeamID,
		r.OfferedPlayers, r.OfferedPicks, r.RequestedPlayers, r.RequestedPicks)
}

// Propose submits a trade to the AI on the other side. The response says
// whether the offer was accepted; assets only move on acceptance.
func (h *TradeHandler) Propose(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid request body", err.Error())
		return
	}

	_, accepted, err := h.franchise.ProposeTrade(c.Request.Context(), saveID, req.proposal())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{"accepted": accepted})
}

// Execute forces a trade through without an AI evaluation. Used for
// AI-to-AI deals and commissioner-style overrides; validation still applies.
func (h *TradeHandler) Execute(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid request body", err.Error())
		return
	}

	if _, err := h.franchise.ExecuteTrade(c.Request.Context(), saveID, req.proposal()); err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{"executed": true})
}

// History lists the completed trades in this save.
func (h *TradeHandler) History(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	state, err := h.franchise.State(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, state.TradeHistory)
}
