package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/gridiron-gm/internal/contracts"
	"github.com/jstittsworth/gridiron-gm/internal/services"
	"github.com/jstittsworth/gridiron-gm/pkg/utils"
)

type RosterHandler struct {
	franchise *services.FranchiseService
}

func NewRosterHandler(franchise *services.FranchiseService) *RosterHandler {
	return &RosterHandler{franchise: franchise}
}

// GetRoster returns one team's roster with its cap situation.
func (h *RosterHandler) GetRoster(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}
	teamID := c.Param("teamId")

	state, err := h.franchise.State(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}

	roster, exists := state.Rosters[teamID]
	if !exists {
		utils.SendNotFound(c, "unknown team "+teamID)
		return
	}

	utils.SendSuccess(c, gin.H{
		"roster":      roster,
		"team_salary": contracts.TeamSalary(roster),
		"cap_space":   contracts.CapSpace(roster),
		"staff":       state.Staffs[teamID],
	})
}

// GetFreeAgents returns the open market with each player's market value.
func (h *RosterHandler) GetFreeAgents(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	state, err := h.franchise.State(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}

	type freeAgent struct {
		Player      interface{} `json:"player"`
		MarketValue int64       `json:"market_value"`
	}
	out := make([]freeAgent, 0, len(state.FreeAgents))
	for _, p := range state.FreeAgents {
		out = append(out, freeAgent{Player: p, MarketValue: contracts.MarketValue(p)})
	}
	utils.SendSuccess(c, out)
}

type signRequest struct {
	TeamID          string `json:"team_id" binding:"required"`
	Salary          int64  `json:"salary" binding:"required"`
	Years           int    `json:"years" binding:"required"`
	SigningBonusPct int    `json:"signing_bonus_pct"`
	GuaranteedPct   int    `json:"guaranteed_pct"`
	NoTrade         bool   `json:"no_trade"`
	NoFranchiseTag  bool   `json:"no_franchise_tag"`
}

// SignFreeAgent presents an offer to a free agent. The response carries the
// evaluation either way; the roster only changes on acceptance.
func (h *RosterHandler) SignFreeAgent(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}
	playerID := c.Param("playerId")

	var req signRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid request body", err.Error())
		return
	}

	offer := contracts.Offer{
		Salary:          req.Salary,
		Years:           req.Years,
		SigningBonusPct: req.SigningBonusPct,
		GuaranteedPct:   req.GuaranteedPct,
		NoTrade:         req.NoTrade,
		NoFranchiseTag:  req.NoFranchiseTag,
	}

	_, eval, err := h.franchise.SignFreeAgent(c.Request.Context(), saveID, req.TeamID, playerID, offer)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, eval)
}

// ReleasePlayer cuts a player into free agency.
func (h *RosterHandler) ReleasePlayer(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}
	teamID := c.Param("teamId")
	playerID := c.Param("playerId")

	if _, err := h.franchise.ReleasePlayer(c.Request.Context(), saveID, teamID, playerID); err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{"released": playerID})
}
