package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/services"
	"github.com/jstittsworth/gridiron-gm/pkg/utils"
)

type StaffHandler struct {
	franchise *services.FranchiseService
}

func NewStaffHandler(franchise *services.FranchiseService) *StaffHandler {
	return &StaffHandler{franchise: franchise}
}

// GetCoachMarket returns this week's hiring pool for a role.
func (h *StaffHandler) GetCoachMarket(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}
	role := league.CoachRole(c.DefaultQuery("role", string(league.HeadCoach)))

	pool, err := h.franchise.CoachMarket(c.Request.Context(), saveID, role)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{
		"role":    role,
		"coaches": pool,
	})
}

type hireCoachRequest struct {
	Role    league.CoachRole `json:"role" binding:"required"`
	CoachID string           `json:"coach_id" binding:"required"`
}

// HireCoach fills a staff slot from the hiring pool, replacing any
// incumbent.
func (h *StaffHandler) HireCoach(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}
	teamID := c.Param("teamId")

	var req hireCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid request body", err.Error())
		return
	}

	state, err := h.franchise.HireCoach(c.Request.Context(), saveID, teamID, req.Role, req.CoachID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{
		"staff": state.Staffs[teamID],
	})
}

// FireCoach vacates a staff slot.
func (h *StaffHandler) FireCoach(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}
	teamID := c.Param("teamId")
	role := league.CoachRole(c.Param("role"))

	if _, err := h.franchise.FireCoach(c.Request.Context(), saveID, teamID, role); err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{"fired": role})
}
