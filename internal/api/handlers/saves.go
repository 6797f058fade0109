package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/gridiron-gm/internal/services"
	"github.com/jstittsworth/gridiron-gm/pkg/utils"
)

type SaveHandler struct {
	franchise   *services.FranchiseService
	defaultSeed int64
}

func NewSaveHandler(franchise *services.FranchiseService, defaultSeed int64) *SaveHandler {
	return &SaveHandler{franchise: franchise, defaultSeed: defaultSeed}
}

type createSaveRequest struct {
	Name   string `json:"name" binding:"required"`
	TeamID string `json:"team_id" binding:"required"`
	Seed   int64  `json:"seed"`
}

// CreateSave starts a new franchise.
func (h *SaveHandler) CreateSave(c *gin.Context) {
	var req createSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid request body", err.Error())
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = h.defaultSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	save, state, err := h.franchise.CreateSave(c.Request.Context(), req.Name, req.TeamID, seed)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SendSuccess(c, gin.H{
		"save":  save,
		"state": state,
	})
}

// ListSaves returns every save slot.
func (h *SaveHandler) ListSaves(c *gin.Context) {
	saves, err := h.franchise.Saves()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, saves)
}

// GetState returns a save's full state.
func (h *SaveHandler) GetState(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	state, err := h.franchise.State(c.Request.Context(), saveID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, state)
}

// DeleteSave removes a save slot.
func (h *SaveHandler) DeleteSave(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	if err := h.franchise.DeleteSave(c.Request.Context(), saveID); err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{"deleted": saveID})
}

// parseSaveID reads the :id route parameter, writing the error response
// itself on bad input.
func parseSaveID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "invalid save id", c.Param("id"))
		return 0, false
	}
	return uint(id), true
}
