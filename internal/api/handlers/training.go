package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/gridiron-gm/internal/progression"
	"github.com/jstittsworth/gridiron-gm/internal/services"
	"github.com/jstittsworth/gridiron-gm/pkg/utils"
)

type TrainingHandler struct {
	franchise *services.FranchiseService
}

func NewTrainingHandler(franchise *services.FranchiseService) *TrainingHandler {
	return &TrainingHandler{franchise: franchise}
}

// ListPrograms returns the catalog of training types and intensities.
func (h *TrainingHandler) ListPrograms(c *gin.Context) {
	utils.SendSuccess(c, gin.H{
		"types":       progression.TrainingTypes,
		"intensities": progression.Intensities,
	})
}

type applyTrainingRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Quality  int    `json:"quality" binding:"required,min=1,max=100"`
}

// Apply runs a one-shot training session on a player.
func (h *TrainingHandler) Apply(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	var req applyTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid request body", err.Error())
		return
	}
	trainingType := progression.TrainingType(req.Type)
	if _, ok := progression.TrainingTypes[trainingType]; !ok {
		utils.SendValidationError(c, "unknown training type", req.Type)
		return
	}

	if _, err := h.franchise.ApplyTraining(c.Request.Context(), saveID, req.PlayerID, trainingType, req.Quality); err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{"applied": true})
}

type assignTrainingRequest struct {
	PlayerID  string `json:"player_id" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Intensity string `json:"intensity" binding:"required"`
	Weeks     int    `json:"weeks" binding:"required,min=1,max=18"`
}

// Assign puts a player on a weekly training program that ticks as the
// season advances.
func (h *TrainingHandler) Assign(c *gin.Context) {
	saveID, ok := parseSaveID(c)
	if !ok {
		return
	}

	var req assignTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "invalid request body", err.Error())
		return
	}
	trainingType := progression.TrainingType(req.Type)
	if _, ok := progression.TrainingTypes[trainingType]; !ok {
		utils.SendValidationError(c, "unknown training type", req.Type)
		return
	}
	intensity := progression.Intensity(req.Intensity)
	if _, ok := progression.Intensities[intensity]; !ok {
		utils.SendValidationError(c, "unknown intensity", req.Intensity)
		return
	}

	if _, err := h.franchise.AssignTraining(c.Request.Context(), saveID, req.PlayerID, trainingType, intensity, req.Weeks); err != nil {
		respondError(c, err)
		return
	}
	utils.SendSuccess(c, gin.H{"assigned": true})
}
