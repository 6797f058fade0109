package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/gridiron-gm/internal/contracts"
	"github.com/jstittsworth/gridiron-gm/internal/draft"
	"github.com/jstittsworth/gridiron-gm/internal/engine"
	"github.com/jstittsworth/gridiron-gm/internal/services"
	"github.com/jstittsworth/gridiron-gm/internal/trades"
	"github.com/jstittsworth/gridiron-gm/pkg/utils"
)

// respondError maps engine and service errors onto the response envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoSave):
		utils.SendNotFound(c, "save not found")
	case errors.Is(err, engine.ErrNotInitialized):
		utils.SendValidationError(c, "game not initialized", err.Error())
	case errors.Is(err, engine.ErrWrongPhase):
		utils.SendWrongPhase(c, err.Error())
	case errors.Is(err, contracts.ErrOverCap):
		utils.SendOverCap(c, err.Error())
	case errors.Is(err, engine.ErrPlayerNotFound),
		errors.Is(err, engine.ErrProspectNotFound),
		errors.Is(err, engine.ErrCoachNotFound):
		utils.SendNotFound(c, err.Error())
	case errors.Is(err, engine.ErrUnknownTeam),
		errors.Is(err, engine.ErrUnknownRole),
		errors.Is(err, engine.ErrNotOnClock),
		errors.Is(err, engine.ErrDraftComplete),
		errors.Is(err, draft.ErrProspectDrafted),
		errors.Is(err, draft.ErrPickUsed),
		errors.Is(err, trades.ErrSameTeam),
		errors.Is(err, trades.ErrNotOnRoster),
		errors.Is(err, trades.ErrPickNotOwned),
		errors.Is(err, trades.ErrNoTradeClause):
		utils.SendValidationError(c, "invalid request", err.Error())
	default:
		utils.SendInternalError(c, err.Error())
	}
}
