package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GeraldMcToaster/EcoWars/internal/constants"
	"github.com/GeraldMcToaster/EcoWars/internal/engine"
	"github.com/GeraldMcToaster/EcoWars/internal/logging"
	"github.com/GeraldMcToaster/EcoWars/internal/service"
)

type ActionRequest struct {
	PlayerID       string `json:"player_id"`
	ActionType     string `json:"action_type"`
	CardInstanceID string `json:"card_instance_id"`
}

// engineRuleErrors are turn-rule violations reported to the client verbatim
// with a 409 status; everything else from the engine is a server fault.
var engineRuleErrors = []error{
	engine.ErrNotYourTurn,
	engine.ErrCardNotFound,
	engine.ErrInsufficientCash,
	engine.ErrCardLimitReached,
	engine.ErrAttackAlreadyUsed,
	engine.ErrNoGDPToAttack,
	engine.ErrMissingOpponent,
}

// SubmitAction applies a play-card, attack or end-turn action to a match.
func (h *MatchHandler) SubmitAction(c *gin.Context) {
	code := normalizeJoinCode(c.Param("code"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}

	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PlayerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	rec, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}

	m, err := service.SubmitAction(h.repo, h.hub, rec.MatchID, req.PlayerID, service.ActionType(req.ActionType), req.CardInstanceID)
	if err != nil {
		h.writeActionError(c, err)
		return
	}

	logging.Info("Action applied", logging.Fields{
		constants.LogFieldMatchID:  rec.MatchID,
		constants.LogFieldPlayerID: req.PlayerID,
		constants.LogFieldAction:   req.ActionType,
	})
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMatch: m})
}

func (h *MatchHandler) writeActionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
	case errors.Is(err, service.ErrMatchFinished):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, service.ErrPlayerNotInMatch):
		c.JSON(http.StatusForbidden, gin.H{constants.JSONKeyError: err.Error()})
	case errors.Is(err, service.ErrUnsupportedAction):
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: err.Error()})
	case isEngineRuleError(err):
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: err.Error()})
	default:
		logging.Error("Failed to apply action", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
	}
}

func isEngineRuleError(err error) bool {
	for _, rule := range engineRuleErrors {
		if errors.Is(err, rule) {
			return true
		}
	}
	return false
}
