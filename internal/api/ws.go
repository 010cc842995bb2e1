package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GeraldMcToaster/EcoWars/internal/constants"
	"github.com/GeraldMcToaster/EcoWars/internal/logging"
)

// SubscribeMatch upgrades the connection to a websocket and streams match
// snapshots to the client after every accepted action.
func (h *MatchHandler) SubscribeMatch(c *gin.Context) {
	code := normalizeJoinCode(c.Param("code"))
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}
	rec, err := h.repo.FindMatchByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	}

	if err := h.hub.Subscribe(c.Writer, c.Request, rec.MatchID); err != nil {
		// The upgrader has already written its own failure response.
		logging.Error("Failed to open match subscription", err, logging.Fields{constants.LogFieldMatchID: rec.MatchID})
		return
	}
	logging.Info("Match subscription opened", logging.Fields{constants.LogFieldMatchID: rec.MatchID})
}
