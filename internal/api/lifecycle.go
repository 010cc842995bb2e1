package api

import (
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/GeraldMcToaster/EcoWars/internal/constants"
	"github.com/GeraldMcToaster/EcoWars/internal/engine"
	"github.com/GeraldMcToaster/EcoWars/internal/logging"
	"github.com/GeraldMcToaster/EcoWars/internal/service"
)

type CreateMatchPayload struct {
	PlayerName string `json:"player_name"`
	Practice   bool   `json:"practice"`
}

// CreateMatch creates a new match and returns the initial state, the host's
// player id and the lobby code.
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req CreateMatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.PlayerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNicknameRequired})
		return
	}
	if utf8.RuneCountInString(req.PlayerName) > 32 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	joinCode := generateJoinCode()
	m, playerID, err := service.CreateMatch(h.repo, req.PlayerName, joinCode, h.botName, req.Practice, newSeed())
	if err != nil {
		logging.Error("Failed to create match", err, logging.Fields{constants.LogFieldJoinCode: joinCode})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateMatch})
		return
	}

	logging.Info("Match created", logging.Fields{
		constants.LogFieldMatchID:  m.ID,
		constants.LogFieldJoinCode: joinCode,
	})
	c.JSON(http.StatusCreated, gin.H{
		constants.JSONKeyMatch:    m,
		constants.JSONKeyPlayerID: playerID,
		constants.JSONKeyJoinCode: joinCode,
	})
}

type JoinMatchPayload struct {
	JoinCode   string `json:"join_code"`
	PlayerName string `json:"player_name"`
}

// JoinMatch lets a second player enter a match via lobby code.
func (h *MatchHandler) JoinMatch(c *gin.Context) {
	var req JoinMatchPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if req.PlayerName == "" {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrNicknameRequired})
		return
	}

	code := normalizeJoinCode(req.JoinCode)
	if !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidJoinCode})
		return
	}

	m, playerID, err := service.JoinMatch(h.repo, code, req.PlayerName, newSeed())
	switch {
	case err == nil:
	case err == service.ErrMatchNotFound:
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrMatchNotFound})
		return
	case err == engine.ErrMatchFull:
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrMatchFull})
		return
	default:
		logging.Error("Failed to join match", err, logging.Fields{constants.LogFieldJoinCode: code})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedUpdateMatch})
		return
	}

	logging.Info("Player joined match", logging.Fields{
		constants.LogFieldMatchID:  m.ID,
		constants.LogFieldPlayerID: playerID,
	})
	c.JSON(http.StatusOK, gin.H{
		constants.JSONKeyMatch:    m,
		constants.JSONKeyPlayerID: playerID,
	})
}

// GetMatch returns the current state of a match looked up by lobby code.
func (h *MatchHandler) GetMatch(c *gin.Context) {
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
	m, err := rec.DecodeState()
	if err != nil {
		logging.Error("Failed to decode match state", err, logging.Fields{constants.LogFieldJoinCode: code})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeyMatch: m})
}

// ListOpenMatches returns recent matches still waiting for an opponent.
func (h *MatchHandler) ListOpenMatches(c *gin.Context) {
	recs, err := h.repo.ListOpenMatches()
	if err != nil {
		logging.Error("Failed to list open matches", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchMatches})
		return
	}

	type openMatch struct {
		JoinCode string `json:"join_code"`
		HostName string `json:"host_name"`
	}
	out := make([]openMatch, 0, len(recs))
	for _, rec := range recs {
		out = append(out, openMatch{JoinCode: rec.JoinCode, HostName: rec.HostName})
	}
	c.JSON(http.StatusOK, gin.H{"matches": out})
}

// ListLeaderboard returns the players with the most wins.
func (h *MatchHandler) ListLeaderboard(c *gin.Context) {
	profiles, err := h.repo.GetTopPlayers(0)
	if err != nil {
		logging.Error("Failed to fetch rankings", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRankings})
		return
	}

	type entry struct {
		Name          string `json:"name"`
		MatchesPlayed int    `json:"matches_played"`
		Wins          int    `json:"wins"`
	}
	out := make([]entry, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, entry{Name: p.Name, MatchesPlayed: p.MatchesPlayed, Wins: p.Wins})
	}
	c.JSON(http.StatusOK, gin.H{"players": out})
}
