package api

import (
	"github.com/GeraldMcToaster/EcoWars/internal/realtime"
	"github.com/GeraldMcToaster/EcoWars/internal/storage"
)

// MatchHandler groups all match-related HTTP handlers.
type MatchHandler struct {
	repo    storage.Repository
	hub     *realtime.Hub
	botName string
}

// NewMatchHandler creates a new MatchHandler with the given repository,
// realtime hub and configured practice bot name.
func NewMatchHandler(repo storage.Repository, hub *realtime.Hub, botName string) *MatchHandler {
	return &MatchHandler{repo: repo, hub: hub, botName: botName}
}
