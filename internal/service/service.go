package service

import (
	"errors"
	"sync"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
	"github.com/GeraldMcToaster/EcoWars/internal/storage"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchFinished     = errors.New("match already finished")
	ErrPlayerNotInMatch  = errors.New("player not in match")
	ErrUnsupportedAction = errors.New("unsupported action")
)

// MatchRepo is the slice of storage.Repository the service layer needs.
type MatchRepo interface {
	CreateMatch(rec *storage.MatchRecord) error
	GetMatchByID(matchID string) (*storage.MatchRecord, error)
	FindMatchByJoinCode(code string) (*storage.MatchRecord, error)
	UpdateMatch(rec *storage.MatchRecord) error
	UpsertProfile(playerID, name string) error
	RecordMatchResult(m *game.MatchState) error
}

// Notifier pushes fresh match snapshots to subscribed spectators/clients.
type Notifier interface {
	BroadcastMatch(matchID string, m *game.MatchState)
}

// matchLocks serializes mutations per match. The engine provides no locking
// of its own; this is the single-writer discipline it requires from callers.
var matchLocks sync.Map

func lockFor(matchID string) *sync.Mutex {
	mu, _ := matchLocks.LoadOrStore(matchID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
