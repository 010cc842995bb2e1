package storage

import "github.com/GeraldMcToaster/EcoWars/internal/game"

// Repository abstracts match and profile persistence for the service and
// API layers.
type Repository interface {
	CreateMatch(rec *MatchRecord) error
	GetMatchByID(matchID string) (*MatchRecord, error)
	FindMatchByJoinCode(code string) (*MatchRecord, error)
	UpdateMatch(rec *MatchRecord) error
	// ListOpenMatches returns recent non-practice matches still waiting for
	// an opponent.
	ListOpenMatches() ([]MatchRecord, error)

	UpsertProfile(playerID, name string) error
	// RecordMatchResult bumps matches-played for both players and wins for
	// the winner. Called exactly once per finished match.
	RecordMatchResult(m *game.MatchState) error
	GetTopPlayers(limit int) ([]PlayerProfile, error)
}
