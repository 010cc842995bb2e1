package storage

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

// MatchRecord persists one match. The engine state travels as an opaque JSON
// document in the State column; the remaining columns are denormalized
// copies kept in sync by EncodeState so listing queries never need to decode
// the blob.
type MatchRecord struct {
	gorm.Model
	MatchID  string `json:"match_id" gorm:"uniqueIndex"`
	JoinCode string `json:"join_code" gorm:"uniqueIndex"`
	State    []byte `json:"-" gorm:"type:blob"`

	HostName       string `json:"host_name"`
	PlayerCount    int    `json:"player_count"`
	ActivePlayerID string `json:"active_player_id"`
	WinnerID       string `json:"winner_id"`
	Practice       bool   `json:"practice"`
	// StatsCounted guards the one-time leaderboard update on match end.
	StatsCounted bool `json:"-"`
}

func (MatchRecord) TableName() string { return "matches" }

// EncodeState serializes the engine state into the record and refreshes the
// denormalized columns.
func (r *MatchRecord) EncodeState(m *game.MatchState) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	r.State = b
	r.MatchID = m.ID
	r.PlayerCount = len(m.Players)
	r.ActivePlayerID = m.ActivePlayerID
	r.WinnerID = m.WinnerID
	if len(m.TurnOrder) > 0 {
		if host := m.Players[m.TurnOrder[0]]; host != nil {
			r.HostName = host.Name
		}
	}
	return nil
}

// DecodeState deserializes the stored engine state.
func (r *MatchRecord) DecodeState() (*game.MatchState, error) {
	var m game.MatchState
	if err := json.Unmarshal(r.State, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// PlayerProfile stores aggregate per-player stats for the leaderboard.
type PlayerProfile struct {
	gorm.Model
	PlayerID      string `json:"player_id" gorm:"uniqueIndex"`
	Name          string `json:"name"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
}

func (PlayerProfile) TableName() string { return "player_profiles" }
