package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
	// openMatchTTL bounds how long a waiting match stays publicly listed.
	openMatchTTL time.Duration
}

func NewSQLiteRepository(db *gorm.DB, openMatchTTL time.Duration) Repository {
	return &sqliteRepository{db: db, openMatchTTL: openMatchTTL}
}

func (r *sqliteRepository) CreateMatch(rec *MatchRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetMatchByID(matchID string) (*MatchRecord, error) {
	var rec MatchRecord
	if err := r.db.Where("match_id = ?", matchID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) FindMatchByJoinCode(code string) (*MatchRecord, error) {
	var rec MatchRecord
	if err := r.db.Where("join_code = ?", code).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) UpdateMatch(rec *MatchRecord) error {
	return r.db.Save(rec).Error
}

func (r *sqliteRepository) ListOpenMatches() ([]MatchRecord, error) {
	cutoff := time.Now().Add(-r.openMatchTTL)
	var recs []MatchRecord
	err := r.db.
		Where("player_count < ? AND practice = ? AND winner_id = ? AND created_at > ?", 2, false, "", cutoff).
		Order("created_at desc").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) UpsertProfile(playerID, name string) error {
	var p PlayerProfile
	if err := r.db.Where("player_id = ?", playerID).First(&p).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return err
		}
		p = PlayerProfile{PlayerID: playerID}
	}
	p.Name = name
	return r.db.Save(&p).Error
}

func (r *sqliteRepository) RecordMatchResult(m *game.MatchState) error {
	// Helper to upsert and add deltas.
	bump := func(playerID, name string, played, wins int) error {
		var p PlayerProfile
		if err := r.db.Where("player_id = ?", playerID).First(&p).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			p = PlayerProfile{PlayerID: playerID}
		}
		p.Name = name
		p.MatchesPlayed += played
		p.Wins += wins
		return r.db.Save(&p).Error
	}

	for _, id := range m.TurnOrder {
		player := m.Players[id]
		if player == nil {
			continue
		}
		wins := 0
		if m.WinnerID == id {
			wins = 1
		}
		if err := bump(id, player.Name, 1, wins); err != nil {
			return err
		}
	}
	return nil
}

// GetTopPlayers returns top N players ordered by wins desc, then matches
// played desc.
func (r *sqliteRepository) GetTopPlayers(limit int) ([]PlayerProfile, error) {
	if limit <= 0 {
		limit = 10
	}
	var players []PlayerProfile
	err := r.db.Model(&PlayerProfile{}).
		Order("wins DESC").
		Order("matches_played DESC").
		Limit(limit).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}
