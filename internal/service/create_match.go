package service

import (
	"github.com/google/uuid"

	"github.com/GeraldMcToaster/EcoWars/internal/bot"
	"github.com/GeraldMcToaster/EcoWars/internal/engine"
	"github.com/GeraldMcToaster/EcoWars/internal/game"
	"github.com/GeraldMcToaster/EcoWars/internal/storage"
)

// CreateMatch mints a host identity, builds a fresh match via the engine and
// persists it. For practice matches the scripted opponent joins immediately,
// so the host can play without waiting for a human.
func CreateMatch(repo MatchRepo, hostName, joinCode, botName string, practice bool, seed int64) (*game.MatchState, string, error) {
	hostID := uuid.NewString()
	matchID := uuid.NewString()

	m := engine.CreateMatch(matchID, hostID, hostName, seed)
	if practice {
		name := botName
		if name == "" {
			name = bot.DefaultName
		}
		// Deck seeds must differ or both players draw identical decks.
		if err := engine.AddPlayer(m, bot.PlayerID, name, seed+1); err != nil {
			return nil, "", err
		}
	}

	rec := &storage.MatchRecord{JoinCode: joinCode, Practice: practice}
	if err := rec.EncodeState(m); err != nil {
		return nil, "", err
	}
	if err := repo.UpsertProfile(hostID, hostName); err != nil {
		return nil, "", err
	}
	if err := repo.CreateMatch(rec); err != nil {
		return nil, "", err
	}
	return m, hostID, nil
}

// JoinMatch resolves a lobby code and adds a second player. Engine errors
// (such as ErrMatchFull) pass through unchanged.
func JoinMatch(repo MatchRepo, joinCode, playerName string, seed int64) (*game.MatchState, string, error) {
	rec, err := repo.FindMatchByJoinCode(joinCode)
	if err != nil {
		return nil, "", ErrMatchNotFound
	}
	m, err := rec.DecodeState()
	if err != nil {
		return nil, "", err
	}

	playerID := uuid.NewString()
	if err := engine.AddPlayer(m, playerID, playerName, seed); err != nil {
		return nil, "", err
	}

	if err := rec.EncodeState(m); err != nil {
		return nil, "", err
	}
	if err := repo.UpsertProfile(playerID, playerName); err != nil {
		return nil, "", err
	}
	if err := repo.UpdateMatch(rec); err != nil {
		return nil, "", err
	}
	return m, playerID, nil
}
