package service

import (
	"github.com/GeraldMcToaster/EcoWars/internal/bot"
	"github.com/GeraldMcToaster/EcoWars/internal/engine"
	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

// ActionType names one of the three engine operations a player may submit.
type ActionType string

const (
	ActionPlayCard ActionType = "play-card"
	ActionAttack   ActionType = "attack"
	ActionEndTurn  ActionType = "end-turn"
)

// SubmitAction applies one player action to a match: load, mutate through
// the engine, persist, broadcast. Mutations for the same match are
// serialized by a per-match lock; engine validation errors pass through
// with the stored state untouched.
func SubmitAction(repo MatchRepo, notifier Notifier, matchID, playerID string, action ActionType, cardInstanceID string) (*game.MatchState, error) {
	mu := lockFor(matchID)
	mu.Lock()
	defer mu.Unlock()

	rec, err := repo.GetMatchByID(matchID)
	if err != nil {
		return nil, ErrMatchNotFound
	}
	m, err := rec.DecodeState()
	if err != nil {
		return nil, err
	}
	if m.Finished() {
		return nil, ErrMatchFinished
	}
	if _, ok := m.Players[playerID]; !ok {
		return nil, ErrPlayerNotInMatch
	}

	if err := applyAction(m, playerID, action, cardInstanceID); err != nil {
		return nil, err
	}

	// In practice matches the scripted opponent takes its whole turn inside
	// the same request that handed it the turn.
	if rec.Practice && !m.Finished() && m.ActivePlayerID == bot.PlayerID {
		bot.TakeTurn(m)
	}

	if m.Finished() && !rec.StatsCounted {
		if !rec.Practice {
			_ = repo.RecordMatchResult(m)
		}
		rec.StatsCounted = true
	}

	if err := rec.EncodeState(m); err != nil {
		return nil, err
	}
	if err := repo.UpdateMatch(rec); err != nil {
		return nil, err
	}
	if notifier != nil {
		notifier.BroadcastMatch(matchID, m)
	}
	return m, nil
}

func applyAction(m *game.MatchState, playerID string, action ActionType, cardInstanceID string) error {
	switch action {
	case ActionPlayCard:
		return engine.PlayCard(m, playerID, cardInstanceID)
	case ActionAttack:
		return engine.Attack(m, playerID)
	case ActionEndTurn:
		return engine.EndTurn(m, playerID)
	default:
		return ErrUnsupportedAction
	}
}
