// Package bot implements the scripted practice opponent. It is an ordinary
// engine caller: it only ever uses the public engine operations and has no
// special access to match internals.
package bot

import (
	"github.com/GeraldMcToaster/EcoWars/internal/engine"
	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

const (
	// PlayerID is the fixed identity of the practice opponent.
	PlayerID = "sim-bot"
	// DefaultName is used when no bot name is configured.
	DefaultName = "SimEconomy"
)

// TakeTurn plays one full bot turn: up to the per-turn card limit of
// affordable cards, an attack, then end turn. Validation failures are
// ignored; the engine guarantees a failed action leaves the match unchanged.
func TakeTurn(m *game.MatchState) {
	p := m.Players[PlayerID]
	if p == nil || m.ActivePlayerID != PlayerID || m.Finished() {
		return
	}

	hand := make([]game.CardInstance, len(p.Hand))
	copy(hand, p.Hand)
	played := 0
	for _, card := range hand {
		if played >= game.CardsPerTurn {
			break
		}
		if card.Cost > p.Stats.Cash {
			continue
		}
		if err := engine.PlayCard(m, PlayerID, card.InstanceID); err != nil {
			continue
		}
		played++
		if m.Finished() {
			return
		}
	}

	_ = engine.Attack(m, PlayerID)
	if m.Finished() {
		return
	}
	_ = engine.EndTurn(m, PlayerID)
}
