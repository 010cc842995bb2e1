package engine

import (
	"fmt"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

// clampPlayer enforces the stat bounds: everything floors at zero, stability
// caps at the ceiling, happiness caps at the victory threshold.
func clampPlayer(p *game.PlayerState) {
	if p.Stats.Cash < 0 {
		p.Stats.Cash = 0
	}
	if p.Stats.GDP < 0 {
		p.Stats.GDP = 0
	}
	if p.Stats.Stability < 0 {
		p.Stats.Stability = 0
	}
	if p.Stats.Stability > game.StabilityCeiling {
		p.Stats.Stability = game.StabilityCeiling
	}
	if p.Stats.Happiness < 0 {
		p.Stats.Happiness = 0
	}
	if p.Stats.Happiness > game.VictoryHappiness {
		p.Stats.Happiness = game.VictoryHappiness
	}
}

// CheckVictory records the winner if a terminal condition holds. The first
// winner is final. Players are evaluated in turn order, and the happiness
// pass runs to completion before any stability check, so an Economic Victory
// always takes precedence over a simultaneous Domination Victory.
func CheckVictory(m *game.MatchState) {
	if m.WinnerID != "" {
		return
	}
	for _, id := range m.TurnOrder {
		clampPlayer(m.Players[id])
	}

	for _, id := range m.TurnOrder {
		p := m.Players[id]
		if p.Stats.Happiness >= game.VictoryHappiness {
			m.WinnerID = id
			logEvent(m, fmt.Sprintf("%s reached Economic Victory!", p.Name))
			return
		}
	}

	for _, id := range m.TurnOrder {
		opponent := m.Opponent(id)
		if opponent != nil && opponent.Stats.Stability <= game.DominationStability {
			m.WinnerID = id
			logEvent(m, fmt.Sprintf("%s achieved Domination Victory!", m.Players[id].Name))
			return
		}
	}
}
