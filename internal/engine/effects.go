package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

// effectHandler resolves one card: it mutates the caster/opponent stats or
// installs an ongoing board effect, and narrates the outcome. The effect
// magnitudes are part of the game's contract.
type effectHandler func(m *game.MatchState, player, opponent *game.PlayerState, card game.CardInstance)

// effectHandlers must cover every slug in game.CardLibrary; the table's
// exhaustiveness is asserted by TestEffectTableCoversCatalog.
var effectHandlers = map[game.CardSlug]effectHandler{
	game.BuildFactory: func(m *game.MatchState, player, _ *game.PlayerState, card game.CardInstance) {
		addIndustry(player, card, game.OngoingEffect{GDPPerTurn: 10})
		logEvent(m, fmt.Sprintf("%s built a Factory: +10 GDP each turn", player.Name))
	},
	game.TaxCut: func(m *game.MatchState, player, _ *game.PlayerState, card game.CardInstance) {
		addPolicy(player, card, game.OngoingEffect{
			HappinessPerTurn:     3,
			CashNextTurnModifier: -2,
			CashModifierUsesLeft: 1,
		})
		logEvent(m, fmt.Sprintf("%s passed Tax Cut: +3 Happiness per turn", player.Name))
	},
	game.TradeDeal: func(m *game.MatchState, player, _ *game.PlayerState, _ game.CardInstance) {
		player.Stats.GDP += 5
		player.Stats.Cash += 5
		logEvent(m, fmt.Sprintf("%s signed a Trade Deal: +5 GDP and +5 Cash", player.Name))
	},
	game.InflationSpike: func(m *game.MatchState, _, opponent *game.PlayerState, _ game.CardInstance) {
		opponent.Stats.Stability -= 10
		logEvent(m, fmt.Sprintf("Inflation Spike hit %s: -10 Stability", opponent.Name))
	},
	game.GreenEnergy: func(m *game.MatchState, player, _ *game.PlayerState, _ game.CardInstance) {
		player.Stats.GDP += 8
		player.Stats.Happiness += 3
		logEvent(m, fmt.Sprintf("%s invested in Green Energy: +8 GDP, +3 Happiness", player.Name))
	},
	game.HealthProgram: func(m *game.MatchState, player, _ *game.PlayerState, _ game.CardInstance) {
		player.Stats.Stability += 10
		logEvent(m, fmt.Sprintf("%s launched a Health Program: +10 Stability", player.Name))
	},
	game.TechnologyBoom: func(m *game.MatchState, player, _ *game.PlayerState, card game.CardInstance) {
		addIndustry(player, card, game.OngoingEffect{GDPPerTurn: 12, HappinessPerTurn: 2})
		logEvent(m, fmt.Sprintf("%s sparked a Technology Boom: +12 GDP per turn", player.Name))
	},
	game.Recession: func(m *game.MatchState, player, opponent *game.PlayerState, _ game.CardInstance) {
		player.Stats.GDP -= 5
		opponent.Stats.GDP -= 5
		player.Stats.Happiness += 3
		logEvent(m, fmt.Sprintf("%s navigated a Recession: both -5 GDP, +3 Happiness", player.Name))
	},
	game.TourismBoost: func(m *game.MatchState, player, _ *game.PlayerState, _ game.CardInstance) {
		player.Stats.Happiness += 6
		logEvent(m, fmt.Sprintf("%s got a Tourism Boost: +6 Happiness", player.Name))
	},
	game.PriceControls: func(m *game.MatchState, player, opponent *game.PlayerState, card game.CardInstance) {
		duration := 2
		addPolicy(opponent, card, game.OngoingEffect{GDPPerTurn: -3, Duration: &duration})
		logEvent(m, fmt.Sprintf("%s set Price Controls: %s -3 GDP next 2 turns", player.Name, opponent.Name))
	},
	game.NaturalDisaster: func(m *game.MatchState, _, opponent *game.PlayerState, _ game.CardInstance) {
		opponent.Stats.Stability -= 15
		logEvent(m, fmt.Sprintf("Natural Disaster struck %s: -15 Stability", opponent.Name))
	},
	game.EducationReform: func(m *game.MatchState, player, _ *game.PlayerState, card game.CardInstance) {
		addPolicy(player, card, game.OngoingEffect{GDPPerTurn: 2, HappinessPerTurn: 2})
		logEvent(m, fmt.Sprintf("%s led Education Reform: +2 GDP and Happiness per turn", player.Name))
	},
	game.SmallBusinessGrant: func(m *game.MatchState, player, _ *game.PlayerState, card game.CardInstance) {
		addIndustry(player, card, game.OngoingEffect{GDPPerTurn: 5})
		logEvent(m, fmt.Sprintf("%s funded Small Businesses: +5 GDP per turn", player.Name))
	},
	game.Strike: func(m *game.MatchState, _, opponent *game.PlayerState, _ game.CardInstance) {
		opponent.Stats.GDP -= 5
		logEvent(m, fmt.Sprintf("Strike slowed %s: -5 GDP", opponent.Name))
	},
	game.HappinessFestival: func(m *game.MatchState, player, _ *game.PlayerState, _ game.CardInstance) {
		player.Stats.Happiness += 8
		player.Stats.Stability += 5
		logEvent(m, fmt.Sprintf("%s threw a Happiness Festival: +8 Happiness, +5 Stability", player.Name))
	},
}

func resolveEffect(m *game.MatchState, player, opponent *game.PlayerState, card game.CardInstance) {
	handler, ok := effectHandlers[card.Slug]
	if !ok {
		// Unreachable for catalog cards; the coverage test enforces that.
		logEvent(m, fmt.Sprintf("%s played %s.", player.Name, card.Name))
		return
	}
	handler(m, player, opponent, card)
}

func addIndustry(p *game.PlayerState, card game.CardInstance, effect game.OngoingEffect) {
	effect.ID = uuid.NewString()
	effect.Kind = game.EffectIndustry
	effect.CardSlug = card.Slug
	p.Board.Industries = append(p.Board.Industries, game.BoardSlot{
		Card:   duplicateInstance(card),
		Effect: effect,
	})
}

func addPolicy(p *game.PlayerState, card game.CardInstance, effect game.OngoingEffect) {
	effect.ID = uuid.NewString()
	effect.Kind = game.EffectPolicy
	effect.CardSlug = card.Slug
	p.Board.Policies = append(p.Board.Policies, game.BoardSlot{
		Card:   duplicateInstance(card),
		Effect: effect,
	})
}

// tickBoard advances every board effect of the player whose turn is
// starting. The opponent's board is untouched until their own turn starts.
func tickBoard(player, opponent *game.PlayerState) {
	player.Board.Industries = tickSlots(player.Board.Industries, player, opponent)
	player.Board.Policies = tickSlots(player.Board.Policies, player, opponent)
}

// tickSlots applies each effect's deltas in list order, then drops effects
// whose duration ran out this tick. Effects without a duration are never
// dropped.
func tickSlots(slots []game.BoardSlot, player, opponent *game.PlayerState) []game.BoardSlot {
	kept := slots[:0]
	for i := range slots {
		eff := &slots[i].Effect
		player.Stats.GDP += eff.GDPPerTurn
		player.Stats.Happiness += eff.HappinessPerTurn
		player.Stats.Stability += eff.StabilityPerTurn
		if eff.CashNextTurnModifier != 0 && eff.CashModifierUsesLeft > 0 {
			player.Stats.Cash += eff.CashNextTurnModifier
			if player.Stats.Cash < 0 {
				player.Stats.Cash = 0
			}
			eff.CashModifierUsesLeft--
		}
		if eff.OpponentGDPModifier != 0 && opponent != nil {
			opponent.Stats.GDP += eff.OpponentGDPModifier
			if opponent.Stats.GDP < 0 {
				opponent.Stats.GDP = 0
			}
		}
		if eff.Duration != nil {
			*eff.Duration--
			if *eff.Duration <= 0 {
				continue
			}
		}
		kept = append(kept, slots[i])
	}
	return kept
}
