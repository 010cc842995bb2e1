package engine

import (
	"fmt"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

// PlayCard validates and resolves playing the card with the given instance
// id from the active player's hand. Validation is fully front-loaded: any
// failure returns before the first mutation, so the match is untouched on
// error.
func PlayCard(m *game.MatchState, playerID, cardInstanceID string) error {
	if err := ensureActivePlayer(m, playerID); err != nil {
		return err
	}
	player := m.Players[playerID]
	opponent := m.Opponent(playerID)
	if player == nil || opponent == nil {
		return ErrMissingOpponent
	}
	if m.TurnState.CardsPlayed >= game.CardsPerTurn {
		return ErrCardLimitReached
	}

	cardIndex := -1
	for i := range player.Hand {
		if player.Hand[i].InstanceID == cardInstanceID {
			cardIndex = i
			break
		}
	}
	if cardIndex == -1 {
		return ErrCardNotFound
	}

	card := player.Hand[cardIndex]
	if player.Stats.Cash < card.Cost {
		return ErrInsufficientCash
	}

	player.Stats.Cash -= card.Cost
	m.TurnState.CardsPlayed++
	player.Hand = append(player.Hand[:cardIndex], player.Hand[cardIndex+1:]...)

	resolveEffect(m, player, opponent, card)

	player.Discard = append(player.Discard, card)
	clampPlayer(player)
	clampPlayer(opponent)
	CheckVictory(m)
	return nil
}

// Attack spends the turn's single attack: the caster's current GDP is dealt
// to the opponent's stability as damage. GDP is not consumed.
func Attack(m *game.MatchState, playerID string) error {
	if err := ensureActivePlayer(m, playerID); err != nil {
		return err
	}
	player := m.Players[playerID]
	opponent := m.Opponent(playerID)
	if player == nil || opponent == nil {
		return ErrMissingOpponent
	}
	if m.TurnState.AttackUsed {
		return ErrAttackAlreadyUsed
	}
	if player.Stats.GDP <= 0 {
		return ErrNoGDPToAttack
	}

	opponent.Stats.Stability -= player.Stats.GDP
	m.TurnState.AttackUsed = true
	clampPlayer(opponent)
	logEvent(m, fmt.Sprintf("%s launched an Industry attack for %d damage!", player.Name, player.Stats.GDP))
	CheckVictory(m)
	return nil
}
