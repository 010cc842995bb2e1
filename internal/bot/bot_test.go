package bot

import (
	"testing"

	"github.com/GeraldMcToaster/EcoWars/internal/engine"
	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

func newPracticeMatch(t *testing.T) *game.MatchState {
	t.Helper()
	m := engine.CreateMatch("m-1", "host-1", "Avalonia", 42)
	if err := engine.AddPlayer(m, PlayerID, DefaultName, 43); err != nil {
		t.Fatalf("add bot failed: %v", err)
	}
	return m
}

func TestTakeTurnHandsBackToHost(t *testing.T) {
	m := newPracticeMatch(t)
	if err := engine.EndTurn(m, "host-1"); err != nil {
		t.Fatalf("end turn failed: %v", err)
	}
	if m.ActivePlayerID != PlayerID {
		t.Fatalf("expected bot to be active, got %q", m.ActivePlayerID)
	}

	TakeTurn(m)

	if m.Finished() {
		t.Fatal("game should not finish on the first bot turn")
	}
	if m.ActivePlayerID != "host-1" {
		t.Fatalf("expected host active after bot turn, got %q", m.ActivePlayerID)
	}
}

func TestTakeTurnPlaysAffordableCards(t *testing.T) {
	m := newPracticeMatch(t)
	if err := engine.EndTurn(m, "host-1"); err != nil {
		t.Fatalf("end turn failed: %v", err)
	}

	bot := m.Players[PlayerID]
	cashBefore := bot.Stats.Cash
	affordable := 0
	for _, card := range bot.Hand {
		if card.Cost <= cashBefore {
			affordable++
		}
	}
	if affordable == 0 {
		t.Fatal("seed produced a hand with nothing affordable")
	}

	TakeTurn(m)

	if m.TurnState.CardsPlayed != 0 {
		t.Fatal("turn state should be reset after handing the turn back")
	}
	if len(bot.Discard) == 0 {
		t.Fatal("bot played no cards despite affordable options")
	}
}

func TestTakeTurnAttacksWhenPossible(t *testing.T) {
	m := newPracticeMatch(t)
	if err := engine.EndTurn(m, "host-1"); err != nil {
		t.Fatalf("end turn failed: %v", err)
	}

	hostStabilityBefore := m.Players["host-1"].Stats.Stability
	TakeTurn(m)

	// Starting GDP is positive, so the bot always attacks.
	if m.Players["host-1"].Stats.Stability >= hostStabilityBefore {
		t.Fatal("expected host stability reduced by bot attack")
	}
}

func TestTakeTurnIgnoresWrongTurn(t *testing.T) {
	m := newPracticeMatch(t)
	// Host is active; the bot must not act.
	logBefore := len(m.EventLog)
	TakeTurn(m)
	if m.ActivePlayerID != "host-1" {
		t.Fatal("bot acted out of turn")
	}
	if len(m.EventLog) != logBefore {
		t.Fatal("bot mutated the match out of turn")
	}
}
