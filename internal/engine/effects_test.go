package engine

import (
	"testing"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

// Every catalog entry must have a resolution routine. A missing handler is a
// test-time error, never a runtime one.
func TestEffectTableCoversCatalog(t *testing.T) {
	for _, def := range game.CardLibrary {
		if _, ok := effectHandlers[def.Slug]; !ok {
			t.Errorf("card %q has no effect handler", def.Slug)
		}
	}
	for slug := range effectHandlers {
		if _, ok := game.CardBySlug(slug); !ok {
			t.Errorf("handler for %q has no catalog entry", slug)
		}
	}
}

func TestEveryResolutionLogsOneEvent(t *testing.T) {
	for _, def := range game.CardLibrary {
		m := newTestMatch(t)
		host := m.Players[testHostID]
		host.Stats.Cash = 100
		cardID := giveCard(t, host, def.Slug)

		logBefore := len(m.EventLog)
		if err := PlayCard(m, testHostID, cardID); err != nil {
			t.Fatalf("play %s failed: %v", def.Slug, err)
		}
		if len(m.EventLog) <= logBefore {
			t.Errorf("playing %s logged nothing", def.Slug)
		}
	}
}

func TestTaxCutOneShotCashModifier(t *testing.T) {
	m := newTestMatch(t)
	host := m.Players[testHostID]
	host.Stats.Cash = 10
	cardID := giveCard(t, host, game.TaxCut)

	if err := PlayCard(m, testHostID, cardID); err != nil {
		t.Fatalf("play card failed: %v", err)
	}
	if len(host.Board.Policies) != 1 {
		t.Fatalf("expected 1 policy on board, got %d", len(host.Board.Policies))
	}

	happinessBefore := host.Stats.Happiness
	cashBefore := host.Stats.Cash
	cycleTurns(t, m, 2)
	// First tick: +5 income, -2 one-shot, +3 happiness per turn.
	if host.Stats.Cash != cashBefore+game.CashGainPerTurn-2 {
		t.Fatalf("one-shot cash modifier not applied: cash %d", host.Stats.Cash)
	}
	if host.Stats.Happiness != happinessBefore+3 {
		t.Fatalf("happiness per turn not applied: %d", host.Stats.Happiness)
	}

	cashBefore = host.Stats.Cash
	cycleTurns(t, m, 2)
	// Second tick: the one-shot is exhausted, only income applies.
	if host.Stats.Cash != cashBefore+game.CashGainPerTurn {
		t.Fatalf("one-shot cash modifier applied twice: cash %d", host.Stats.Cash)
	}
	// The policy itself persists indefinitely.
	if len(host.Board.Policies) != 1 {
		t.Fatalf("indefinite policy was dropped, board has %d", len(host.Board.Policies))
	}
}

func TestPriceControlsTargetsOpponentAndExpires(t *testing.T) {
	m := newTestMatch(t)
	host := m.Players[testHostID]
	guest := m.Players[testGuestID]
	host.Stats.Cash = 10
	guest.Stats.GDP = 10
	cardID := giveCard(t, host, game.PriceControls)

	if err := PlayCard(m, testHostID, cardID); err != nil {
		t.Fatalf("play card failed: %v", err)
	}
	if len(host.Board.Policies) != 0 {
		t.Fatal("price controls landed on the caster's board")
	}
	if len(guest.Board.Policies) != 1 {
		t.Fatalf("expected 1 policy on opponent board, got %d", len(guest.Board.Policies))
	}

	// Guest turn 1: -3 GDP, one duration left.
	cycleTurns(t, m, 1)
	if guest.Stats.GDP != 7 {
		t.Fatalf("expected guest gdp 7 after first tick, got %d", guest.Stats.GDP)
	}
	if len(guest.Board.Policies) != 1 {
		t.Fatal("policy expired a turn early")
	}

	// Guest turn 2: -3 GDP again, then the effect is removed.
	cycleTurns(t, m, 2)
	if guest.Stats.GDP != 4 {
		t.Fatalf("expected guest gdp 4 after second tick, got %d", guest.Stats.GDP)
	}
	if len(guest.Board.Policies) != 0 {
		t.Fatalf("expired policy still on board: %d", len(guest.Board.Policies))
	}

	// Guest turn 3: no further decay.
	cycleTurns(t, m, 2)
	if guest.Stats.GDP != 4 {
		t.Fatalf("expired policy still ticking: gdp %d", guest.Stats.GDP)
	}
}

func TestTechnologyBoomCompoundsEachTurn(t *testing.T) {
	m := newTestMatch(t)
	host := m.Players[testHostID]
	host.Stats.Cash = 20
	cardID := giveCard(t, host, game.TechnologyBoom)

	if err := PlayCard(m, testHostID, cardID); err != nil {
		t.Fatalf("play card failed: %v", err)
	}
	gdpBefore := host.Stats.GDP
	happinessBefore := host.Stats.Happiness

	cycleTurns(t, m, 2)
	if host.Stats.GDP != gdpBefore+12 {
		t.Fatalf("expected +12 gdp, got %d -> %d", gdpBefore, host.Stats.GDP)
	}
	if host.Stats.Happiness != happinessBefore+2 {
		t.Fatalf("expected +2 happiness, got %d -> %d", happinessBefore, host.Stats.Happiness)
	}

	cycleTurns(t, m, 2)
	if host.Stats.GDP != gdpBefore+24 {
		t.Fatalf("industry effect stopped compounding: gdp %d", host.Stats.GDP)
	}
}

func TestRecessionHitsBothPlayers(t *testing.T) {
	m := newTestMatch(t)
	host := m.Players[testHostID]
	guest := m.Players[testGuestID]
	host.Stats.Cash = 10
	host.Stats.GDP = 10
	guest.Stats.GDP = 3
	cardID := giveCard(t, host, game.Recession)

	happinessBefore := host.Stats.Happiness
	if err := PlayCard(m, testHostID, cardID); err != nil {
		t.Fatalf("play card failed: %v", err)
	}
	if host.Stats.GDP != 5 {
		t.Fatalf("expected host gdp 5, got %d", host.Stats.GDP)
	}
	// Opponent gdp floors at zero.
	if guest.Stats.GDP != 0 {
		t.Fatalf("expected guest gdp clamped to 0, got %d", guest.Stats.GDP)
	}
	if host.Stats.Happiness != happinessBefore+3 {
		t.Fatalf("expected +3 happiness, got %d", host.Stats.Happiness)
	}
}

func TestTickOnlyRunsForIncomingPlayer(t *testing.T) {
	m := newTestMatch(t)
	host := m.Players[testHostID]
	guest := m.Players[testGuestID]
	host.Stats.Cash = 10
	cardID := giveCard(t, host, game.BuildFactory)

	if err := PlayCard(m, testHostID, cardID); err != nil {
		t.Fatalf("play card failed: %v", err)
	}
	gdpAfterPlay := host.Stats.GDP

	// Handing the turn to the guest must not tick the host's board.
	cycleTurns(t, m, 1)
	if host.Stats.GDP != gdpAfterPlay {
		t.Fatalf("host board ticked on opponent's turn: gdp %d", host.Stats.GDP)
	}
	_ = guest
}
