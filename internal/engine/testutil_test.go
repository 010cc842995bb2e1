package engine

import (
	"testing"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

const (
	testHostID  = "host-1"
	testGuestID = "guest-1"
)

// newTestMatch builds a deterministic two-player match with the host active.
func newTestMatch(t *testing.T) *game.MatchState {
	t.Helper()
	m := CreateMatch("match-1", testHostID, "Avalonia", 42)
	if err := AddPlayer(m, testGuestID, "Borduria", 43); err != nil {
		t.Fatalf("failed to add second player: %v", err)
	}
	return m
}

// giveCard plants a known card instance into a player's hand and returns its
// instance id.
func giveCard(t *testing.T, p *game.PlayerState, slug game.CardSlug) string {
	t.Helper()
	def, ok := game.CardBySlug(slug)
	if !ok {
		t.Fatalf("unknown card slug %q", slug)
	}
	inst := game.CardInstance{CardDefinition: def, InstanceID: "test-" + string(slug)}
	p.Hand = append(p.Hand, inst)
	return inst.InstanceID
}

// cycleTurns ends the active player's turn n times.
func cycleTurns(t *testing.T, m *game.MatchState, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := EndTurn(m, m.ActivePlayerID); err != nil {
			t.Fatalf("end turn %d failed: %v", i+1, err)
		}
	}
}
