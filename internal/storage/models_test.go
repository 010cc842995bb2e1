package storage

import (
	"testing"

	"github.com/GeraldMcToaster/EcoWars/internal/engine"
)

func TestEncodeStateSyncsColumns(t *testing.T) {
	m := engine.CreateMatch("m-1", "host-1", "Avalonia", 7)

	rec := &MatchRecord{JoinCode: "ABCDE"}
	if err := rec.EncodeState(m); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	if rec.MatchID != "m-1" {
		t.Fatalf("match id not synced, got %q", rec.MatchID)
	}
	if rec.HostName != "Avalonia" {
		t.Fatalf("host name not synced, got %q", rec.HostName)
	}
	if rec.PlayerCount != 1 {
		t.Fatalf("player count not synced, got %d", rec.PlayerCount)
	}
	if rec.ActivePlayerID != "host-1" {
		t.Fatalf("active player not synced, got %q", rec.ActivePlayerID)
	}
	if rec.WinnerID != "" {
		t.Fatalf("winner should be empty, got %q", rec.WinnerID)
	}
}

func TestStateRoundTrip(t *testing.T) {
	m := engine.CreateMatch("m-1", "host-1", "Avalonia", 7)
	if err := engine.AddPlayer(m, "guest-1", "Borduria", 8); err != nil {
		t.Fatalf("add player failed: %v", err)
	}

	rec := &MatchRecord{JoinCode: "ABCDE"}
	if err := rec.EncodeState(m); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	got, err := rec.DecodeState()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if got.ID != m.ID || got.ActivePlayerID != m.ActivePlayerID {
		t.Fatal("decoded state does not match")
	}
	if len(got.Players) != 2 || len(got.TurnOrder) != 2 {
		t.Fatal("players lost in round trip")
	}
	host := got.Players["host-1"]
	if host == nil || len(host.Hand) != len(m.Players["host-1"].Hand) {
		t.Fatal("hand lost in round trip")
	}
	if host.Stats != m.Players["host-1"].Stats {
		t.Fatal("stats changed in round trip")
	}
	if host.DeckSeed != 7 {
		t.Fatalf("deck seed lost, got %d", host.DeckSeed)
	}
}

func TestDecodeStateRejectsGarbage(t *testing.T) {
	rec := &MatchRecord{State: []byte("not json")}
	if _, err := rec.DecodeState(); err == nil {
		t.Fatal("expected decode error")
	}
}
