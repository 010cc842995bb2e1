package engine

import (
	"fmt"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

// NewPlayerState builds a player with starting stats, a freshly generated
// deck and an initial hand drawn to the hand-size cap.
func NewPlayerState(id, name string, seed int64) *game.PlayerState {
	p := &game.PlayerState{
		ID:       id,
		Name:     name,
		Stats:    game.StartingStats,
		Deck:     GenerateDeck(seed),
		Hand:     []game.CardInstance{},
		Discard:  []game.CardInstance{},
		DeckSeed: seed,
	}
	drawCards(p, game.HandSize)
	return p
}

// CreateMatch builds a one-player match owned by the host and immediately
// runs the host's first start-of-turn upkeep, so the host's opening turn
// already has income and a full hand applied.
func CreateMatch(matchID, hostID, hostName string, seed int64) *game.MatchState {
	host := NewPlayerState(hostID, hostName, seed)
	m := &game.MatchState{
		ID:             matchID,
		Players:        map[string]*game.PlayerState{hostID: host},
		TurnOrder:      []string{hostID},
		ActivePlayerID: hostID,
		EventLog:       []game.GameEvent{},
	}
	logEvent(m, fmt.Sprintf("%s created the match. Waiting for an opponent.", host.Name))
	StartTurn(m, hostID)
	return m
}

// AddPlayer joins a second player. Re-adding a player already in the match
// is a no-op; a third distinct player fails with ErrMatchFull. Joining does
// not start a turn for the newcomer.
func AddPlayer(m *game.MatchState, playerID, name string, seed int64) error {
	if _, ok := m.Players[playerID]; ok {
		return nil
	}
	if len(m.Players) >= 2 {
		return ErrMatchFull
	}
	m.Players[playerID] = NewPlayerState(playerID, name, seed)
	m.TurnOrder = append(m.TurnOrder, playerID)
	logEvent(m, fmt.Sprintf("%s joined the match.", name))
	return nil
}

// StartTurn makes playerID the active player and runs their start-of-turn
// upkeep: reset the turn allowances, grant income, tick the board, draw up
// to the hand cap, clamp.
func StartTurn(m *game.MatchState, playerID string) {
	player := m.Players[playerID]
	if player == nil {
		return
	}
	opponent := m.Opponent(playerID)

	m.ActivePlayerID = playerID
	m.TurnState = game.TurnState{}
	player.Stats.Cash += game.CashGainPerTurn
	tickBoard(player, opponent)
	drawToHandCap(player)
	clampPlayer(player)
	logEvent(m, fmt.Sprintf("It is now %s's turn.", player.Name))
}

// EndTurn passes the turn to the next player in turn order, wrapping around,
// and runs their start-of-turn upkeep. There is no separate end-of-turn
// cleanup.
func EndTurn(m *game.MatchState, playerID string) error {
	if err := ensureActivePlayer(m, playerID); err != nil {
		return err
	}
	current := 0
	for i, id := range m.TurnOrder {
		if id == playerID {
			current = i
			break
		}
	}
	next := m.TurnOrder[(current+1)%len(m.TurnOrder)]
	StartTurn(m, next)
	return nil
}

func ensureActivePlayer(m *game.MatchState, playerID string) error {
	if m.ActivePlayerID != playerID {
		return ErrNotYourTurn
	}
	return nil
}

// drawCards draws from the front of the deck, reshuffling the discard pile
// back in when the deck runs dry. The draw stops short if both piles are
// empty.
func drawCards(p *game.PlayerState, count int) {
	for i := 0; i < count; i++ {
		if len(p.Deck) == 0 {
			reshuffleDiscard(p)
			if len(p.Deck) == 0 {
				break
			}
		}
		p.Hand = append(p.Hand, p.Deck[0])
		p.Deck = p.Deck[1:]
	}
}

func drawToHandCap(p *game.PlayerState) {
	if len(p.Hand) >= game.HandSize {
		return
	}
	drawCards(p, game.HandSize-len(p.Hand))
}

// reshuffleDiscard moves the discard pile back into the deck under a seed
// derived from the player's deck seed and reshuffle count, so full-match
// replays stay reproducible.
func reshuffleDiscard(p *game.PlayerState) {
	if len(p.Discard) == 0 {
		return
	}
	p.Reshuffles++
	p.Deck = p.Discard
	p.Discard = []game.CardInstance{}
	shuffleInstances(p.Deck, p.DeckSeed+int64(p.Reshuffles))
}
