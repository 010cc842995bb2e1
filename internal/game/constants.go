package game

// Rule constants. These are part of the game's contract and are exercised by
// the engine tests; changing any of them changes match outcomes.
const (
	HandSize        = 5
	DeckSize        = 30
	CardsPerTurn    = 2
	CashGainPerTurn = 5

	VictoryHappiness    = 120
	DominationStability = 0
	StabilityCeiling    = 150

	EventLogCap = 40
)

// StartingStats is the stat line every player begins with.
var StartingStats = PlayerStats{
	GDP:       10,
	Stability: 100,
	Cash:      10,
	Happiness: 10,
}
