package game

// CardCategory classifies a card for display and board partitioning.
// Industry and policy cards install ongoing effects; event and social cards
// resolve immediately.
type CardCategory string

const (
	CategoryPolicy   CardCategory = "policy"
	CategoryIndustry CardCategory = "industry"
	CategoryEvent    CardCategory = "event"
	CategorySocial   CardCategory = "social"
)

// CardSlug is the unique identity of a card definition. Using a dedicated
// type instead of plain string makes the effect dispatch table self-documenting.
type CardSlug string

const (
	BuildFactory       CardSlug = "build-factory"
	TaxCut             CardSlug = "tax-cut"
	TradeDeal          CardSlug = "trade-deal"
	InflationSpike     CardSlug = "inflation-spike"
	GreenEnergy        CardSlug = "green-energy"
	HealthProgram      CardSlug = "health-program"
	TechnologyBoom     CardSlug = "technology-boom"
	Recession          CardSlug = "recession"
	TourismBoost       CardSlug = "tourism-boost"
	PriceControls      CardSlug = "price-controls"
	NaturalDisaster    CardSlug = "natural-disaster"
	EducationReform    CardSlug = "education-reform"
	SmallBusinessGrant CardSlug = "small-business-grant"
	Strike             CardSlug = "strike"
	HappinessFestival  CardSlug = "happiness-festival"
)

// CardDefinition is one immutable row of the card catalog.
type CardDefinition struct {
	Slug     CardSlug     `json:"slug"`
	Name     string       `json:"name"`
	Category CardCategory `json:"type"`
	Cost     int          `json:"cost"`
	Summary  string       `json:"summary"`
	Concept  string       `json:"concept"`
}

// CardInstance is a definition copied into a deck, hand, discard pile or
// board slot. Identity inside a zone is always the instance id, never the
// slug: two copies of the same definition are distinct objects.
type CardInstance struct {
	CardDefinition
	InstanceID string `json:"instance_id"`
}

// PlayerStats holds the four economy stats. All four are clamped to >= 0
// after every mutation; stability and happiness additionally have ceilings
// (StabilityCeiling, VictoryHappiness).
type PlayerStats struct {
	GDP       int `json:"gdp"`
	Stability int `json:"stability"`
	Cash      int `json:"cash"`
	Happiness int `json:"happiness"`
}

// EffectKind partitions board effects into the industries and policies
// lists. The partition is informational only; both lists tick identically.
type EffectKind string

const (
	EffectIndustry EffectKind = "industry"
	EffectPolicy   EffectKind = "policy"
)

// OngoingEffect is a recurring board effect installed by an industry or
// policy card. Zero-valued delta fields are simply inert. Effects without a
// Duration persist for the rest of the match; effects whose duration reaches
// zero are removed at the end of the tick that decremented them.
type OngoingEffect struct {
	ID       string     `json:"id"`
	Kind     EffectKind `json:"kind"`
	CardSlug CardSlug   `json:"card_slug"`

	GDPPerTurn       int `json:"gdp_per_turn,omitempty"`
	HappinessPerTurn int `json:"happiness_per_turn,omitempty"`
	StabilityPerTurn int `json:"stability_per_turn,omitempty"`

	// One-shot cash adjustment applied on the owner's next turn(s) while
	// uses remain. The result is floored at zero.
	CashNextTurnModifier int `json:"cash_next_turn_modifier,omitempty"`
	CashModifierUsesLeft int `json:"cash_modifier_uses_left,omitempty"`

	// Per-turn adjustment applied to the opponent's GDP, floored at zero.
	OpponentGDPModifier int `json:"opponent_gdp_modifier,omitempty"`

	// Remaining turns. nil means indefinite.
	Duration *int `json:"duration,omitempty"`
}

// BoardSlot pairs the display copy of the played card with the effect it
// produced.
type BoardSlot struct {
	Card   CardInstance  `json:"card"`
	Effect OngoingEffect `json:"effect"`
}

// Board holds a player's installed effects, split by kind.
type Board struct {
	Industries []BoardSlot `json:"industries"`
	Policies   []BoardSlot `json:"policies"`
}

// PlayerState is the full per-player view of a match. It is created when the
// player enters the match and lives as long as the match does.
type PlayerState struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Stats   PlayerStats    `json:"stats"`
	Hand    []CardInstance `json:"hand"`
	Deck    []CardInstance `json:"deck"`
	Discard []CardInstance `json:"discard"`
	Board   Board          `json:"board"`

	// DeckSeed is the seed the deck was built with; together with the
	// reshuffle counter it keeps discard reshuffles reproducible.
	DeckSeed   int64 `json:"deck_seed"`
	Reshuffles int   `json:"reshuffles"`
}

// GameEvent is one entry of the bounded, most-recent-first event log. It
// exists for observability and UI narration, never for gameplay logic.
type GameEvent struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// TurnState tracks the active player's per-turn allowances. It is reset
// exactly once per turn, at the start of that turn.
type TurnState struct {
	CardsPlayed int  `json:"cards_played"`
	AttackUsed  bool `json:"attack_used"`
}

// MatchState is the root of the rules-engine state. It carries no transport
// or storage concerns so the same engine can run inside an interactive
// client (prediction/practice) and the authoritative server.
type MatchState struct {
	ID             string                  `json:"id"`
	Players        map[string]*PlayerState `json:"players"`
	TurnOrder      []string                `json:"turn_order"`
	ActivePlayerID string                  `json:"active_player_id"`
	WinnerID       string                  `json:"winner_id,omitempty"`
	EventLog       []GameEvent             `json:"event_log"`
	TurnState      TurnState               `json:"turn_state"`
}

// Player returns the player with the given id, or nil.
func (m *MatchState) Player(id string) *PlayerState {
	return m.Players[id]
}

// Opponent returns the other player in turn order, or nil while the match is
// still waiting for a second player.
func (m *MatchState) Opponent(playerID string) *PlayerState {
	for _, id := range m.TurnOrder {
		if id != playerID {
			return m.Players[id]
		}
	}
	return nil
}

// Finished reports whether a winner has been recorded. Once set, the winner
// never changes.
func (m *MatchState) Finished() bool { return m.WinnerID != "" }
