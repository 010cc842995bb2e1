package game

// CardLibrary is the static card catalog. Decks are built by repeating this
// list; the effect table in the engine must cover every slug here, which the
// engine tests assert.
var CardLibrary = []CardDefinition{
	{
		Slug:     BuildFactory,
		Name:     "Build Factory",
		Category: CategoryIndustry,
		Cost:     6,
		Summary:  "+10 GDP each turn",
		Concept:  "Heavy industry anchors the economy with steady output.",
	},
	{
		Slug:     TaxCut,
		Name:     "Tax Cut",
		Category: CategoryPolicy,
		Cost:     4,
		Summary:  "+3 Happiness per turn, -2 Cash next turn",
		Concept:  "Voters love it now; the treasury feels it next quarter.",
	},
	{
		Slug:     TradeDeal,
		Name:     "Trade Deal",
		Category: CategoryEvent,
		Cost:     3,
		Summary:  "+5 GDP and +5 Cash immediately",
		Concept:  "New export markets open overnight.",
	},
	{
		Slug:     InflationSpike,
		Name:     "Inflation Spike",
		Category: CategoryEvent,
		Cost:     5,
		Summary:  "-10 opponent Stability",
		Concept:  "Prices surge across your rival's markets.",
	},
	{
		Slug:     GreenEnergy,
		Name:     "Green Energy",
		Category: CategoryIndustry,
		Cost:     5,
		Summary:  "+8 GDP and +3 Happiness immediately",
		Concept:  "Clean power wins investment and public favor.",
	},
	{
		Slug:     HealthProgram,
		Name:     "Health Program",
		Category: CategorySocial,
		Cost:     4,
		Summary:  "+10 Stability immediately",
		Concept:  "A healthier nation is a calmer nation.",
	},
	{
		Slug:     TechnologyBoom,
		Name:     "Technology Boom",
		Category: CategoryIndustry,
		Cost:     8,
		Summary:  "+12 GDP and +2 Happiness per turn",
		Concept:  "A startup cluster becomes a global tech hub.",
	},
	{
		Slug:     Recession,
		Name:     "Recession",
		Category: CategoryEvent,
		Cost:     2,
		Summary:  "-5 GDP to both nations, +3 Happiness to you",
		Concept:  "Everyone hurts, but your people pull together.",
	},
	{
		Slug:     TourismBoost,
		Name:     "Tourism Boost",
		Category: CategorySocial,
		Cost:     3,
		Summary:  "+6 Happiness immediately",
		Concept:  "A viral campaign fills the beaches.",
	},
	{
		Slug:     PriceControls,
		Name:     "Price Controls",
		Category: CategoryPolicy,
		Cost:     5,
		Summary:  "Opponent -3 GDP per turn for 2 turns",
		Concept:  "Your rival's markets seize up under the caps.",
	},
	{
		Slug:     NaturalDisaster,
		Name:     "Natural Disaster",
		Category: CategoryEvent,
		Cost:     7,
		Summary:  "-15 opponent Stability",
		Concept:  "Floods and quakes shake your rival's grip.",
	},
	{
		Slug:     EducationReform,
		Name:     "Education Reform",
		Category: CategoryPolicy,
		Cost:     5,
		Summary:  "+2 GDP and +2 Happiness per turn",
		Concept:  "Better schools compound quietly forever.",
	},
	{
		Slug:     SmallBusinessGrant,
		Name:     "Small Business Grant",
		Category: CategoryIndustry,
		Cost:     4,
		Summary:  "+5 GDP each turn",
		Concept:  "Main street storefronts light up one by one.",
	},
	{
		Slug:     Strike,
		Name:     "Strike",
		Category: CategoryEvent,
		Cost:     3,
		Summary:  "-5 opponent GDP immediately",
		Concept:  "Union action halts your rival's factories.",
	},
	{
		Slug:     HappinessFestival,
		Name:     "Happiness Festival",
		Category: CategorySocial,
		Cost:     6,
		Summary:  "+8 Happiness and +5 Stability immediately",
		Concept:  "A week of music, food and fireworks.",
	},
}

// CardBySlug looks up a catalog definition by slug.
func CardBySlug(slug CardSlug) (CardDefinition, bool) {
	for _, def := range CardLibrary {
		if def.Slug == slug {
			return def, true
		}
	}
	return CardDefinition{}, false
}
