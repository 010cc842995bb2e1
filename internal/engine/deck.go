package engine

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/GeraldMcToaster/EcoWars/internal/game"
)

// BuildDeck builds a deck of exactly targetSize instances by repeating the
// catalog as many times as needed, truncating, and shuffling with a
// Fisher-Yates permutation driven by the given seed. The definition order is
// bit-for-bit reproducible for a given (catalog, size, seed); instance ids
// are freshly minted per copy.
func BuildDeck(catalog []game.CardDefinition, targetSize int, seed int64) []game.CardInstance {
	if targetSize <= 0 || len(catalog) == 0 {
		return nil
	}

	pool := make([]game.CardDefinition, 0, targetSize)
	for len(pool) < targetSize {
		remaining := targetSize - len(pool)
		if remaining >= len(catalog) {
			pool = append(pool, catalog...)
		} else {
			pool = append(pool, catalog[:remaining]...)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	for i := len(pool) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	deck := make([]game.CardInstance, len(pool))
	for i, def := range pool {
		deck[i] = mintInstance(def)
	}
	return deck
}

// GenerateDeck builds a standard starter deck from the full card library.
// Exposed so callers (and tests) can set up decks deterministically.
func GenerateDeck(seed int64) []game.CardInstance {
	return BuildDeck(game.CardLibrary, game.DeckSize, seed)
}

func mintInstance(def game.CardDefinition) game.CardInstance {
	return game.CardInstance{CardDefinition: def, InstanceID: uuid.NewString()}
}

// duplicateInstance copies a card under a fresh instance id, used when a
// played card is pinned to a board slot for display while the original moves
// to the discard pile. Instance ids stay unique across a player's zones.
func duplicateInstance(card game.CardInstance) game.CardInstance {
	card.InstanceID = uuid.NewString()
	return card
}

func shuffleInstances(cards []game.CardInstance, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
