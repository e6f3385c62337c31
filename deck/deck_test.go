package deck

import (
	"testing"

	utils "github.com/unoterm/uno/internal"
)

var fullDeckCount = 108

func TestDeck(t *testing.T) {
	deckOfCards := New()

	if len(deckOfCards) != fullDeckCount {
		t.Errorf("expected %d cards, got %d", fullDeckCount, len(deckOfCards))
	}
}

func TestDeckComposition(t *testing.T) {
	counts := cardCounts(New())

	for _, color := range Colors() {
		utils.AssertEqual(t, counts[NewCard(color, Zero)], 1)

		for cardType := One; cardType <= DrawTwo; cardType++ {
			if got := counts[NewCard(color, cardType)]; got != 2 {
				t.Errorf("expected 2 copies of %s, got %d", NewCard(color, cardType), got)
			}
		}
	}

	utils.AssertEqual(t, counts[NewCard(NoColor, Wild)], 4)
	utils.AssertEqual(t, counts[NewCard(NoColor, WildDrawFour)], 4)
}

func TestShufflePreservesCards(t *testing.T) {
	deckOfCards := New()
	before := cardCounts(deckOfCards)

	deckOfCards.Shuffle()

	utils.AssertEqual(t, len(deckOfCards), fullDeckCount)
	utils.AssertDeepEqual(t, cardCounts(deckOfCards), before)
}

func TestDeal(t *testing.T) {
	deckOfCards := New()
	topCard := deckOfCards[len(deckOfCards)-1]

	dealt := deckOfCards.Deal(3)

	utils.AssertEqual(t, len(dealt), 3)
	utils.AssertEqual(t, len(deckOfCards), fullDeckCount-3)
	utils.AssertEqual(t, dealt[len(dealt)-1], topCard)

	t.Run("dealing more than the deck holds", func(t *testing.T) {
		smallDeck := Deck{NewCard(Red, One)}
		utils.AssertEqual(t, len(smallDeck.Deal(2)), 0)
	})
}

func cardCounts(cards []Card) map[Card]int {
	counts := map[Card]int{}
	for _, c := range cards {
		counts[c]++
	}
	return counts
}
