package deck

import (
	"math/rand"
	"time"
)

// Deck represents a full set of 108 UNO cards.
//
// A deck is built once per game, shuffled, then consumed destructively:
// dealt into hands, one card onto the discard pile and the remainder into
// the draw pile.
type Deck []Card

// New creates the canonical deck: for each color one Zero, two each of
// One through Nine, Skip, Reverse and Draw Two, plus four Wilds and four
// Wild Draw Fours.
func New() Deck {
	cards := Deck{}
	for _, color := range Colors() {
		for cardType := Zero; cardType <= DrawTwo; cardType++ {
			qty := 2
			if cardType == Zero {
				qty = 1
			}
			for i := 0; i < qty; i++ {
				cards = append(cards, NewCard(color, cardType))
			}
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, NewCard(NoColor, Wild))
		cards = append(cards, NewCard(NoColor, WildDrawFour))
	}
	return cards
}

// Shuffle shuffles the deck of cards
func (d *Deck) Shuffle() {
	rand.Seed(time.Now().UnixNano())
	actualDeck := *d
	for i := len(actualDeck) - 1; i > 0; i-- {
		randomNumber := rand.Intn(i + 1)
		actualDeck[i], actualDeck[randomNumber] = actualDeck[randomNumber], actualDeck[i]
	}
}

// Deal deals n cards from the top of the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := (*d)[startingIndex:numCardsInDeck]
	*d = (*d)[:startingIndex]
	return subSlice
}
