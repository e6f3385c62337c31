package deck

import "errors"

// ErrEmptyPile is returned when a pile cannot supply the requested cards.
var ErrEmptyPile = errors.New("not enough cards in pile")

// Pile is an ordered stack of cards. Two exist per game: the draw pile
// and the discard pile. The top of the pile is the end of the slice.
type Pile []Card

// NewPile constructs a pile seeded with the given cards, bottom first.
func NewPile(cards ...Card) Pile {
	return Pile(cards)
}

// Push puts a card on top of the pile.
func (p *Pile) Push(c Card) {
	*p = append(*p, c)
}

// Take removes and returns the top n cards, topmost first. The pile is
// untouched if it holds fewer than n cards.
func (p *Pile) Take(n int) ([]Card, error) {
	if n > len(*p) {
		return nil, ErrEmptyPile
	}
	taken := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		top := len(*p) - 1
		taken = append(taken, (*p)[top])
		*p = (*p)[:top]
	}
	return taken, nil
}

// Top returns the top card without removing it.
func (p Pile) Top() (Card, error) {
	if len(p) == 0 {
		return Card{}, ErrEmptyPile
	}
	return p[len(p)-1], nil
}

// Size returns the number of cards in the pile.
func (p Pile) Size() int {
	return len(p)
}
