package players

import (
	"sort"

	uuid "github.com/satori/go.uuid"

	"github.com/unoterm/uno/deck"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// Player represents a player in the game.
//
// Players have a name and a hand of cards, which starts out empty. Cards
// are dealt to them when the game starts.
type Player struct {
	ID   string
	Name string
	Hand []deck.Card
}

// NewPlayer constructs a new player
func NewPlayer(name string) *Player {
	return &Player{ID: NewID(), Name: name}
}

// FindCard locates a card of the given color and type in the player's
// hand without removing it.
func (p *Player) FindCard(color deck.Color, cardType deck.CardType) (deck.Card, bool) {
	idx := p.indexOf(color, cardType)
	if idx < 0 {
		return deck.Card{}, false
	}
	return p.Hand[idx], true
}

// PlayCard removes and returns a card of the given color and type from
// the player's hand. The hand is untouched if the card is not held.
func (p *Player) PlayCard(color deck.Color, cardType deck.CardType) (deck.Card, bool) {
	idx := p.indexOf(color, cardType)
	if idx < 0 {
		return deck.Card{}, false
	}
	card := p.Hand[idx]
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	return card, true
}

// TakeCards adds the given cards to the player's hand.
func (p *Player) TakeCards(cards ...deck.Card) {
	p.Hand = append(p.Hand, cards...)
}

// TakeFromPile takes qty cards from the top of the pile and adds them to
// the player's hand. The hand is untouched if the pile cannot supply qty
// cards.
func (p *Player) TakeFromPile(pile *deck.Pile, qty int) ([]deck.Card, error) {
	cards, err := pile.Take(qty)
	if err != nil {
		return nil, err
	}
	p.TakeCards(cards...)
	return cards, nil
}

// HasNoCards reports whether the player's hand is empty.
func (p *Player) HasNoCards() bool {
	return len(p.Hand) == 0
}

// HasValidPlay reports whether any held card may be played on the
// reference card.
func (p *Player) HasValidPlay(reference deck.Card) bool {
	for _, c := range p.Hand {
		if deck.ValidPlay(reference, c) {
			return true
		}
	}
	return false
}

// SortedHand returns a copy of the hand ordered by color, then by value
// within each color.
func (p *Player) SortedHand() []deck.Card {
	sorted := make([]deck.Card, len(p.Hand))
	copy(sorted, p.Hand)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Type < sorted[j].Type
	})
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Color < sorted[j].Color
	})
	return sorted
}

func (p *Player) indexOf(color deck.Color, cardType deck.CardType) int {
	for i, c := range p.Hand {
		if c.Color == color && c.Type == cardType {
			return i
		}
	}
	return -1
}

// Players represents all players in the game
type Players []*Player

// NewPlayers returns a set of Players
func NewPlayers(p ...*Player) Players {
	return Players(p)
}

// Find finds a player by id
func (ps Players) Find(id string) (*Player, bool) {
	for _, p := range ps {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ResetHands empties every player's hand ahead of a fresh deal.
func (ps Players) ResetHands() {
	for _, p := range ps {
		p.Hand = nil
	}
}
