package uno

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/unoterm/uno/deck"
	"github.com/unoterm/uno/players"
)

var (
	ErrTooFewPlayers  = errors.New("minimum of 2 players required")
	ErrTooManyPlayers = errors.New("maximum of 10 players allowed")
	ErrNoAdapter      = errors.New("game needs an input and a display adapter")
	ErrNoStartingCard = errors.New("deck has no number card left to start the discard pile")
)

const (
	minPlayers = 2
	maxPlayers = 10

	// DefaultHandSize is the number of cards dealt to each player.
	DefaultHandSize = 7
)

// GameOpts tweaks a new game. The zero value gives a standard game with a
// freshly shuffled deck.
type GameOpts struct {
	// HandSize is the initial deal per player; DefaultHandSize if zero.
	HandSize int
	// Deck fixes the deck order instead of shuffling a new one.
	Deck deck.Deck
	// Logger receives debug-level game diagnostics.
	Logger *logrus.Logger
}

// Game represents a single game of UNO.
//
// A game owns the players' turn order and both piles. Create one per
// round with NewGame and call Play, which returns the winning player;
// the instance is not reusable afterwards.
type Game struct {
	players     players.Players
	drawPile    deck.Pile
	discardPile deck.Pile
	cycle       *Cycle[*players.Player]
	input       Input
	display     Display
	log         *logrus.Logger
}

// NewGame deals a new game for the given players. The deck is dealt one
// card per player at a time; the starting discard is the first number
// card off the top of the remainder, and anything set aside on the way
// goes back to the bottom of the draw pile.
func NewGame(ps players.Players, input Input, display Display, opts GameOpts) (*Game, error) {
	if len(ps) < minPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(ps) > maxPlayers {
		return nil, ErrTooManyPlayers
	}
	if input == nil || display == nil {
		return nil, ErrNoAdapter
	}

	handSize := opts.HandSize
	if handSize == 0 {
		handSize = DefaultHandSize
	}
	log := opts.Logger
	if log == nil {
		log = logrus.New()
	}

	d := opts.Deck
	if d == nil {
		d = deck.New()
		d.Shuffle()
	}

	ps.ResetHands()
	for i := 0; i < handSize; i++ {
		for _, p := range ps {
			p.TakeCards(d.Deal(1)...)
		}
	}

	// The starting discard must be a number card so that no special
	// effect fires before the first turn. A standard deck always has a
	// number card left at this point (at most 70 of the 76 are dealt),
	// but a caller-supplied deck may not.
	setAside := deck.Deck{}
	var first deck.Card
	for {
		dealt := d.Deal(1)
		if len(dealt) == 0 {
			return nil, ErrNoStartingCard
		}
		first = dealt[0]
		if first.Type.IsNumber() {
			break
		}
		// each set-aside card goes to the very bottom, keeping the
		// group in its original top-to-bottom order
		setAside = append(deck.Deck{first}, setAside...)
	}
	d = append(setAside, d...)

	log.WithFields(logrus.Fields{
		"players":   len(ps),
		"hand_size": handSize,
		"first":     first.String(),
	}).Debug("game dealt")

	return &Game{
		players:     ps,
		drawPile:    deck.Pile(d),
		discardPile: deck.NewPile(first),
		cycle:       NewCycle(ps),
		input:       input,
		display:     display,
		log:         log,
	}, nil
}

// Play runs the game to completion and returns the winning player.
func (g *Game) Play() (*players.Player, error) {
	for {
		winner, err := g.playTurn()
		if err != nil {
			return nil, err
		}
		if winner != nil {
			g.log.WithField("winner", winner.Name).Debug("game over")
			return winner, nil
		}
	}
}

// playTurn runs a single turn for the player at the current cycle
// position and advances the cycle. A non-nil player return means the
// game is over.
func (g *Game) playTurn() (*players.Player, error) {
	player := g.cycle.Current()
	reference, err := g.discardPile.Top()
	if err != nil {
		return nil, fmt.Errorf("discard pile unexpectedly empty: %w", err)
	}

	g.display.Clear()
	g.display.Announce("It's %s's turn!", player.Name)
	g.display.Announce("The current card is a %s.", g.display.RenderCard(reference))

	// force a draw if the player has no valid cards
	if !player.HasValidPlay(reference) {
		drawn, err := g.draw(player, 1)
		if err != nil {
			return nil, err
		}
		g.display.Announce("You had no valid cards, so you drew a %s.", g.display.RenderCard(drawn[0]))
	}

	skip := false
	// the drawn card may have opened up a play
	if player.HasValidPlay(reference) {
		action, err := g.input.GetAction(player, reference)
		if err != nil {
			return nil, err
		}

		// The game ends the moment a hand empties. The final card's side
		// effects never fire and it never reaches the discard pile.
		if player.HasNoCards() {
			return player, nil
		}

		switch action.Kind {
		case ActionDraw:
			drawn, err := g.draw(player, 1)
			if err != nil {
				return nil, err
			}
			g.display.Announce("You drew a %s.", g.display.RenderCard(drawn[0]))
		case ActionPlay:
			if skip, err = g.resolvePlay(player, action.Card); err != nil {
				return nil, err
			}
		}
	} else {
		g.log.WithField("player", player.Name).Debug("no valid play after forced draw")
	}

	if err := g.input.AwaitTurnEnd(player); err != nil {
		return nil, err
	}
	g.cycle.Advance(1, skip)
	return nil, nil
}

// resolvePlay applies a played card's side effects and commits it to the
// discard pile. It reports whether the next player's turn is skipped.
func (g *Game) resolvePlay(player *players.Player, card deck.Card) (bool, error) {
	skip := false
	next := g.cycle.PeekNext(1)

	switch {
	case card.Type == deck.Reverse:
		g.cycle.Reverse()
		g.display.Announce("%s played a reverse!", player.Name)
	case card.Type.DrawAmount() > 0:
		amount := card.Type.DrawAmount()
		g.display.Announce("%s draws %d cards!", next.Name, amount)
		if _, err := g.draw(next, amount); err != nil {
			return false, err
		}
	case card.Type == deck.Skip:
		g.display.Announce("%s was skipped!", next.Name)
		skip = true
	}

	// a wild must be given a color before it hits the discard pile
	if card.Type.IsWild() {
		color, err := g.input.GetWildColor(card)
		if err != nil {
			return false, err
		}
		card.Color = color
	}

	g.discardPile.Push(card)
	g.log.WithFields(logrus.Fields{
		"player": player.Name,
		"card":   card.String(),
	}).Debug("card played")
	return skip, nil
}

// draw moves qty cards from the draw pile into p's hand, replenishing
// the draw pile from the discard pile when it runs low.
func (g *Game) draw(p *players.Player, qty int) ([]deck.Card, error) {
	if g.drawPile.Size() < qty {
		g.replenish()
	}
	cards, err := p.TakeFromPile(&g.drawPile, qty)
	if err != nil {
		return nil, fmt.Errorf("draw %d for %s: %w", qty, p.Name, err)
	}
	return cards, nil
}

// replenish shuffles every discard card except the top one back under
// the draw pile. Wilds give their color back on the way: a wild is only
// ever colored at the moment it is played.
func (g *Game) replenish() {
	if g.discardPile.Size() < 2 {
		return
	}
	top, _ := g.discardPile.Take(1)
	spare, _ := g.discardPile.Take(g.discardPile.Size())

	reshuffled := deck.Deck(spare)
	for i, c := range reshuffled {
		if c.Type.IsWild() {
			reshuffled[i].Color = deck.NoColor
		}
	}
	reshuffled.Shuffle()

	g.drawPile = append(deck.Pile(reshuffled), g.drawPile...)
	g.discardPile = deck.NewPile(top[0])

	g.log.WithField("cards", len(spare)).Debug("reshuffled discard pile into draw pile")
}
