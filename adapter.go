package uno

import (
	"github.com/unoterm/uno/deck"
	"github.com/unoterm/uno/players"
)

// ActionKind represents the kinds of action a player can take in their
// turn.
type ActionKind int

const (
	ActionDraw ActionKind = iota
	ActionPlay
)

// Action represents the single action a player takes in their turn.
type Action struct {
	Kind ActionKind
	Card deck.Card // set only for ActionPlay
}

// Input obtains decisions from a player in the real world.
//
// A returned ActionPlay is a guarantee that the card has already been
// checked against the reference card and removed from the player's hand;
// malformed or illegal entries are recovered behind this interface and
// never reach the engine.
type Input interface {
	GetAction(p *players.Player, reference deck.Card) (Action, error)
	GetWildColor(card deck.Card) (deck.Color, error)
	AwaitTurnEnd(p *players.Player) error
}

// Display renders game events for the players. Nothing it produces feeds
// back into game logic.
type Display interface {
	Clear()
	RenderCard(c deck.Card) string
	RenderHand(cards []deck.Card) string
	Announce(format string, a ...interface{})
}
