package deck

import "fmt"

// Color represents the color of a card.
//
// Wilds have no color until they are played, when the player decides what
// color they become.
type Color int

const (
	NoColor Color = iota
	Red
	Blue
	Green
	Yellow
)

var colorNames = []string{"", "Red", "Blue", "Green", "Yellow"}

func (c Color) String() string {
	if c < Red || c > Yellow {
		return "Unknown"
	}
	return colorNames[c]
}

// Colors returns the four playable colors.
func Colors() []Color {
	return []Color{Red, Blue, Green, Yellow}
}

// CardType represents the face value of a card.
//
// The numbered types have values matching their number.
type CardType int

const (
	Zero CardType = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	DrawTwo
	WildDrawFour
	Wild
)

var typeNames = map[CardType]string{
	Skip:         "Skip",
	Reverse:      "Reverse",
	DrawTwo:      "Draw Two",
	WildDrawFour: "Wild Draw Four",
	Wild:         "Wild",
}

func (t CardType) String() string {
	if t.IsNumber() {
		return fmt.Sprintf("%d", int(t))
	}
	return typeNames[t]
}

// IsWild reports whether the type is one of the two wild types.
func (t CardType) IsWild() bool {
	return t == Wild || t == WildDrawFour
}

// IsNumber reports whether the type is one of the ten numbered values.
func (t CardType) IsNumber() bool {
	return t >= Zero && t <= Nine
}

// DrawAmount returns the number of cards this type makes the next player
// draw.
func (t CardType) DrawAmount() int {
	switch t {
	case DrawTwo:
		return 2
	case WildDrawFour:
		return 4
	}
	return 0
}

// Card represents a single UNO card.
//
// The type never changes. The color is fixed at creation for every type
// except the wilds, which are created colorless and acquire their color
// at the moment they are played.
type Card struct {
	Color Color
	Type  CardType
}

// NewCard constructs a card.
func NewCard(color Color, cardType CardType) Card {
	return Card{Color: color, Type: cardType}
}

func (c Card) String() string {
	if c.Type.IsWild() {
		if c.Color == NoColor {
			return c.Type.String()
		}
		return fmt.Sprintf("%s (%s)", c.Type, c.Color)
	}
	return fmt.Sprintf("%s %s", c.Color, c.Type)
}
