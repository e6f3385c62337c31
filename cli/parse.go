package cli

import (
	"strconv"
	"strings"

	"github.com/unoterm/uno/deck"
)

var colorsByName = map[string]deck.Color{
	"red":    deck.Red,
	"blue":   deck.Blue,
	"green":  deck.Green,
	"yellow": deck.Yellow,
}

var typesByName = map[string]deck.CardType{
	"skip":           deck.Skip,
	"reverse":        deck.Reverse,
	"draw two":       deck.DrawTwo,
	"wild":           deck.Wild,
	"wild draw four": deck.WildDrawFour,
}

// ParseColor parses free text to a card color.
func ParseColor(input string) (deck.Color, bool) {
	color, ok := colorsByName[strings.ToLower(strings.TrimSpace(input))]
	return color, ok
}

// ParseCardType parses free text to a card type: a bare number for the
// numbered cards, or the card name as printed ("draw two", "wild").
func ParseCardType(input string) (deck.CardType, bool) {
	normalized := strings.ToLower(strings.Join(strings.Fields(input), " "))

	if n, err := strconv.Atoi(normalized); err == nil {
		cardType := deck.CardType(n)
		return cardType, cardType.IsNumber()
	}

	cardType, ok := typesByName[normalized]
	return cardType, ok
}

// ParseChoice splits a free-text choice like "blue draw two" into its
// color and type. Wilds carry no leading color word and parse with
// NoColor, matching how they sit in a hand before being played.
func ParseChoice(input string) (deck.Color, deck.CardType, bool) {
	words := strings.Fields(input)
	if len(words) == 0 {
		return deck.NoColor, 0, false
	}

	color, hasColor := ParseColor(words[0])
	typeWords := words
	if hasColor {
		typeWords = words[1:]
	}

	cardType, ok := ParseCardType(strings.Join(typeWords, " "))
	if !ok {
		return deck.NoColor, 0, false
	}
	if !hasColor {
		color = deck.NoColor
	}
	return color, cardType, true
}

func isDrawRequest(choice string) bool {
	switch strings.ToLower(choice) {
	case "draw", "draw card":
		return true
	}
	return false
}
