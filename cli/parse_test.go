package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unoterm/uno/deck"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		input    string
		expected deck.Color
		ok       bool
	}{
		{"red", deck.Red, true},
		{"Blue", deck.Blue, true},
		{"GREEN", deck.Green, true},
		{" yellow ", deck.Yellow, true},
		{"purple", deck.NoColor, false},
		{"", deck.NoColor, false},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			color, ok := ParseColor(c.input)
			require.Equal(t, c.ok, ok)
			assert.Equal(t, c.expected, color)
		})
	}
}

func TestParseCardType(t *testing.T) {
	cases := []struct {
		input    string
		expected deck.CardType
		ok       bool
	}{
		{"0", deck.Zero, true},
		{"5", deck.Five, true},
		{"9", deck.Nine, true},
		{"skip", deck.Skip, true},
		{"Reverse", deck.Reverse, true},
		{"draw two", deck.DrawTwo, true},
		{"Draw  Two", deck.DrawTwo, true},
		{"wild", deck.Wild, true},
		{"wild draw four", deck.WildDrawFour, true},
		{"10", 0, false},
		{"-1", 0, false},
		{"banana", 0, false},
		{"", 0, false},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			cardType, ok := ParseCardType(c.input)
			require.Equal(t, c.ok, ok)
			if c.ok {
				assert.Equal(t, c.expected, cardType)
			}
		})
	}
}

func TestParseChoice(t *testing.T) {
	cases := []struct {
		name         string
		input        string
		expectedCol  deck.Color
		expectedType deck.CardType
		ok           bool
	}{
		{"number card", "blue 5", deck.Blue, deck.Five, true},
		{"action card", "red skip", deck.Red, deck.Skip, true},
		{"two-word action card", "Green Draw Two", deck.Green, deck.DrawTwo, true},
		{"bare wild", "wild", deck.NoColor, deck.Wild, true},
		{"wild draw four", "wild draw four", deck.NoColor, deck.WildDrawFour, true},
		{"bare number has no color", "5", deck.NoColor, deck.Five, true},
		{"unknown type", "blue banana", deck.NoColor, 0, false},
		{"empty", "", deck.NoColor, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			color, cardType, ok := ParseChoice(c.input)
			require.Equal(t, c.ok, ok)
			if c.ok {
				assert.Equal(t, c.expectedCol, color)
				assert.Equal(t, c.expectedType, cardType)
			}
		})
	}
}

func TestIsDrawRequest(t *testing.T) {
	assert.True(t, isDrawRequest("draw"))
	assert.True(t, isDrawRequest("Draw"))
	assert.True(t, isDrawRequest("draw card"))
	assert.False(t, isDrawRequest("draw two"))
	assert.False(t, isDrawRequest(""))
}
