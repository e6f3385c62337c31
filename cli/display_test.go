package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/unoterm/uno/deck"
)

func plainTerminal() *Terminal {
	return &Terminal{out: &bytes.Buffer{}}
}

func TestRenderCard(t *testing.T) {
	// keep escape codes out of the assertions
	previous := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = previous }()

	term := plainTerminal()

	assert.Equal(t, "Blue 5", term.RenderCard(deck.NewCard(deck.Blue, deck.Five)))
	assert.Equal(t, "Wild", term.RenderCard(deck.NewCard(deck.NoColor, deck.Wild)))
	assert.Equal(t, "Wild (Green)", term.RenderCard(deck.NewCard(deck.Green, deck.Wild)))
}

func TestRenderHand(t *testing.T) {
	previous := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = previous }()

	term := plainTerminal()
	rendered := term.RenderHand([]deck.Card{
		deck.NewCard(deck.Red, deck.Four),
		deck.NewCard(deck.Blue, deck.Nine),
	})

	assert.Contains(t, rendered, "Red 4")
	assert.Contains(t, rendered, "Blue 9")
}

func TestWinnerBanner(t *testing.T) {
	banner := WinnerBanner("Harry")
	lines := strings.Split(banner, "\n")

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Harry is the winner!")
	assert.Equal(t, strings.Repeat("*", len(lines[1])), lines[0])
	assert.Equal(t, lines[0], lines[2])
}
