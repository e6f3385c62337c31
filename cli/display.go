package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/unoterm/uno/deck"
)

var cardColors = map[deck.Color]*color.Color{
	deck.Red:    color.New(color.FgRed),
	deck.Blue:   color.New(color.FgBlue),
	deck.Green:  color.New(color.FgGreen),
	deck.Yellow: color.New(color.FgYellow),
}

// RenderCard returns the card's label painted in the card's color. An
// unplayed wild has no color and renders plain.
func (t *Terminal) RenderCard(c deck.Card) string {
	painter, ok := cardColors[c.Color]
	if !ok {
		return c.String()
	}
	return painter.Sprint(c.String())
}

// RenderHand lays a hand out as a bordered list.
func (t *Terminal) RenderHand(cards []deck.Card) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	for _, c := range cards {
		w.AppendRow(table.Row{t.RenderCard(c)})
	}
	return w.Render()
}

// Announce prints a game event for everyone at the table.
func (t *Terminal) Announce(format string, a ...interface{}) {
	fmt.Fprintf(t.out, format+"\n", a...)
}

// Clear wipes the terminal between turns so the next player can't see
// the previous player's hand.
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, "\033[2J\033[H")
}

// WinnerBanner frames the winner announcement in asterisks.
func WinnerBanner(name string) string {
	msg := fmt.Sprintf("  %s is the winner!  ", name)
	border := strings.Repeat("*", len(msg))
	return strings.Join([]string{border, msg, border}, "\n")
}
