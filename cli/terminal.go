package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/unoterm/uno"
	"github.com/unoterm/uno/deck"
	"github.com/unoterm/uno/players"
)

// Terminal connects the game to the players sharing a single terminal.
//
// It implements the engine's Input and Display interfaces. All parse and
// legality failures are recovered here by re-prompting; the engine only
// ever sees fully validated actions.
type Terminal struct {
	line *liner.State
	out  io.Writer
}

// NewTerminal takes over the terminal for prompting. Ctrl-C aborts the
// pending prompt with liner.ErrPromptAborted.
func NewTerminal() *Terminal {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &Terminal{line: line, out: os.Stdout}
}

// Close restores the terminal state. Call it before exiting.
func (t *Terminal) Close() error {
	return t.line.Close()
}

// GetAction shows the player their hand and prompts until they enter
// either a draw request or a card they hold that is legal against the
// reference card. A returned play has already been removed from the hand.
func (t *Terminal) GetAction(p *players.Player, reference deck.Card) (uno.Action, error) {
	fmt.Fprintln(t.out, "Your cards:")
	fmt.Fprintln(t.out, t.RenderHand(p.SortedHand()))

	for {
		fmt.Fprintln(t.out, "If you would like to draw a card, enter 'draw'.")
		fmt.Fprintln(t.out, "If you would like to play a card, enter the color and value as shown above.")
		choice, err := t.line.Prompt("What card would you like to play? => ")
		if err != nil {
			return uno.Action{}, err
		}
		choice = strings.TrimSpace(choice)

		if isDrawRequest(choice) {
			return uno.Action{Kind: uno.ActionDraw}, nil
		}

		color, cardType, ok := ParseChoice(choice)
		if !ok {
			fmt.Fprintln(t.out, "Unable to parse choice, try again.")
			continue
		}

		if _, held := p.FindCard(color, cardType); !held {
			fmt.Fprintln(t.out, "You don't have that card.")
			continue
		}

		if !deck.ValidPlay(reference, deck.NewCard(color, cardType)) {
			fmt.Fprintln(t.out, "You can't play that card.")
			continue
		}

		card, _ := p.PlayCard(color, cardType)
		return uno.Action{Kind: uno.ActionPlay, Card: card}, nil
	}
}

// GetWildColor prompts until the player supplies one of the four colors
// for the wild they just played.
func (t *Terminal) GetWildColor(card deck.Card) (deck.Color, error) {
	for {
		answer, err := t.line.Prompt(fmt.Sprintf("What color should the %s become? ", t.RenderCard(card)))
		if err != nil {
			return deck.NoColor, err
		}

		if color, ok := ParseColor(answer); ok {
			return color, nil
		}

		names := []string{}
		for _, c := range deck.Colors() {
			names = append(names, c.String())
		}
		fmt.Fprintf(t.out, "Please pick one of the following: %s\n", strings.Join(names, ", "))
	}
}

// AwaitTurnEnd holds the screen until the player hands the terminal over.
func (t *Terminal) AwaitTurnEnd(p *players.Player) error {
	_, err := t.line.Prompt("(Press enter to end your turn) ")
	if err == io.EOF {
		return nil
	}
	return err
}
