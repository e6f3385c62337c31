package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unoterm/uno/players"
)

// Officially, UNO is for 2 to 10 players, so anything outside that range
// is rejected at setup.
const (
	minPlayers = 2
	maxPlayers = 10
)

// GetPlayers prompts for the number of participants and a name for each,
// re-prompting until the count is in range.
func (t *Terminal) GetPlayers() (players.Players, error) {
	count := 0
	for count == 0 {
		answer, err := t.line.Prompt(fmt.Sprintf("How many are playing? [%d-%d] ", minPlayers, maxPlayers))
		if err != nil {
			return nil, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil || n < minPlayers || n > maxPlayers {
			fmt.Fprintf(t.out, "You must pick a number between %d and %d.\n", minPlayers, maxPlayers)
			continue
		}
		count = n
	}

	ps := players.Players{}
	for i := 0; i < count; i++ {
		name, err := t.line.Prompt(fmt.Sprintf("What is the %s player's name? ", ordinal(i+1)))
		if err != nil {
			return nil, err
		}
		ps = append(ps, players.NewPlayer(strings.TrimSpace(name)))
	}
	return ps, nil
}

// Confirm asks a yes/no question. Anything other than a yes counts as no.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	answer, err := t.line.Prompt(strings.TrimSpace(prompt) + " [y/n] ")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// ordinal converts a number to its ordinal form: 1 becomes 1st, 3
// becomes 3rd, 14 becomes 14th.
func ordinal(n int) string {
	suffix := "th"
	switch n % 10 {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
