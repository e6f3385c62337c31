package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/joeshaw/envdecode"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/unoterm/uno"
	"github.com/unoterm/uno/cli"
	"github.com/unoterm/uno/players"
)

type config struct {
	HandSize int  `env:"UNO_HAND_SIZE,default=7"`
	NoColor  bool `env:"UNO_NO_COLOR,default=false"`
	Debug    bool `env:"UNO_DEBUG,default=false"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		logrus.Fatalf("could not read configuration: %v", err)
	}

	log := logrus.New()
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	term := cli.NewTerminal()

	err := run(term, cfg, log)
	term.Close()
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println("\nBye!")
			return
		}
		log.Fatal(err)
	}
}

// run owns the outer session: collect players, play a game, announce the
// winner, offer another round.
func run(term *cli.Terminal, cfg config, log *logrus.Logger) error {
	var ps players.Players

	for {
		if ps == nil {
			collected, err := term.GetPlayers()
			if err != nil {
				return err
			}
			ps = collected
		} else {
			same, err := term.Confirm("Use the same players?")
			if err != nil {
				return err
			}
			if !same {
				collected, err := term.GetPlayers()
				if err != nil {
					return err
				}
				ps = collected
			}
		}

		game, err := uno.NewGame(ps, term, term, uno.GameOpts{HandSize: cfg.HandSize, Logger: log})
		if err != nil {
			return err
		}

		winner, err := game.Play()
		if err != nil {
			return err
		}
		term.Announce("\n\n%s\n\n", cli.WinnerBanner(winner.Name))

		again, err := term.Confirm("Play again?")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}
