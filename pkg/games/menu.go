package games

import (
	"errors"
	"strconv"

	"github.com/minhyannv/ai-playground/pkg/console"
	loggerpkg "github.com/minhyannv/ai-playground/pkg/logger"
	"github.com/minhyannv/ai-playground/pkg/prompt"
)

// ErrQuit is returned when the player types the quit keyword at the menu.
var ErrQuit = errors.New("quit requested")

// PrintMenu writes the numbered list of games.
func PrintMenu(c *console.Console, games []Game) {
	c.Println(prompt.GameMenuTitle)
	for _, g := range games {
		c.Println(prompt.GameMenuEntry(g.Number, g.Title, g.Summary))
	}
	c.Newline()
}

// Select shows the menu and prompts until a listed game number is entered.
// It returns ErrQuit on the quit keyword and io.EOF when input ends.
func Select(c *console.Console, games []Game, l loggerpkg.Logger) (Game, error) {
	l = loggerpkg.OrNop(l)
	if len(games) == 0 {
		return Game{}, ErrEmptyCatalog
	}

	PrintMenu(c, games)
	for {
		input, err := c.ReadLine(prompt.GameSelectLabel)
		if err != nil {
			return Game{}, err
		}
		if input == "" {
			continue
		}
		if prompt.IsQuit(input) {
			l.Info("Program exit initiated by user", map[string]any{"stage": "game menu"})
			return Game{}, ErrQuit
		}

		number, err := strconv.Atoi(input)
		if err == nil {
			if g, ok := Find(games, number); ok {
				l.Info("game selected", map[string]any{"number": g.Number, "title": g.Title})
				return g, nil
			}
		}
		l.Warn("invalid game selection", map[string]any{"input": input})
		c.Println(prompt.InvalidSelection(input))
	}
}
