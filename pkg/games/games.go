package games

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Game is one selectable entry of the catalog.
type Game struct {
	Number  int    `yaml:"number"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	Rules   string `yaml:"rules"`
}

// catalogFile mirrors the YAML document on disk.
type catalogFile struct {
	Games []Game `yaml:"games"`
}

var ErrEmptyCatalog = errors.New("game catalog is empty")

// Load reads and parses the game catalog at path.
func Load(path string) ([]Game, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	games, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return games, nil
}

// Parse decodes a catalog document and returns its games sorted by number.
func Parse(content []byte) ([]Game, error) {
	var file catalogFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, err
	}
	if len(file.Games) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[int]struct{}, len(file.Games))
	games := make([]Game, 0, len(file.Games))
	for i, g := range file.Games {
		g.Title = strings.TrimSpace(g.Title)
		g.Summary = strings.TrimSpace(g.Summary)
		g.Rules = strings.TrimSpace(g.Rules)
		if g.Title == "" {
			return nil, fmt.Errorf("game at index %d: missing title", i)
		}
		if g.Rules == "" {
			return nil, fmt.Errorf("game %d: missing rules", g.Number)
		}
		if _, dup := seen[g.Number]; dup {
			return nil, fmt.Errorf("duplicate game number %d", g.Number)
		}
		seen[g.Number] = struct{}{}
		games = append(games, g)
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].Number < games[j].Number
	})
	return games, nil
}

// Find returns the game with the given number.
func Find(games []Game, number int) (Game, bool) {
	for _, g := range games {
		if g.Number == number {
			return g, true
		}
	}
	return Game{}, false
}
