// Package prompt holds the user-facing copy and the fixed prompts sent to the model.
package prompt

import (
	"fmt"
	"strings"
)

// QuitKeyword ends a session or a menu when it appears anywhere in the input.
const QuitKeyword = "quit"

// Terminal copy.
const (
	Welcome       = "Welcome"
	QuitHint      = "(écrire 'quit' pour quitter à tout moment)"
	UserLabel     = "Vous: "
	AssistantName = "Mistral: "
	Farewell      = "A la prochaine!"
	KeyValid      = "Clé API valide."

	GameMenuTitle   = "Jeux disponibles :"
	GameSelectLabel = "Choisissez un jeu: "
)

// ProbePrompt is sent once at startup to check the API key.
const ProbePrompt = "Réponds uniquement par un mot de salutation."

// SeedPrefix starts the first turn of a game session.
const SeedPrefix = "Let's play this game"

// IsQuit reports whether input asks to leave. The match is a case-sensitive
// substring test, so "quitter" and "je quitte" also quit.
func IsQuit(input string) bool {
	return strings.Contains(input, QuitKeyword)
}

// GameSeed builds the first turn sent for a chosen game.
func GameSeed(rules string) string {
	return SeedPrefix + ": " + strings.TrimSpace(rules)
}

// GameMenuEntry renders one menu line.
func GameMenuEntry(number int, title, summary string) string {
	title = singleLine(title)
	summary = singleLine(summary)
	if summary == "" {
		return fmt.Sprintf("%d. %s", number, title)
	}
	return fmt.Sprintf("%d. %s : %s", number, title, summary)
}

// InvalidSelection is printed when a menu choice matches no game.
func InvalidSelection(input string) string {
	return fmt.Sprintf("Sélection invalide : %q", input)
}

// singleLine keeps menu fields on one trimmed line.
func singleLine(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	return strings.TrimSpace(value)
}
