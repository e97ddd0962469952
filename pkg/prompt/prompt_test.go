// Tests for prompt and copy helpers.
package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsQuitMatchesSubstring(t *testing.T) {
	for _, in := range []string{"quit", "quitter", "je quitte", "please quit now"} {
		assert.True(t, IsQuit(in), in)
	}
	for _, in := range []string{"", "Quit", "QUIT", "bonjour", "qui t"} {
		assert.False(t, IsQuit(in), in)
	}
}

func TestGameSeed(t *testing.T) {
	assert.Equal(t, "Let's play this game: Guess the number.", GameSeed("  Guess the number.\n"))
}

func TestGameMenuEntry(t *testing.T) {
	assert.Equal(t, "2. Pendu : Trouver le mot", GameMenuEntry(2, "Pendu", "Trouver\nle mot"))
	assert.Equal(t, "3. Quiz", GameMenuEntry(3, " Quiz ", ""))
}

func TestInvalidSelectionNamesInput(t *testing.T) {
	assert.Equal(t, `Sélection invalide : "abc"`, InvalidSelection("abc"))
}
