package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/diffpager/bubbletea"
	"github.com/fwojciec/diffpager/config"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	assert.True(t, key.Matches(keyMsg('j'), km.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, km.Down))
	assert.True(t, key.Matches(keyMsg('q'), km.Quit))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit))
}

func TestKeyMapFromConfig_Overrides(t *testing.T) {
	t.Parallel()

	km := bubbletea.KeyMapFromConfig(config.Keys{
		Down: []string{"n"},
		Quit: []string{"esc"},
	})

	assert.True(t, key.Matches(keyMsg('n'), km.Down))
	assert.False(t, key.Matches(keyMsg('j'), km.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, km.Quit))
	assert.False(t, key.Matches(keyMsg('q'), km.Quit))
}

func TestKeyMapFromConfig_EmptyKeepsDefaults(t *testing.T) {
	t.Parallel()

	km := bubbletea.KeyMapFromConfig(config.Keys{})

	assert.True(t, key.Matches(keyMsg('j'), km.Down))
	assert.True(t, key.Matches(keyMsg('G'), km.Bottom))
	assert.True(t, key.Matches(keyMsg('q'), km.Quit))
}
