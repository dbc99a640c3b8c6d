package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/fwojciec/diffpager/config"
)

// KeyMap defines the pager keybindings.
type KeyMap struct {
	Down     key.Binding
	Up       key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	HalfDown key.Binding
	HalfUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default vi-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "line down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "line up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "f"),
			key.WithHelp("f/pgdn", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("b/pgup", "page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFromConfig builds a KeyMap from configured key lists, keeping the
// default binding for any action left unset.
func KeyMapFromConfig(keys config.Keys) KeyMap {
	km := DefaultKeyMap()
	rebind(&km.Down, keys.Down, "line down")
	rebind(&km.Up, keys.Up, "line up")
	rebind(&km.PageDown, keys.PageDown, "page down")
	rebind(&km.PageUp, keys.PageUp, "page up")
	rebind(&km.HalfDown, keys.HalfPageDown, "half page down")
	rebind(&km.HalfUp, keys.HalfPageUp, "half page up")
	rebind(&km.Top, keys.Top, "go to top")
	rebind(&km.Bottom, keys.Bottom, "go to bottom")
	rebind(&km.Quit, keys.Quit, "quit")
	return km
}

func rebind(b *key.Binding, keys []string, help string) {
	if len(keys) == 0 {
		return
	}
	*b = key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), help),
	)
}
