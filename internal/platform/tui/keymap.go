package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Start  key.Binding
	Easy   key.Binding
	Medium key.Binding
	Hard   key.Binding
	Rules  key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rules, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Start, k.Easy, k.Medium, k.Hard},
		{k.Rules, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1", "e"),
			key.WithHelp("1/e", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2", "m"),
			key.WithHelp("2/m", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3", "h"),
			key.WithHelp("3/h", "hard"),
		),
		Rules: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "rules"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close rules"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a UI action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	case key.Matches(msg, km.keys.Easy):
		return core.ActionEasy, false
	case key.Matches(msg, km.keys.Medium):
		return core.ActionMedium, false
	case key.Matches(msg, km.keys.Hard):
		return core.ActionHard, false
	case key.Matches(msg, km.keys.Rules):
		return core.ActionRules, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapMoveKey translates a key message to a paddle key identifier.
func (km *KeyMapper) MapMoveKey(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, km.keys.Left):
		return core.KeyArrowLeft, true
	case key.Matches(msg, km.keys.Right):
		return core.KeyArrowRight, true
	}
	return "", false
}
