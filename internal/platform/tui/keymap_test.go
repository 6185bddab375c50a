package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"space starts", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionStart, false},
		{"1 easy", runeKey('1'), core.ActionEasy, false},
		{"e easy", runeKey('e'), core.ActionEasy, false},
		{"2 medium", runeKey('2'), core.ActionMedium, false},
		{"3 hard", runeKey('3'), core.ActionHard, false},
		{"? rules", runeKey('?'), core.ActionRules, false},
		{"esc back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"arrow is not an action", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionNone, false},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = %s, %v; expected %s, %v", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapMoveKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected string
		ok       bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.KeyArrowLeft, true},
		{tea.KeyMsg{Type: tea.KeyRight}, core.KeyArrowRight, true},
		{runeKey('a'), core.KeyArrowLeft, true},
		{runeKey('d'), core.KeyArrowRight, true},
		{tea.KeyMsg{Type: tea.KeyUp}, "", false},
		{runeKey('1'), "", false},
	}

	for _, tt := range tests {
		got, ok := km.MapMoveKey(tt.msg)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("MapMoveKey(%q) = %q, %v; expected %q, %v", tt.msg.String(), got, ok, tt.expected, tt.ok)
		}
	}
}
