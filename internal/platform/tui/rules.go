package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RulesLines is the rules panel text, shared with the CLI rules command.
var RulesLines = []string{
	"Use the left and right keys to move the paddle.",
	"Bounce the ball off the paddle to break the bricks.",
	"Each brick is worth one point.",
	"Miss the ball and you lose a life. Lose all three and the game is over.",
	"Clear the board and it fills up again, so keep going.",
}

var (
	rulesTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("#6B5B95")).
			Padding(0, 1)

	rulesBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

// renderRules draws the rules panel centred in a width x height area.
func renderRules(keys KeyMap, h help.Model, width, height int) string {
	var b strings.Builder
	b.WriteString(rulesTitleStyle.Render("How to play"))
	b.WriteString("\n\n")
	for _, line := range RulesLines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(h.FullHelpView(keys.FullHelp()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, rulesBoxStyle.Render(b.String()))
}
