package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the rules and controls",
	Args:  cobra.NoArgs,
	Run:   runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	fmt.Println("How to play:")
	fmt.Println()
	for _, line := range tui.RulesLines {
		fmt.Printf("  %s\n", line)
	}

	fmt.Println()
	fmt.Println("Controls:")
	fmt.Println()

	// Calculate column width
	groups := tui.DefaultKeyMap().FullHelp()
	maxKeyLen := 0
	for _, group := range groups {
		for _, b := range group {
			maxKeyLen = max(maxKeyLen, len([]rune(b.Help().Key)))
		}
	}

	for _, group := range groups {
		for _, b := range group {
			fmt.Printf("  %-*s  %s\n", maxKeyLen, b.Help().Key, b.Help().Desc)
		}
	}
}
