package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordrpg/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available screens",
	Long:  `Shows a list of all screens registered with wordrpg.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	screens := registry.List()

	if len(screens) == 0 {
		fmt.Println("No screens available.")
		return
	}

	fmt.Println("Available screens:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range screens {
		maxIDLen = max(maxIDLen, len(s.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, s := range screens {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'wordrpg show <id>' to draw a screen.")
}
