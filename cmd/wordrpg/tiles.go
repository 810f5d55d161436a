package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordrpg/internal/config"
	"github.com/vovakirdan/wordrpg/internal/platform/tui"
)

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "List the active tileset",
	Long: `Shows every tile of the active tileset: its id, its symbol drawn in
its own format and the map image color that selects it.

Examples:
  wordrpg tiles
  wordrpg tiles --tileset ./dungeon.yaml`,
	RunE: runTiles,
}

func runTiles(cmd *cobra.Command, args []string) error {
	ts, err := config.LoadTileset(flagTilesetPath)
	if err != nil {
		return err
	}

	fmt.Printf("Tileset %q (%d tiles):\n", ts.Name(), ts.Len())
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, id := range ts.IDs() {
		maxIDLen = max(maxIDLen, len(id))
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Symbol", "Color")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")
	for _, t := range ts.Tiles() {
		symbol := tui.StyleFor(lipgloss.DefaultRenderer(), t.Format).Render(string(t.Symbol))
		fmt.Printf("  %-*s  %s       %s\n", maxIDLen, t.ID, symbol, t.Source)
	}
	return nil
}
