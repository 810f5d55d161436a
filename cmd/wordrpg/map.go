package main

import (
	"github.com/spf13/cobra"
)

var (
	flagScale int
	flagCol   int
	flagRow   int
)

var mapCmd = &cobra.Command{
	Use:   "map <image>",
	Short: "Draw a viewport of a map image",
	Long: `Decode a map image, convert each pixel to a tile through the tileset's
color key and draw the part of the map starting at --col/--row inside the
window frame. Pixels with no matching tile are reported and left blank.

Examples:
  wordrpg map world.png
  wordrpg map world.bmp --col 120 --row 40
  wordrpg map world.png --scale 8 --tileset ./biomes.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runMap,
}

func init() {
	mapCmd.Flags().IntVar(&flagScale, "scale", 0, "Pixels per tile edge (0 = display config)")
	mapCmd.Flags().IntVar(&flagCol, "col", 0, "Leftmost map column to show")
	mapCmd.Flags().IntVar(&flagRow, "row", 0, "Topmost map row to show")
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	cfg.MapPath = args[0]
	cfg.MapCol = flagCol
	cfg.MapRow = flagRow
	if flagScale > 0 {
		cfg.TileScale = flagScale
	}

	return draw("map", cfg)
}
