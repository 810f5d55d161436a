package config

import (
	_ "embed"
)

//go:embed defaults/biomes.yaml
var defaultTilesetYAML []byte

//go:embed defaults/display.yaml
var defaultDisplayYAML []byte

// DefaultDisplayConfig returns the default display configuration:
// an 80x25 terminal reading UTF-8 text assets.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Screen: ScreenSize{
			Cols: 80,
			Rows: 25,
		},
		Encoding:  "utf-8",
		Header:    "WordRPG",
		TileScale: 1,
	}
}
