// Package config provides YAML-based tileset and display configuration
// loading with embedded defaults.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/wordrpg/internal/core"
	"github.com/vovakirdan/wordrpg/internal/tiles"
)

// ErrInvalidTile is wrapped when a tile entry cannot be converted.
var ErrInvalidTile = errors.New("invalid tile definition")

// TilesetConfig is the YAML form of a tileset.
type TilesetConfig struct {
	Name  string       `yaml:"name"`
	Tiles []TileConfig `yaml:"tiles"`
}

// TileConfig is the YAML form of a single tile.
type TileConfig struct {
	ID     string `yaml:"id"`
	Symbol string `yaml:"symbol"` // exactly one character
	Color  string `yaml:"color"`  // source color in the map image, "#rrggbb"
	FG     string `yaml:"fg,omitempty"`
	BG     string `yaml:"bg,omitempty"`
	Style  string `yaml:"style,omitempty"`
}

// DisplayConfig holds terminal geometry and text asset settings.
type DisplayConfig struct {
	Screen    ScreenSize `yaml:"screen"`
	Encoding  string     `yaml:"encoding"`
	Header    string     `yaml:"header"`
	AssetDir  string     `yaml:"asset_dir"`  // overrides embedded text screens
	TileScale int        `yaml:"tile_scale"` // pixels per tile edge in map images
}

// ScreenSize is the fixed terminal geometry in characters.
type ScreenSize struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// Tileset converts the YAML form into a validated tileset.
// Bad entries and duplicate colors return a *tiles.ConfigurationError.
func (c TilesetConfig) Tileset() (*tiles.Tileset, error) {
	list := make([]tiles.Tile, 0, len(c.Tiles))
	for _, tc := range c.Tiles {
		t, err := tc.tile()
		if err != nil {
			return nil, &tiles.ConfigurationError{Tileset: c.Name, Tile: tc.ID, Err: err}
		}
		list = append(list, t)
	}
	return tiles.NewTileset(c.Name, list)
}

func (tc TileConfig) tile() (tiles.Tile, error) {
	symbol := []rune(tc.Symbol)
	if len(symbol) != 1 {
		return tiles.Tile{}, fmt.Errorf("%w: symbol %q must be one character", ErrInvalidTile, tc.Symbol)
	}

	src, err := colorful.Hex(tc.Color)
	if err != nil {
		return tiles.Tile{}, fmt.Errorf("%w: color %q: %v", ErrInvalidTile, tc.Color, err)
	}
	r, g, b := src.RGB255()

	fg, ok := core.ParseColor(tc.FG)
	if !ok {
		return tiles.Tile{}, fmt.Errorf("%w: unknown fg color %q", ErrInvalidTile, tc.FG)
	}
	bg, ok := core.ParseColor(tc.BG)
	if !ok {
		return tiles.Tile{}, fmt.Errorf("%w: unknown bg color %q", ErrInvalidTile, tc.BG)
	}
	style, ok := core.ParseStyle(tc.Style)
	if !ok {
		return tiles.Tile{}, fmt.Errorf("%w: unknown style %q", ErrInvalidTile, tc.Style)
	}

	return tiles.Tile{
		ID:     tc.ID,
		Symbol: symbol[0],
		Format: core.Format{Foreground: fg, Background: bg, Style: style},
		Source: tiles.RGB{R: r, G: g, B: b},
	}, nil
}

// Apply copies display settings into a runtime config.
func (d DisplayConfig) Apply(cfg *core.RuntimeConfig) {
	cfg.ScreenW = d.Screen.Cols
	cfg.ScreenH = d.Screen.Rows
	cfg.Encoding = d.Encoding
	cfg.Header = d.Header
	cfg.AssetDir = d.AssetDir
	cfg.TileScale = d.TileScale
}
