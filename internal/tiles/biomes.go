package tiles

import "github.com/vovakirdan/wordrpg/internal/core"

// biomeTiles is the built-in overworld tileset.
var biomeTiles = []Tile{
	{ID: "deep_water", Symbol: '≈', Format: core.Format{Foreground: core.ColorBlue, Background: core.ColorBlue}, Source: RGB{0, 0, 128}},
	{ID: "water", Symbol: '~', Format: core.Format{Foreground: core.ColorBrightBlue, Background: core.ColorBlue}, Source: RGB{0, 0, 255}},
	{ID: "shallows", Symbol: '~', Format: core.Format{Foreground: core.ColorBrightCyan, Background: core.ColorCyan}, Source: RGB{0, 255, 255}},
	{ID: "sand", Symbol: '.', Format: core.Format{Foreground: core.ColorYellow, Background: core.ColorBrightYellow}, Source: RGB{255, 255, 0}},
	{ID: "grass", Symbol: '"', Format: core.Format{Foreground: core.ColorBrightGreen, Background: core.ColorGreen}, Source: RGB{0, 255, 0}},
	{ID: "forest", Symbol: '♣', Format: core.Format{Foreground: core.ColorGreen, Background: core.ColorBlack}, Source: RGB{0, 128, 0}},
	{ID: "hills", Symbol: 'n', Format: core.Format{Foreground: core.ColorOrange, Background: core.ColorGreen}, Source: RGB{128, 128, 0}},
	{ID: "mountain", Symbol: '▲', Format: core.Format{Foreground: core.ColorWhite, Background: core.ColorGray, Style: core.StyleBold}, Source: RGB{128, 128, 128}},
	{ID: "snow", Symbol: '*', Format: core.Format{Foreground: core.ColorBrightWhite, Background: core.ColorWhite}, Source: RGB{255, 255, 255}},
	{ID: "road", Symbol: '#', Format: core.Format{Foreground: core.ColorGray, Background: core.ColorBlack}, Source: RGB{64, 64, 64}},
	{ID: "town", Symbol: '□', Format: core.Format{Foreground: core.ColorBrightRed, Background: core.ColorBlack, Style: core.StyleBold}, Source: RGB{255, 0, 0}},
}

// Biomes returns the built-in overworld tileset.
func Biomes() *Tileset {
	ts, err := NewTileset("biomes", biomeTiles)
	if err != nil {
		panic(err) // biomeTiles is static
	}
	return ts
}
