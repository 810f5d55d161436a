package core

import "strings"

// Color represents a foreground or background color for a screen cell.
// Uses ANSI 16/256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. ColorDefault leaves the terminal's own color in place.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

var colorNames = map[Color]string{
	ColorDefault:       "default",
	ColorRed:           "red",
	ColorGreen:         "green",
	ColorYellow:        "yellow",
	ColorBlue:          "blue",
	ColorMagenta:       "magenta",
	ColorCyan:          "cyan",
	ColorWhite:         "white",
	ColorBrightRed:     "bright_red",
	ColorBrightGreen:   "bright_green",
	ColorBrightYellow:  "bright_yellow",
	ColorBrightBlue:    "bright_blue",
	ColorBrightMagenta: "bright_magenta",
	ColorBrightCyan:    "bright_cyan",
	ColorBrightWhite:   "bright_white",
	ColorOrange:        "orange",
	ColorGray:          "gray",
	ColorBlack:         "black",
}

// String returns the canonical config name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor converts a config name to a Color.
// Accepts the canonical names plus "reset", "light_<name>" and "grey".
// Returns ColorDefault and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	name := normalizeName(s)
	switch name {
	case "", "reset", "none":
		return ColorDefault, true
	case "grey":
		return ColorGray, true
	}
	name = strings.TrimSuffix(name, "_ex")
	if rest, ok := strings.CutPrefix(name, "light"); ok && rest != "" {
		name = "bright_" + strings.TrimPrefix(rest, "_")
	}
	for c, n := range colorNames {
		if n == name {
			return c, true
		}
	}
	return ColorDefault, false
}

// Style is a text attribute applied on top of the colors.
type Style uint8

const (
	StyleNormal Style = iota
	StyleBold
	StyleDim
	StyleItalic
	StyleUnderline
	StyleReverse
)

var styleNames = map[Style]string{
	StyleNormal:    "normal",
	StyleBold:      "bold",
	StyleDim:       "dim",
	StyleItalic:    "italic",
	StyleUnderline: "underline",
	StyleReverse:   "reverse",
}

// String returns the canonical config name of the style.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStyle converts a config name to a Style.
// "bright" is accepted as an alias for bold and "reset_all" for normal.
func ParseStyle(s string) (Style, bool) {
	switch name := normalizeName(s); name {
	case "", "reset", "reset_all", "none":
		return StyleNormal, true
	case "bright":
		return StyleBold, true
	default:
		for st, n := range styleNames {
			if n == name {
				return st, true
			}
		}
	}
	return StyleNormal, false
}

// Format is the foreground, background and style of a single cell.
// The zero value is the neutral format: terminal defaults, no attributes.
type Format struct {
	Foreground Color
	Background Color
	Style      Style
}

// Neutral reports whether f carries no formatting at all.
func (f Format) Neutral() bool {
	return f == Format{}
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
