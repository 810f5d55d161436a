// Package tui serializes screen buffers to ANSI text and writes them to the
// terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wordrpg/internal/core"
)

// ansiColors maps core.Color to terminal color codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorBlack:         lipgloss.Color("0"),
}

// StyleFor builds the lipgloss style for a cell format.
func StyleFor(r *lipgloss.Renderer, f core.Format) lipgloss.Style {
	style := r.NewStyle()
	if c, ok := ansiColors[f.Foreground]; ok {
		style = style.Foreground(c)
	}
	if c, ok := ansiColors[f.Background]; ok {
		style = style.Background(c)
	}

	switch f.Style {
	case core.StyleBold:
		style = style.Bold(true)
	case core.StyleDim:
		style = style.Faint(true)
	case core.StyleItalic:
		style = style.Italic(true)
	case core.StyleUnderline:
		style = style.Underline(true)
	case core.StyleReverse:
		style = style.Reverse(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same format to minimize ANSI escape
// sequences; every styled run ends with a reset, so neutral cells are
// written raw. A nil renderer uses lipgloss' default renderer.
func RenderScreen(s *core.Screen, r *lipgloss.Renderer) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Format

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Format != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Neutral() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(StyleFor(r, start).Render(run.String()))
		}
	}
	return sb.String()
}
