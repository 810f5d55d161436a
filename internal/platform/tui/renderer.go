package tui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/wordrpg/internal/core"
)

// Renderer draws screens to an output device, one whole frame per write.
type Renderer struct {
	out    io.Writer
	styles *lipgloss.Renderer
}

// NewRenderer creates a renderer for w, detecting its color support.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{out: w, styles: lipgloss.NewRenderer(w)}
}

// NewRendererWithProfile creates a renderer for w with a fixed color profile.
func NewRendererWithProfile(w io.Writer, p termenv.Profile) *Renderer {
	r := NewRenderer(w)
	r.styles.SetColorProfile(p)
	return r
}

// Frame returns the bytes Draw writes for s: clear, home, the styled buffer
// and a trailing reset and newline.
func (r *Renderer) Frame(s *core.Screen) string {
	var sb strings.Builder
	sb.WriteString(clearScreen)
	sb.WriteString(cursorHome)
	sb.WriteString(RenderScreen(s, r.styles))
	sb.WriteString(colorsReset)
	sb.WriteByte('\n')
	return sb.String()
}

// Draw clears the device and prints s in a single write.
func (r *Renderer) Draw(s *core.Screen) error {
	_, err := io.WriteString(r.out, r.Frame(s))
	return err
}

// TerminalSize returns the size of the terminal behind f, or the fallback
// when f is not a terminal.
func TerminalSize(f *os.File, fallbackW, fallbackH int) (int, int) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return fallbackW, fallbackH
	}
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return fallbackW, fallbackH
	}
	return w, h
}
