package core

import (
	"strings"
)

// Cell is one character position of a Screen: a rune and its formatting.
// Formatting stays a value until render time, so overlaying one buffer on
// another never stacks escape sequences.
type Cell struct {
	Rune   rune
	Format Format
}

// Blank returns a neutral space cell.
func Blank() Cell {
	return Cell{Rune: ' '}
}

// Screen is a 2D character buffer for rendering text-mode frames.
// It decouples drawing from the terminal: screens, menus and maps write cells
// here while the platform layer handles actual display.
type Screen struct {
	width    int
	height   int
	cells    [][]Cell
	reporter Reporter
}

// NewScreen creates a new screen buffer with the given dimensions,
// filled with neutral spaces. Negative dimensions are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:    Max(width, 0),
		height:   Max(height, 0),
		reporter: Discard,
	}
	s.allocate()
	s.Clear()
	return s
}

// ScreenFromLines builds a buffer with one row per line. The width is the
// longest line in runes; shorter lines are padded with spaces and empty lines
// become blank rows.
func ScreenFromLines(lines []string) *Screen {
	width := 0
	for _, line := range lines {
		width = Max(width, len([]rune(line)))
	}
	s := NewScreen(width, len(lines))
	for y, line := range lines {
		x := 0
		for _, r := range line {
			s.cells[y][x] = Cell{Rune: r}
			x++
		}
	}
	return s
}

// WithReporter sets the diagnostic sink for dropped writes and returns s.
func (s *Screen) WithReporter(r Reporter) *Screen {
	if r == nil {
		r = Discard
	}
	s.reporter = r
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// InBounds reports whether (x, y) addresses a cell of the screen.
func (s *Screen) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with neutral spaces.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill fills the entire screen with the given rune and no formatting.
func (s *Screen) Fill(r rune) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: r}
		}
	}
}

// WriteChar places a cell at (x, y). A write outside the buffer is dropped
// and reported; it returns whether the cell was written.
func (s *Screen) WriteChar(x, y int, c Cell) bool {
	if !s.InBounds(x, y) {
		s.reporter.Report(DiagOutOfBounds, "write outside screen dropped",
			"char", string(c.Rune), "col", x, "row", y, "cols", s.width, "rows", s.height)
		return false
	}
	s.cells[y][x] = c
	return true
}

// Set places an unformatted rune at the given position.
func (s *Screen) Set(x, y int, r rune) {
	s.WriteChar(x, y, Cell{Rune: r})
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.InBounds(x, y) {
		return Blank()
	}
	return s.cells[y][x]
}

// WriteOptions controls how WriteString and WriteBuffer format cells.
// The zero value applies Format to every non-space character and leaves
// spaces neutral, so colored backgrounds don't bleed through blank text.
type WriteOptions struct {
	Format Format

	// SkipFormatting writes every cell with the neutral format.
	SkipFormatting bool

	// FormatSpaces applies Format to spaces as well.
	FormatSpaces bool

	// KeepSourceFormat makes WriteBuffer copy each source cell's own format
	// instead of applying Format. Ignored by WriteString.
	KeepSourceFormat bool
}

// formatFor returns the format a written rune receives.
func (o WriteOptions) formatFor(r rune) Format {
	if o.SkipFormatting {
		return Format{}
	}
	if r == ' ' && !o.FormatSpaces {
		return Format{}
	}
	return o.Format
}

// WriteString writes text horizontally starting at (x, y): rune i lands at
// (x+i, y). Runes beyond the buffer are dropped individually.
// Returns the number of cells written.
func (s *Screen) WriteString(x, y int, text string, opts WriteOptions) int {
	written := 0
	i := 0
	for _, r := range text {
		if s.WriteChar(x+i, y, Cell{Rune: r, Format: opts.formatFor(r)}) {
			written++
		}
		i++
	}
	return written
}

// WriteBuffer writes src with its top-left corner at (x, y): source cell
// (col, row) lands at (x+col, y+row). Cells beyond the buffer are dropped
// individually. Returns the number of cells written.
func (s *Screen) WriteBuffer(x, y int, src *Screen, opts WriteOptions) int {
	written := 0
	for row := 0; row < src.height; row++ {
		for col := 0; col < src.width; col++ {
			c := src.cells[row][col]
			if !opts.KeepSourceFormat {
				c.Format = opts.formatFor(c.Rune)
			}
			if s.WriteChar(x+col, y+row, c) {
				written++
			}
		}
	}
	return written
}

// DrawText writes unformatted text horizontally starting at (x, y).
func (s *Screen) DrawText(x, y int, text string) {
	s.WriteString(x, y, text, WriteOptions{SkipFormatting: true})
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, opts WriteOptions) {
	s.WriteString(CenterOffset(text, s.width), y, text, opts)
}

// DrawRect fills a rectangular area with the given rune and format.
func (s *Screen) DrawRect(r Rect, fill rune, f Format) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.WriteChar(x, y, Cell{Rune: fill, Format: f})
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, f Format) {
	set := func(x, y int, ch rune) {
		s.WriteChar(x, y, Cell{Rune: ch, Format: f})
	}

	// Corners
	set(r.X, r.Y, '┌')
	set(r.Right()-1, r.Y, '┐')
	set(r.X, r.Bottom()-1, '└')
	set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		set(x, r.Y, '─')
		set(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		set(r.X, y, '│')
		set(r.Right()-1, y, '│')
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	for i := 0; i < length; i++ {
		s.Set(x, y+i, r)
	}
}

// String converts the screen buffer to plain text without formatting.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// CenterOffset returns the column at which text starts when centered in a
// field of the given width. The result is negative when text is wider.
func CenterOffset(text string, width int) int {
	return (width - len([]rune(text))) / 2
}
