// Package worldmap loads tile maps from images and draws them into screens.
package worldmap

import (
	"github.com/vovakirdan/wordrpg/internal/core"
	"github.com/vovakirdan/wordrpg/internal/tiles"
)

// Size is an extent in map cells.
type Size struct {
	Cols, Rows int
}

// Point is a map coordinate.
type Point struct {
	Col, Row int
}

// Map is a fixed-size grid of tiles. A nil tile marks a cell whose source
// color had no tile. Tiles are shared, read-only references into a Tileset.
type Map struct {
	cols  int
	rows  int
	cells [][]*tiles.Tile // [col][row]
}

// FromTiles builds a map from an image-space grid: grid[y][x] is the tile of
// image pixel (x, y). All rows should have the same length; longer rows are
// truncated to the shortest.
func FromTiles(grid [][]*tiles.Tile) *Map {
	return newMap(toMapSpace(grid))
}

// newMap wraps map-space storage. Every column gets the same length.
func newMap(cells [][]*tiles.Tile) *Map {
	m := &Map{cols: len(cells), cells: cells}
	if m.cols > 0 {
		m.rows = len(cells[0])
	}
	return m
}

// emptyMap returns a map of the given size with every cell empty.
func emptyMap(cols, rows int) *Map {
	cols, rows = core.Max(cols, 0), core.Max(rows, 0)
	cells := make([][]*tiles.Tile, cols)
	for c := range cells {
		cells[c] = make([]*tiles.Tile, rows)
	}
	return &Map{cols: cols, rows: rows, cells: cells}
}

// Size returns the map extent.
func (m *Map) Size() (cols, rows int) {
	return m.cols, m.rows
}

// InBounds reports whether (col, row) is a cell of the map.
func (m *Map) InBounds(col, row int) bool {
	return core.NewRect(0, 0, m.cols, m.rows).Contains(col, row)
}

// Get returns the tile at (col, row), or nil for an empty cell or a
// coordinate outside the map.
func (m *Map) Get(col, row int) *tiles.Tile {
	if !m.InBounds(col, row) {
		return nil
	}
	return m.cells[col][row]
}

// Count returns how many cells hold a tile and how many are empty.
func (m *Map) Count() (known, unknown int) {
	for _, column := range m.cells {
		for _, t := range column {
			if t != nil {
				known++
			} else {
				unknown++
			}
		}
	}
	return known, unknown
}

// Segment returns a size.Cols x size.Rows window of the map whose top-left
// cell is offset. The window always has the requested size: parts that lie
// outside the map are empty, so a viewport may hang off any edge. Negative
// extents are treated as zero.
func (m *Map) Segment(size Size, offset Point) *Map {
	seg := emptyMap(size.Cols, size.Rows)
	window := core.NewRect(offset.Col, offset.Row, seg.cols, seg.rows)
	if !window.Intersects(core.NewRect(0, 0, m.cols, m.rows)) {
		return seg
	}

	for c := range seg.cells {
		for r := range seg.cells[c] {
			seg.cells[c][r] = m.Get(offset.Col+c, offset.Row+r)
		}
	}
	return seg
}

// Draw writes the map into dst with its top-left cell at (x, y). Each tile
// is written as its symbol in its own format, backgrounds included; empty
// cells become neutral spaces. Cells that fall off dst are dropped by dst.
// Returns the number of cells written.
func (m *Map) Draw(dst *core.Screen, x, y int) int {
	written := 0
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			t := m.cells[col][row]
			if t == nil {
				if dst.WriteChar(x+col, y+row, core.Blank()) {
					written++
				}
				continue
			}
			written += dst.WriteString(x+col, y+row, string(t.Symbol), core.WriteOptions{
				Format:       t.Format,
				FormatSpaces: true,
			})
		}
	}
	return written
}

// Screen renders the whole map into a new buffer of the map's size.
func (m *Map) Screen(r core.Reporter) *core.Screen {
	s := core.NewScreen(m.cols, m.rows).WithReporter(r)
	m.Draw(s, 0, 0)
	return s
}
