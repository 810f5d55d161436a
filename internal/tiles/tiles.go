// Package tiles defines map tile descriptors and the tileset registry that
// maps image colors to tiles.
package tiles

import (
	"errors"
	"fmt"
	"image/color"
	"sort"

	"github.com/vovakirdan/wordrpg/internal/core"
)

var (
	// ErrDuplicateColor is wrapped when two tiles share a source color.
	ErrDuplicateColor = errors.New("duplicate source color")
	// ErrDuplicateID is wrapped when two tiles share an id.
	ErrDuplicateID = errors.New("duplicate tile id")
	// ErrEmptyID is wrapped when a tile has no id.
	ErrEmptyID = errors.New("empty tile id")
)

// ConfigurationError reports an invalid tileset definition.
type ConfigurationError struct {
	Tileset string
	Tile    string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("tiles: tileset %q: tile %q: %v", e.Tileset, e.Tile, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// RGB is an opaque 8-bit color. Alpha never takes part in tile lookup.
type RGB struct {
	R, G, B uint8
}

// RGBOf converts any color to RGB, dropping alpha.
// Premultiplied colors are un-premultiplied first so that a translucent
// pixel keys the same as its opaque counterpart.
func RGBOf(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

// String formats the color as #rrggbb.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Tile describes one kind of map cell.
type Tile struct {
	ID     string
	Symbol rune
	Format core.Format
	Source RGB // color that marks this tile in a map image
}

// ColorKey maps an image color to the id of its tile.
type ColorKey map[RGB]string

// Tileset is an immutable registry of tiles keyed by id.
type Tileset struct {
	name  string
	tiles map[string]*Tile
}

// NewTileset validates tiles and builds a registry.
// Tile ids must be non-empty and unique, source colors pairwise distinct;
// any violation returns a *ConfigurationError.
func NewTileset(name string, tiles []Tile) (*Tileset, error) {
	ts := &Tileset{
		name:  name,
		tiles: make(map[string]*Tile, len(tiles)),
	}
	owners := make(map[RGB]string, len(tiles))

	for _, t := range tiles {
		if t.ID == "" {
			return nil, &ConfigurationError{Tileset: name, Err: ErrEmptyID}
		}
		if _, exists := ts.tiles[t.ID]; exists {
			return nil, &ConfigurationError{Tileset: name, Tile: t.ID, Err: ErrDuplicateID}
		}
		if other, exists := owners[t.Source]; exists {
			return nil, &ConfigurationError{
				Tileset: name,
				Tile:    t.ID,
				Err:     fmt.Errorf("%w %s already used by %q", ErrDuplicateColor, t.Source, other),
			}
		}
		owners[t.Source] = t.ID
		tile := t
		ts.tiles[t.ID] = &tile
	}

	return ts, nil
}

// Name returns the tileset name.
func (ts *Tileset) Name() string {
	return ts.name
}

// Len returns the number of tiles.
func (ts *Tileset) Len() int {
	return len(ts.tiles)
}

// Get returns the tile with the given id.
func (ts *Tileset) Get(id string) (*Tile, bool) {
	t, ok := ts.tiles[id]
	return t, ok
}

// IDs returns all tile ids sorted.
func (ts *Tileset) IDs() []string {
	ids := make([]string, 0, len(ts.tiles))
	for id := range ts.tiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Tiles returns all tiles sorted by id.
func (ts *Tileset) Tiles() []*Tile {
	ids := ts.IDs()
	out := make([]*Tile, len(ids))
	for i, id := range ids {
		out[i] = ts.tiles[id]
	}
	return out
}

// ColorKey derives the color -> tile id map. It is rebuilt on every call.
func (ts *Tileset) ColorKey() ColorKey {
	key := make(ColorKey, len(ts.tiles))
	for id, t := range ts.tiles {
		key[t.Source] = id
	}
	return key
}

// Resolve returns the tile a color maps to under key.
func (ts *Tileset) Resolve(key ColorKey, c RGB) (*Tile, bool) {
	id, ok := key[c]
	if !ok {
		return nil, false
	}
	return ts.Get(id)
}

// Lookup returns the tile whose source color is c.
func (ts *Tileset) Lookup(c RGB) (*Tile, bool) {
	return ts.Resolve(ts.ColorKey(), c)
}
