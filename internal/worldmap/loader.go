package worldmap

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/gift"

	"github.com/vovakirdan/wordrpg/internal/assets"
	"github.com/vovakirdan/wordrpg/internal/core"
	"github.com/vovakirdan/wordrpg/internal/tiles"
)

// ErrTileScale is returned when the tile scale does not fit the image.
var ErrTileScale = errors.New("invalid tile scale")

// Loader turns map images into Maps using a tileset's color key.
type Loader struct {
	Tileset  *tiles.Tileset
	Reporter core.Reporter

	// TileScale is the edge length in pixels of one tile in the image.
	// Values below 2 read one pixel per tile.
	TileScale int
}

// NewLoader creates a loader for the given tileset.
// A nil reporter discards diagnostics.
func NewLoader(ts *tiles.Tileset, r core.Reporter) *Loader {
	if r == nil {
		r = core.Discard
	}
	return &Loader{Tileset: ts, Reporter: r, TileScale: 1}
}

// Load decodes the image at path and converts it to a Map.
// A missing or undecodable file returns an *assets.AssetLoadError.
func (l *Loader) Load(path string) (*Map, error) {
	img, err := assets.LoadImage(path)
	if err != nil {
		return nil, err
	}

	m, err := l.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("loading map %s: %w", path, err)
	}
	return m, nil
}

// FromImage converts a decoded image to a Map of the image's size (after
// tile scaling). Pixels whose color has no tile become empty cells and are
// reported; they never stop the load.
func (l *Loader) FromImage(img image.Image) (*Map, error) {
	img, err := l.scale(img)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	if width == 0 || height == 0 {
		return emptyMap(width, height), nil
	}

	key := l.Tileset.ColorKey()
	pixels := make([]*tiles.Tile, 0, width*height)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := tiles.RGBOf(img.At(x, y))
			t, ok := l.Tileset.Resolve(key, c)
			if !ok {
				l.Reporter.Report(core.DiagUnknownColor, "color not in map key",
					"color", c.String(), "x", x-b.Min.X, "y", y-b.Min.Y)
			}
			pixels = append(pixels, t)
		}
	}

	return FromTiles(reshape(pixels, width)), nil
}

// scale downsamples img so that each TileScale x TileScale block becomes one
// pixel. Nearest-neighbour sampling keeps block colors exact.
func (l *Loader) scale(img image.Image) (image.Image, error) {
	if l.TileScale < 2 {
		return img, nil
	}

	b := img.Bounds()
	w, h := b.Dx()/l.TileScale, b.Dy()/l.TileScale
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: %d for %dx%d image", ErrTileScale, l.TileScale, b.Dx(), b.Dy())
	}

	g := gift.New(gift.Resize(w, h, gift.NearestNeighborResampling))
	dst := image.NewNRGBA(g.Bounds(b))
	g.Draw(dst, img)
	return dst, nil
}
