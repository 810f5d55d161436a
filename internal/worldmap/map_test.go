package worldmap

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/wordrpg/internal/assets"
	"github.com/vovakirdan/wordrpg/internal/core"
	"github.com/vovakirdan/wordrpg/internal/tiles"
)

var (
	colRed   = color.NRGBA{R: 255, A: 255}
	colGreen = color.NRGBA{G: 255, A: 255}
	colBlue  = color.NRGBA{B: 255, A: 255}
)

func testTileset(t *testing.T) *tiles.Tileset {
	t.Helper()
	ts, err := tiles.NewTileset("test", []tiles.Tile{
		{ID: "marker", Symbol: 'M', Format: core.Format{Foreground: core.ColorRed}, Source: tiles.RGBOf(colRed)},
		{ID: "grass", Symbol: '"', Format: core.Format{Foreground: core.ColorGreen}, Source: tiles.RGBOf(colGreen)},
		{ID: "water", Symbol: ' ', Format: core.Format{Background: core.ColorBlue}, Source: tiles.RGBOf(colBlue)},
	})
	if err != nil {
		t.Fatalf("NewTileset() error = %v", err)
	}
	return ts
}

// fillImage returns a w x h image painted with fill.
func fillImage(w, h int, fill color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill)
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

type diagRecorder struct {
	kinds []core.DiagKind
}

func (d *diagRecorder) Report(kind core.DiagKind, _ string, _ ...any) {
	d.kinds = append(d.kinds, kind)
}

func TestLoadOrientationGolden(t *testing.T) {
	// 3x2 image, all grass, one marker per probe.
	probes := []struct {
		x, y     int
		col, row int
	}{
		{0, 0, 0, 0}, // top-left
		{2, 0, 2, 0}, // top-right
		{0, 1, 0, 1}, // bottom-left
		{2, 1, 2, 1}, // bottom-right
		{1, 1, 1, 1},
	}

	for _, p := range probes {
		img := fillImage(3, 2, colGreen)
		img.Set(p.x, p.y, colRed)

		m, err := NewLoader(testTileset(t), nil).Load(writePNG(t, img))
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		for col := 0; col < 3; col++ {
			for row := 0; row < 2; row++ {
				tile := m.Get(col, row)
				wantMarker := col == p.col && row == p.row
				if (tile.ID == "marker") != wantMarker {
					t.Errorf("pixel (%d,%d): Get(%d, %d) = %q", p.x, p.y, col, row, tile.ID)
				}
			}
		}
	}
}

func TestLoadSize(t *testing.T) {
	tests := []struct{ w, h int }{{3, 2}, {1, 5}, {7, 1}, {4, 4}}

	for _, tc := range tests {
		m, err := NewLoader(testTileset(t), nil).FromImage(fillImage(tc.w, tc.h, colGreen))
		if err != nil {
			t.Fatalf("FromImage() error = %v", err)
		}
		cols, rows := m.Size()
		if cols != tc.w || rows != tc.h {
			t.Errorf("Size() = (%d, %d), expected (%d, %d)", cols, rows, tc.w, tc.h)
		}
		known, unknown := m.Count()
		if known+unknown != tc.w*tc.h || unknown != 0 {
			t.Errorf("Count() = (%d, %d) for %dx%d", known, unknown, tc.w, tc.h)
		}
	}
}

func TestLoadUnknownColor(t *testing.T) {
	img := fillImage(2, 2, colGreen)
	img.Set(1, 0, color.NRGBA{R: 12, G: 34, B: 56, A: 255})

	rec := &diagRecorder{}
	m, err := NewLoader(testTileset(t), rec).FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}

	if m.Get(1, 0) != nil {
		t.Errorf("Get(1, 0) = %v, expected empty cell", m.Get(1, 0))
	}
	if m.Get(0, 0) == nil || m.Get(1, 1) == nil {
		t.Error("known colors should still load")
	}
	if len(rec.kinds) != 1 || rec.kinds[0] != core.DiagUnknownColor {
		t.Errorf("reports = %v, expected one %q", rec.kinds, core.DiagUnknownColor)
	}
}

func TestLoadIgnoresAlpha(t *testing.T) {
	img := fillImage(1, 1, color.NRGBA{G: 255, A: 40})

	m, err := NewLoader(testTileset(t), nil).FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if tile := m.Get(0, 0); tile == nil || tile.ID != "grass" {
		t.Errorf("Get(0, 0) = %v, expected grass", tile)
	}
}

func TestLoadBMP(t *testing.T) {
	img := fillImage(2, 3, colBlue)
	img.Set(1, 2, colRed)

	path := filepath.Join(t.TempDir(), "map.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := bmp.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	m, err := NewLoader(testTileset(t), nil).Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Get(1, 2).ID != "marker" || m.Get(0, 0).ID != "water" {
		t.Errorf("unexpected tiles: (1,2)=%q (0,0)=%q", m.Get(1, 2).ID, m.Get(0, 0).ID)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(testTileset(t), nil).Load(filepath.Join(t.TempDir(), "missing.png"))

	var loadErr *assets.AssetLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load() error = %v, expected *assets.AssetLoadError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist: %v", err)
	}
}

func TestLoadTileScale(t *testing.T) {
	// 6x4 pixels in 2x2 blocks: 3x2 tiles, marker block at tile (2, 1).
	img := fillImage(6, 4, colGreen)
	for y := 2; y < 4; y++ {
		for x := 4; x < 6; x++ {
			img.Set(x, y, colRed)
		}
	}

	l := NewLoader(testTileset(t), nil)
	l.TileScale = 2
	m, err := l.FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}

	cols, rows := m.Size()
	if cols != 3 || rows != 2 {
		t.Fatalf("Size() = (%d, %d), expected (3, 2)", cols, rows)
	}
	if m.Get(2, 1).ID != "marker" || m.Get(0, 0).ID != "grass" {
		t.Errorf("scaled tiles: (2,1)=%v (0,0)=%v", m.Get(2, 1), m.Get(0, 0))
	}
}

func TestLoadTileScaleTooLarge(t *testing.T) {
	l := NewLoader(testTileset(t), nil)
	l.TileScale = 8

	_, err := l.FromImage(fillImage(4, 4, colGreen))
	if !errors.Is(err, ErrTileScale) {
		t.Errorf("FromImage() error = %v, expected ErrTileScale", err)
	}
}

func TestTransformComposesToTranspose(t *testing.T) {
	grid := [][]int{
		{1, 2, 3},
		{4, 5, 6},
	}

	mirrored := mirrorRows(grid)
	if mirrored[0][0] != 4 || mirrored[1][0] != 1 {
		t.Errorf("mirrorRows() = %v", mirrored)
	}

	got := toMapSpace(grid)
	expected := [][]int{{1, 4}, {2, 5}, {3, 6}}
	if len(got) != len(expected) {
		t.Fatalf("toMapSpace() = %v, expected %v", got, expected)
	}
	for c := range expected {
		for r := range expected[c] {
			if got[c][r] != expected[c][r] {
				t.Errorf("toMapSpace()[%d][%d] = %d, expected %d", c, r, got[c][r], expected[c][r])
			}
		}
	}
}

func TestReshape(t *testing.T) {
	rows := reshape([]int{1, 2, 3, 4, 5, 6}, 2)
	if len(rows) != 3 || rows[2][1] != 6 {
		t.Errorf("reshape() = %v", rows)
	}
	if reshape([]int{1}, 0) != nil {
		t.Error("reshape with zero width should return nil")
	}
}

func TestSegment(t *testing.T) {
	ts := testTileset(t)
	red, _ := ts.Get("marker")
	green, _ := ts.Get("grass")

	// 4x3 map with marker at (3, 2).
	grid := make([][]*tiles.Tile, 3)
	for y := range grid {
		grid[y] = []*tiles.Tile{green, green, green, green}
	}
	grid[2][3] = red
	m := FromTiles(grid)

	tests := []struct {
		name       string
		size       Size
		offset     Point
		markerAt   *Point
		emptyCells int
	}{
		{"inside", Size{2, 2}, Point{2, 1}, &Point{1, 1}, 0},
		{"whole map", Size{4, 3}, Point{0, 0}, &Point{3, 2}, 0},
		{"past bottom right", Size{3, 3}, Point{2, 1}, &Point{1, 1}, 5},
		{"negative offset", Size{2, 2}, Point{-1, -1}, nil, 3},
		{"fully outside", Size{2, 2}, Point{10, 10}, nil, 4},
		{"negative size", Size{-2, 3}, Point{0, 0}, nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seg := m.Segment(tc.size, tc.offset)

			cols, rows := seg.Size()
			if cols != core.Max(tc.size.Cols, 0) || rows != core.Max(tc.size.Rows, 0) {
				t.Fatalf("Size() = (%d, %d), expected %v", cols, rows, tc.size)
			}
			if _, empty := seg.Count(); empty != tc.emptyCells {
				t.Errorf("empty cells = %d, expected %d", empty, tc.emptyCells)
			}
			if tc.markerAt != nil && seg.Get(tc.markerAt.Col, tc.markerAt.Row) != red {
				t.Errorf("marker not at %v", *tc.markerAt)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	ts := testTileset(t)
	red, _ := ts.Get("marker")
	water, _ := ts.Get("water")

	m := FromTiles([][]*tiles.Tile{
		{red, nil},
		{water, red},
	})

	var dropped int
	dst := core.NewScreen(3, 3).WithReporter(core.ReporterFunc(func(core.DiagKind, string, ...any) {
		dropped++
	}))
	dst.Fill('.')

	n := m.Draw(dst, 1, 1)
	if n != 4 {
		t.Errorf("Draw() = %d, expected 4", n)
	}
	expected := "...\n.M \n. M"
	if dst.String() != expected {
		t.Errorf("String() = %q, expected %q", dst.String(), expected)
	}
	if got := dst.GetCell(1, 2).Format; got != water.Format {
		t.Errorf("water space should keep its background, got %+v", got)
	}
	if !dst.GetCell(2, 1).Format.Neutral() {
		t.Error("empty cell should be neutral")
	}

	if n := m.Draw(dst, 2, 2); n != 1 || dropped != 3 {
		t.Errorf("Draw() off edge wrote %d, dropped %d; expected 1 and 3", n, dropped)
	}
}

func TestMapScreen(t *testing.T) {
	ts := testTileset(t)
	green, _ := ts.Get("grass")

	s := FromTiles([][]*tiles.Tile{{green, green, green}}).Screen(nil)
	if s.Width() != 3 || s.Height() != 1 || s.String() != `"""` {
		t.Errorf("Screen() = %dx%d %q", s.Width(), s.Height(), s.String())
	}
}
