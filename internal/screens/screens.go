// Package screens composes the screens the CLI can show: text art loaded
// from assets, frames, menus, scattered words and the world map.
// Every screen registers itself with the registry in init().
package screens

import (
	"embed"
	"errors"
	"io/fs"
	"math/rand"
	"os"

	"github.com/vovakirdan/wordrpg/internal/assets"
	"github.com/vovakirdan/wordrpg/internal/config"
	"github.com/vovakirdan/wordrpg/internal/core"
	"github.com/vovakirdan/wordrpg/internal/registry"
	"github.com/vovakirdan/wordrpg/internal/worldmap"
)

//go:embed assets/*.txt
var embedded embed.FS

// Text asset names, relative to the asset directory.
const (
	SplashFile = "splash.txt"
	FrameFile  = "frame.txt"
	TitleFile  = "title.txt"
)

// SplashFooter is written under the splash art.
const SplashFooter = "<<  COMBOY GAMING - 2018  >>"

// ErrNoMap is returned by the map screen when no image was configured.
var ErrNoMap = errors.New("no map image configured")

const (
	wordCount = 30
	word      = "WORDS"
)

// Title art position inside the frame.
const (
	titleX = 20
	titleY = 8
)

var (
	splashFormat = core.Format{Foreground: core.ColorRed}
	frameFormat  = core.Format{Foreground: core.ColorCyan, Background: core.ColorBlue}
	titleFormat  = core.Format{Foreground: core.ColorCyan, Background: core.ColorMagenta}
	headerFormat = core.Format{Foreground: core.ColorRed}
)

// screen adapts a build function to registry.Screen.
type screen struct {
	id    string
	title string
	build func(cfg core.RuntimeConfig) (*core.Screen, error)
}

func (s screen) ID() string    { return s.id }
func (s screen) Title() string { return s.title }

func (s screen) Build(cfg core.RuntimeConfig) (*core.Screen, error) {
	return s.build(cfg)
}

func register(id, title string, build func(cfg core.RuntimeConfig) (*core.Screen, error)) {
	registry.Register(id, func() registry.Screen {
		return screen{id: id, title: title, build: build}
	})
}

func init() {
	register("empty", "Empty screen", Empty)
	register("fill", "Filled screen", Fill)
	register("splash", "Splash art", Splash)
	register("frame", "Window frame", Frame)
	register("menu", "Menu frame with header", Menu)
	register("title", "Title art in the frame", Title)
	register("random-words", "Scattered words", RandomWords)
	register("map", "World map viewport", MapView)
}

// blank returns a cfg-sized buffer of neutral spaces.
func blank(cfg core.RuntimeConfig) *core.Screen {
	return core.NewScreen(cfg.ScreenW, cfg.ScreenH).WithReporter(cfg.Diagnostics())
}

// textFS returns where text assets are read from: the configured asset
// directory, or the embedded copies.
func textFS(cfg core.RuntimeConfig) fs.FS {
	if cfg.AssetDir != "" {
		return os.DirFS(cfg.AssetDir)
	}
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err) // the embed pattern guarantees the directory
	}
	return sub
}

// loadText reads a text asset into a buffer sized to its longest line.
func loadText(cfg core.RuntimeConfig, name string) (*core.Screen, error) {
	enc := cfg.Encoding
	if enc == "" {
		enc = assets.DefaultEncoding
	}
	lines, err := assets.LoadTextFS(textFS(cfg), name, enc)
	if err != nil {
		return nil, err
	}
	return core.ScreenFromLines(lines).WithReporter(cfg.Diagnostics()), nil
}

// Empty is a screen of spaces.
func Empty(cfg core.RuntimeConfig) (*core.Screen, error) {
	s := blank(cfg)
	s.Fill(' ')
	return s, nil
}

// Fill is a screen of '#'.
func Fill(cfg core.RuntimeConfig) (*core.Screen, error) {
	s := blank(cfg)
	s.Fill('#')
	return s, nil
}

// Splash draws the splash art in red with the footer centered on the
// last row.
func Splash(cfg core.RuntimeConfig) (*core.Screen, error) {
	art, err := loadText(cfg, SplashFile)
	if err != nil {
		return nil, err
	}

	s := blank(cfg)
	s.WriteBuffer(0, 0, art, core.WriteOptions{Format: splashFormat})
	s.DrawTextCentered(cfg.ScreenH-1, SplashFooter, core.WriteOptions{Format: splashFormat})
	return s, nil
}

// Frame draws the window frame in cyan on blue.
func Frame(cfg core.RuntimeConfig) (*core.Screen, error) {
	frame, err := loadText(cfg, FrameFile)
	if err != nil {
		return nil, err
	}

	s := blank(cfg)
	s.WriteBuffer(0, 0, frame, core.WriteOptions{Format: frameFormat})
	return s, nil
}

// Menu is the frame with the configured header centered on the top row.
func Menu(cfg core.RuntimeConfig) (*core.Screen, error) {
	s, err := Frame(cfg)
	if err != nil {
		return nil, err
	}
	s.DrawTextCentered(0, "> "+cfg.Header+" <", core.WriteOptions{Format: headerFormat})
	return s, nil
}

// Title is the frame with the title art inside it.
func Title(cfg core.RuntimeConfig) (*core.Screen, error) {
	s, err := Frame(cfg)
	if err != nil {
		return nil, err
	}
	art, err := loadText(cfg, TitleFile)
	if err != nil {
		return nil, err
	}
	s.WriteBuffer(titleX, titleY, art, core.WriteOptions{Format: titleFormat})
	return s, nil
}

// RandomWords scatters copies of a word over the screen. The layout is fixed
// by cfg.Seed.
func RandomWords(cfg core.RuntimeConfig) (*core.Screen, error) {
	s := blank(cfg)
	if s.Width() == 0 || s.Height() == 0 {
		return s, nil
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	span := core.Max(1, s.Width()-len(word))
	for i := 0; i < wordCount; i++ {
		s.DrawText(rng.Intn(span), rng.Intn(s.Height()), word)
	}
	return s, nil
}

// MapView draws a viewport of the configured map inside the frame. The
// viewport fills the frame interior and starts at (cfg.MapCol, cfg.MapRow).
func MapView(cfg core.RuntimeConfig) (*core.Screen, error) {
	if cfg.MapPath == "" {
		return nil, ErrNoMap
	}

	ts, err := config.LoadTileset(cfg.TilesetPath)
	if err != nil {
		return nil, err
	}

	loader := worldmap.NewLoader(ts, cfg.Diagnostics())
	if cfg.TileScale > 0 {
		loader.TileScale = cfg.TileScale
	}
	m, err := loader.Load(cfg.MapPath)
	if err != nil {
		return nil, err
	}

	s, err := Frame(cfg)
	if err != nil {
		return nil, err
	}

	inner := worldmap.Size{Cols: s.Width() - 2, Rows: s.Height() - 2}
	seg := m.Segment(inner, worldmap.Point{Col: cfg.MapCol, Row: cfg.MapRow})
	s.WriteBuffer(1, 1, seg.Screen(cfg.Diagnostics()), core.WriteOptions{KeepSourceFormat: true})
	return s, nil
}
