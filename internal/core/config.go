package core

// RuntimeConfig contains configuration passed to screens when they are built.
// Screens use this to adapt to terminal size and for deterministic layout.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for screens that scatter content

	Header   string // Menu header text
	Encoding string // Text asset encoding, e.g. "utf-8"
	AssetDir string // Directory overriding the embedded text screens

	MapPath     string // Image to load for the map screen
	TilesetPath string // Custom tileset YAML, empty for the default
	TileScale   int    // Pixels per tile edge in the map image
	MapCol      int    // Leftmost map column shown by the map screen
	MapRow      int    // Topmost map row shown by the map screen

	Reporter Reporter // Diagnostics sink, Discard if nil
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   25,
		Seed:      0, // 0 means use current time in platform layer
		Header:    "WordRPG",
		Encoding:  "utf-8",
		TileScale: 1,
		Reporter:  Discard,
	}
}

// Diagnostics returns the configured reporter, or Discard when unset.
func (c RuntimeConfig) Diagnostics() Reporter {
	if c.Reporter == nil {
		return Discard
	}
	return c.Reporter
}
