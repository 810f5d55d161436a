package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wordrpg/internal/tiles"
)

const (
	tilesetFile = "tileset.yaml"
	displayFile = "display.yaml"
)

// LoadTileset loads the map tileset.
// Search order: customPath -> ~/.wordrpg/configs/tileset.yaml -> ./configs/tileset.yaml -> embedded default
func LoadTileset(customPath string) (*tiles.Tileset, error) {
	var cfg TilesetConfig
	if err := loadYAML(customPath, tilesetFile, defaultTilesetYAML, &cfg); err != nil {
		if customPath != "" {
			return nil, err
		}
		return tiles.Biomes(), nil // Fallback to hardcoded if embed fails
	}

	ts, err := cfg.Tileset()
	if err != nil {
		return nil, fmt.Errorf("invalid tileset: %w", err)
	}
	return ts, nil
}

// LoadDisplay loads display settings.
// Search order: customPath -> ~/.wordrpg/configs/display.yaml -> ./configs/display.yaml -> embedded default
// Missing or non-positive screen dimensions fall back to the defaults.
func LoadDisplay(customPath string) (DisplayConfig, error) {
	var cfg DisplayConfig
	if err := loadYAML(customPath, displayFile, defaultDisplayYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultDisplayConfig(), nil
	}

	def := DefaultDisplayConfig()
	if cfg.Screen.Cols <= 0 || cfg.Screen.Rows <= 0 {
		cfg.Screen = def.Screen
	}
	if cfg.Encoding == "" {
		cfg.Encoding = def.Encoding
	}
	if cfg.TileScale <= 0 {
		cfg.TileScale = def.TileScale
	}
	return cfg, nil
}

// loadYAML decodes the first config found into out. A custom path that can't
// be read or parsed is an error; the user and local locations are skipped
// when absent or broken. Only a broken embedded default fails otherwise.
func loadYAML(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("failed to parse embedded %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wordrpg", "configs", filename)
}
