// wordrpg draws text-mode RPG screens and world maps in the terminal.
//
// Usage:
//
//	wordrpg list                 - List available screens
//	wordrpg show <screen>        - Draw a screen
//	wordrpg map <image>          - Draw a viewport of a map image
//	wordrpg tiles                - List the tiles of the active tileset
//
// Global flags:
//
//	--seed <value>       - RNG seed for screens that scatter content
//	--display <path>     - Custom display config YAML
//	--tileset <path>     - Custom tileset YAML
//	--encoding <name>    - Text asset encoding (default from display config)
//	--assets <dir>       - Directory overriding the embedded text screens
//	--log-level <level>  - Diagnostics level: debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordrpg/internal/config"
	"github.com/vovakirdan/wordrpg/internal/core"
	"github.com/vovakirdan/wordrpg/internal/diag"
	"github.com/vovakirdan/wordrpg/internal/platform/tui"

	// Import screens to register them
	_ "github.com/vovakirdan/wordrpg/internal/screens"
)

var (
	// Global flags
	flagSeed        int64
	flagDisplayPath string
	flagTilesetPath string
	flagEncoding    string
	flagAssetDir    string
	flagLogLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordrpg",
	Short: "WordRPG - text-mode RPG screens in your terminal",
	Long: `WordRPG draws character-cell screens in the terminal: splash art,
framed menus, title art and world maps decoded from images.

Available commands:
  list     - Show all available screens
  show     - Draw a screen
  map      - Draw a viewport of a map image
  tiles    - List the active tileset

Examples:
  wordrpg list
  wordrpg show splash
  wordrpg show random-words --seed 7
  wordrpg map world.png --col 40 --row 10
  wordrpg tiles --tileset ./dungeon.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDisplayPath, "display", "", "Path to custom display config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTilesetPath, "tileset", "", "Path to custom tileset YAML")
	rootCmd.PersistentFlags().StringVar(&flagEncoding, "encoding", "", "Text asset encoding (e.g. utf-8, latin1)")
	rootCmd.PersistentFlags().StringVar(&flagAssetDir, "assets", "", "Directory overriding the embedded text screens")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Diagnostics level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(tilesCmd)
}

// runtimeConfig assembles the config screens are built with from the display
// config, the terminal and the global flags.
func runtimeConfig() (core.RuntimeConfig, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return core.RuntimeConfig{}, fmt.Errorf("invalid --log-level: %w", err)
	}

	display, err := config.LoadDisplay(flagDisplayPath)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	cfg := core.DefaultConfig()
	display.Apply(&cfg)

	logger := diag.NewLogger(os.Stderr, level)
	if w, h := tui.TerminalSize(os.Stdout, cfg.ScreenW, cfg.ScreenH); w < cfg.ScreenW || h < cfg.ScreenH {
		logger.Warn("terminal smaller than screen, output will wrap",
			"terminal", fmt.Sprintf("%dx%d", w, h), "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	}

	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if flagEncoding != "" {
		cfg.Encoding = flagEncoding
	}
	if flagAssetDir != "" {
		cfg.AssetDir = flagAssetDir
	}
	cfg.TilesetPath = flagTilesetPath
	cfg.Reporter = diag.NewLogReporter(logger)
	return cfg, nil
}
