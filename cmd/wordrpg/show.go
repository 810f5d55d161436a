package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordrpg/internal/core"
	"github.com/vovakirdan/wordrpg/internal/platform/tui"
	"github.com/vovakirdan/wordrpg/internal/registry"
)

var flagHeader string

var showCmd = &cobra.Command{
	Use:   "show <screen>",
	Short: "Draw a screen",
	Long: `Build the named screen and draw it to the terminal.

Examples:
  wordrpg show splash
  wordrpg show menu --header "Main Menu"
  wordrpg show title --assets ./art`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&flagHeader, "header", "", "Menu header text (overrides display config)")
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown screen %q (run 'wordrpg list' to see available screens)", id)
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}
	if flagHeader != "" {
		cfg.Header = flagHeader
	}

	return draw(id, cfg)
}

// draw builds a registered screen and writes it to stdout.
func draw(id string, cfg core.RuntimeConfig) error {
	sc, err := registry.Create(id)
	if err != nil {
		return err
	}

	s, err := sc.Build(cfg)
	if err != nil {
		return fmt.Errorf("building %s: %w", id, err)
	}
	return tui.NewRenderer(os.Stdout).Draw(s)
}
