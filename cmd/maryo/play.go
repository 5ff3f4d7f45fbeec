package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maryo/internal/audio"
	"github.com/vovakirdan/tui-maryo/internal/core"
	"github.com/vovakirdan/tui-maryo/internal/platform/tui"
	"github.com/vovakirdan/tui-maryo/internal/storage"
)

var (
	flagPlayScript string
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play <level.xml>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls (defaults, see the keys section of the config):
  Left/Right  - Walk
  Space       - Jump
  Down        - Look down
  E           - Use the box next to you
  P           - Pause
  R           - Restart (after the run ended)
  Ctrl+S      - Screenshot
  Q/Ctrl+C    - Quit

In a text box:
  Up/Down             - Scroll
  E/Esc/Enter/Space   - Close

Examples:
  maryo play levels/intro.xml
  maryo play levels/intro.xml --script scripts/intro.go
  maryo play levels/intro.xml --script scripts/intro.go --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayScript, "script", "", "Level script to run after loading")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when its files change")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	logger, closeLog := fileLogger()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the level still works
		store = nil
	}

	runErr := tui.Run(tui.PlayOptions{
		Source: tui.LevelSource{
			Path:   args[0],
			Script: flagPlayScript,
			Config: cfg,
			Logger: logger,
		},
		Store: store,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Sink:   audio.NewBellSink(os.Stdout),
		Logger: logger,
		Watch:  flagWatch,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
