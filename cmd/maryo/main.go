// maryo is a terminal side-scroller with scriptable level objects.
//
// Usage:
//
//	maryo list                          - List level object types
//	maryo play <level.xml>              - Play a level
//	maryo script <level.xml> <script>   - Run a level script and save the result
//	maryo edit <level.xml> <index>      - Edit the text of a text box
//	maryo scores [level]                - Show best results
//	maryo serve <level.xml>             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.maryo/scores.db)
//	--config <path>  - Use a custom game config YAML
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maryo/internal/config"

	// Import object packages to register them
	_ "github.com/vovakirdan/tui-maryo/internal/enemies"
	_ "github.com/vovakirdan/tui-maryo/internal/objects"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maryo",
	Short: "Maryo - a side-scroller in your terminal",
	Long: `Maryo is a terminal side-scroller. Levels are XML files, and Go
scripts can spawn and tune level objects at load time.

Available commands:
  list     - Show all level object types
  play     - Play a level
  script   - Run a level script headless and save the level
  edit     - Edit the text of a text box
  scores   - View best results
  serve    - Start SSH server for remote play

Examples:
  maryo list
  maryo play levels/intro.xml
  maryo play levels/intro.xml --script scripts/intro.go --watch
  maryo script levels/intro.xml scripts/intro.go -o /tmp/intro.xml
  maryo edit levels/intro.xml 0
  maryo scores intro`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maryo/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config or exits.
func loadConfig() config.GameConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// stderrLogger is used by commands that do not take over the terminal.
func stderrLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "maryo",
	})
}

// fileLogger writes to ~/.maryo/maryo.log so logs stay off the alt screen.
// It falls back to discarding when the file cannot be opened.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".maryo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "maryo.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "maryo",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
