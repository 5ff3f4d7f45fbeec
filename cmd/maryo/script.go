package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maryo/internal/levelfile"
	"github.com/vovakirdan/tui-maryo/internal/platform/tui"
)

var (
	flagScriptOut string
	flagPersist   bool
)

var scriptCmd = &cobra.Command{
	Use:   "script <level.xml> <script.go>",
	Short: "Run a level script and save the level",
	Long: `Load a level, run a script against it without a terminal and write
the resulting level.

Objects a script creates are spawned and are not saved, unless --persist
is given. Without -o the level is written to stdout.

Examples:
  maryo script levels/intro.xml scripts/intro.go
  maryo script levels/intro.xml scripts/intro.go --persist -o levels/intro2.xml`,
	Args: cobra.ExactArgs(2),
	Run:  runScript,
}

func init() {
	scriptCmd.Flags().StringVarP(&flagScriptOut, "output", "o", "", "Write the level to this file")
	scriptCmd.Flags().BoolVar(&flagPersist, "persist", false, "Save objects the script created")
}

// spawnable is implemented by sprites whose spawned flag can be cleared.
type spawnable interface {
	SetSpawned(bool)
}

func runScript(cmd *cobra.Command, args []string) {
	src := tui.LevelSource{
		Path:   args[0],
		Script: args[1],
		Config: loadConfig(),
		Logger: stderrLogger(),
	}

	lvl, err := src.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagPersist {
		for _, s := range lvl.Sprites.Objects() {
			if sp, ok := s.(spawnable); ok {
				sp.SetSpawned(false)
			}
		}
	}

	if flagScriptOut == "" {
		err = levelfile.Save(os.Stdout, lvl)
	} else {
		err = levelfile.SaveFile(flagScriptOut, lvl)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
