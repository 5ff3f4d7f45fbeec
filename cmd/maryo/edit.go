package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maryo/internal/levelfile"
	"github.com/vovakirdan/tui-maryo/internal/objects"
	"github.com/vovakirdan/tui-maryo/internal/platform/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit <level.xml> <index>",
	Short: "Edit the text of a text box",
	Long: `Open the text of the text box at the given object index in an
editor and save the level on ctrl+s. Esc leaves the file unchanged.

Examples:
  maryo edit levels/intro.xml 0`,
	Args: cobra.ExactArgs(2),
	Run:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) {
	path := args[0]
	index, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid index %q\n", args[1])
		os.Exit(1)
	}

	cfg := loadConfig()
	lvl, err := levelfile.NewLoader(cfg, stderrLogger()).LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	obj, err := levelfile.ObjectAt(lvl, index)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	box, ok := obj.(*objects.TextBox)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: object %d of %s is not a text box\n", index, path)
		os.Exit(1)
	}

	// Edit at the size of the text box window, so lines wrap as they will in the game.
	width, height := box.WindowSize()
	title := fmt.Sprintf("%s - %s #%d", lvl.Settings.Name, box.Name(), index)
	text, saved, err := tui.RunEditor(title, box.Text(), width-2, height-2)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !saved {
		fmt.Println("Cancelled, nothing saved.")
		return
	}

	box.SetText(text)
	if err := levelfile.SaveFile(path, lvl); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s\n", path)
}
