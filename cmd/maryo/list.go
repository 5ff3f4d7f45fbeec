package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maryo/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all level object types",
	Long:  `Shows the object types a level file may use.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	types := registry.List()

	if len(types) == 0 {
		fmt.Println("No object types available.")
		return
	}

	fmt.Println("Object types:")
	fmt.Println()

	// Calculate column widths
	maxTypeLen := 4 // "Type" header
	for _, t := range types {
		if len(t.Type) > maxTypeLen {
			maxTypeLen = len(t.Type)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxTypeLen, "Type", "Name")
	fmt.Printf("  %-*s  %s\n", maxTypeLen, "----", "----")

	for _, t := range types {
		fmt.Printf("  %-*s  %s\n", maxTypeLen, t.Type, t.Name)
	}

	fmt.Println()
	fmt.Println("Use them as <object type=\"...\"> in a level file.")
}
