package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maryo/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeScript string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve <level.xml>",
	Short: "Start the maryo SSH server",
	Long: `Start an SSH server where every connection plays the given level.

Each SSH connection gets its own copy of the level. Results are stored
per-server (all users share the same scores).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.maryo/host_key

Examples:
  maryo serve levels/intro.xml                  # Listen on :23234
  maryo serve levels/intro.xml --ssh :2222      # Listen on port 2222
  maryo serve levels/intro.xml --script scripts/intro.go

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.ExactArgs(1),
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeScript, "script", "", "Level script to run for every session")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, args []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Source: tui.LevelSource{
			Path:   args[0],
			Script: flagServeScript,
			Config: loadConfig(),
		},
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting maryo SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
