package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/level"
	"github.com/vovakirdan/tui-maryo/internal/levelfile"
	"github.com/vovakirdan/tui-maryo/internal/scripting"
)

// LevelSource describes where a level comes from: a level file and an
// optional script run against it after loading.
type LevelSource struct {
	Path   string
	Script string
	Config config.GameConfig
	Logger *log.Logger
}

// Load reads the level file and runs the script.
func (s LevelSource) Load() (*level.Level, error) {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	lvl, err := levelfile.NewLoader(s.Config, logger).LoadFile(s.Path)
	if err != nil {
		return nil, err
	}

	if s.Script != "" {
		rt := scripting.NewRuntime(lvl, logger.WithPrefix("script"))
		if err := scripting.NewEngine(rt, logger.WithPrefix("script")).RunFile(s.Script); err != nil {
			return nil, fmt.Errorf("tui: level %s: %w", lvl.ID, err)
		}
	}
	return lvl, nil
}

// Files returns the files the level is built from.
func (s LevelSource) Files() []string {
	files := []string{s.Path}
	if s.Script != "" {
		files = append(files, s.Script)
	}
	return files
}
