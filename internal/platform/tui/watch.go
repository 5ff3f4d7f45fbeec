package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// reloadMsg is sent when a watched file changed.
type reloadMsg struct {
	path string
}

// watchErrMsg is sent when the watcher fails.
type watchErrMsg struct {
	err error
}

// fileWatcher reports changes to a fixed set of files. It watches their
// directories, since editors often replace a file instead of writing it.
type fileWatcher struct {
	w     *fsnotify.Watcher
	files map[string]bool
}

func newFileWatcher(files ...string) (*fileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create watcher: %w", err)
	}

	fw := &fileWatcher{w: w, files: make(map[string]bool)}
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("tui: %w", err)
		}
		fw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("tui: cannot watch %s: %w", dir, err)
		}
	}
	return fw, nil
}

// wait returns a command that blocks until a watched file changes.
func (fw *fileWatcher) wait() tea.Cmd {
	if fw == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-fw.w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				abs, err := filepath.Abs(ev.Name)
				if err != nil || !fw.files[abs] {
					continue
				}
				return reloadMsg{path: ev.Name}
			case err, ok := <-fw.w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}

func (fw *fileWatcher) Close() error {
	return fw.w.Close()
}
