package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maryo/internal/storage"
)

func newTestScoreboard(t *testing.T) ScoreboardModel {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, s := range []struct {
		level string
		score int
	}{
		{"intro", 900},
		{"intro", 1200},
		{"castle", 500},
	} {
		if _, err := store.SaveScore(s.level, s.score); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	return NewScoreboardModel(store, nil, 100, 30)
}

func TestScoreboardLoadsLevels(t *testing.T) {
	m := newTestScoreboard(t)

	if len(m.levels) != 2 || m.levels[0] != "castle" || m.levels[1] != "intro" {
		t.Fatalf("levels = %v, want [castle intro]", m.levels)
	}
	if len(m.scores) != 1 || m.scores[0].Score != 500 {
		t.Errorf("scores = %+v, want castle's single result", m.scores)
	}
	if m.stats == nil || m.stats.Finishes != 1 {
		t.Errorf("stats = %+v, want one finish", m.stats)
	}
}

func TestScoreboardSwitchesLevels(t *testing.T) {
	m := newTestScoreboard(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.levelCursor != 1 {
		t.Fatalf("levelCursor = %d, want 1", m.levelCursor)
	}
	if len(m.scores) != 2 || m.scores[0].Score != 1200 {
		t.Errorf("intro scores = %+v, want best first", m.scores)
	}
	if !strings.Contains(m.View(), "HIGH SCORES - intro") {
		t.Error("title does not name the selected level")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.levelCursor != 0 {
		t.Errorf("tab past the last level: levelCursor = %d, want 0", m.levelCursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.levelCursor != 1 {
		t.Errorf("shift+tab from the first level: levelCursor = %d, want 1", m.levelCursor)
	}
}

func TestScoreboardBackQuits(t *testing.T) {
	m := newTestScoreboard(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc did not quit")
	}
	if m.View() != "" {
		t.Error("View() after quitting should be empty")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, []string{"intro"}, 60, 20)

	if len(m.scores) != 0 {
		t.Errorf("scores = %+v, want none", m.scores)
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("empty scoreboard should say there are no scores")
	}
}
