package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEditorSave(t *testing.T) {
	m := NewEditorModel("Intro - Text Box #0", "hello", 34, 7)

	next, _ := m.Update(runeKey("!"))
	m = next.(EditorModel)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(EditorModel)

	if !m.Saved() {
		t.Fatal("ctrl+s did not save")
	}
	if m.Value() != "hello!" {
		t.Errorf("Value() = %q, want %q", m.Value(), "hello!")
	}
	if cmd == nil {
		t.Fatal("save should quit the editor")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("save did not quit")
	}
}

func TestEditorCancel(t *testing.T) {
	m := NewEditorModel("t", "keep me", 34, 7)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(EditorModel)

	if m.Saved() {
		t.Error("esc should not save")
	}
	if m.View() != "" {
		t.Error("View() after leaving should be empty")
	}
}

func TestEditorKeepsNewlines(t *testing.T) {
	text := "line one\nline two"
	m := NewEditorModel("t", text, 34, 7)

	if m.Value() != text {
		t.Errorf("Value() = %q, want %q", m.Value(), text)
	}
}
