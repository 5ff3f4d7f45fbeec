package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EditorKeyMap defines the key bindings for the text editor.
type EditorKeyMap struct {
	Save   key.Binding
	Cancel key.Binding
}

// ShortHelp implements help.KeyMap.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultEditorKeyMap returns the editor bindings.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// EditorModel edits the text of a text box.
type EditorModel struct {
	title    string
	area     textarea.Model
	help     help.Model
	keys     EditorKeyMap
	saved    bool
	canceled bool
}

// NewEditorModel creates an editor preloaded with text. width and height
// size the text area to the text box window.
func NewEditorModel(title, text string, width, height int) EditorModel {
	ta := textarea.New()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.SetValue(text)
	ta.Focus()

	return EditorModel{
		title: title,
		area:  ta,
		help:  help.New(),
		keys:  DefaultEditorKeyMap(),
	}
}

// Init starts the cursor blinking.
func (m EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the editor.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Save):
			m.saved = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

var (
	editorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	editorBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	editorHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the editor.
func (m EditorModel) View() string {
	if m.saved || m.canceled {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		editorTitleStyle.Render(m.title),
		editorBoxStyle.Render(m.area.View()),
		editorHelpStyle.Render(m.help.View(m.keys)),
	)
}

// Value returns the edited text.
func (m EditorModel) Value() string { return m.area.Value() }

// Saved reports whether the user confirmed the edit.
func (m EditorModel) Saved() bool { return m.saved }

// RunEditor edits text and returns the result. ok is false when the
// user canceled.
func RunEditor(title, text string, width, height int) (result string, ok bool, err error) {
	p := tea.NewProgram(NewEditorModel(title, text, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isEditor := final.(EditorModel)
	if !isEditor || !m.Saved() {
		return text, false, nil
	}
	return m.Value(), true, nil
}
