package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maryo/internal/config"
	"github.com/vovakirdan/tui-maryo/internal/core"
)

// KeyMap holds the play bindings built from the key preferences.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Jump       key.Binding
	Action     key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// NewKeyMap builds bindings from the configured keys. Arrow keys and
// WASD stay available for movement next to the preferences.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys(uniqueKeys(keys.Left, "a")...),
			key.WithHelp(keyName(keys.Left), "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(uniqueKeys(keys.Right, "d")...),
			key.WithHelp(keyName(keys.Right), "right"),
		),
		Up: key.NewBinding(
			key.WithKeys(uniqueKeys(keys.Up, "w")...),
			key.WithHelp(keyName(keys.Up), "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(uniqueKeys(keys.Down, "s")...),
			key.WithHelp(keyName(keys.Down), "look down"),
		),
		Jump: key.NewBinding(
			key.WithKeys(uniqueKeys(keys.Jump)...),
			key.WithHelp(keyName(keys.Jump), "jump"),
		),
		Action: key.NewBinding(
			key.WithKeys(uniqueKeys(keys.Action)...),
			key.WithHelp(keyName(keys.Action), "use"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Action, k.Pause, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Jump, k.Action},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// uniqueKeys drops empty and duplicate key names.
func uniqueKeys(keys ...string) []string {
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the configured preferences.
func NewKeyMapper(keys config.KeysConfig) *KeyMapper {
	return &KeyMapper{keys: NewKeyMap(keys)}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Action):
		return core.ActionUse, false
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}

	switch msg.String() {
	case "enter":
		return core.ActionConfirm, false
	case "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// IsHeld reports whether an action is a held movement key rather than
// a one-shot press.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionDown:
		return true
	}
	return false
}
