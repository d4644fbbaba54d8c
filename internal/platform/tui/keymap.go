package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chromaball/internal/input"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	ChangeColor key.Binding
	Reset       key.Binding
	Pause       key.Binding
	Screenshot  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ChangeColor, k.Reset, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ChangeColor, k.Reset, k.Pause},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "accelerate up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "accelerate down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "accelerate left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "accelerate right"),
		),
		ChangeColor: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "new color"),
		),
		Reset: key.NewBinding(
			key.WithKeys("esc", "r"),
			key.WithHelp("esc/r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ControllerKey translates a key message to an input controller key.
func (k KeyMap) ControllerKey(msg tea.KeyMsg) (input.Key, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return input.KeyUp, true
	case key.Matches(msg, k.Down):
		return input.KeyDown, true
	case key.Matches(msg, k.Left):
		return input.KeyLeft, true
	case key.Matches(msg, k.Right):
		return input.KeyRight, true
	case key.Matches(msg, k.ChangeColor):
		return input.KeySpace, true
	case key.Matches(msg, k.Reset):
		return input.KeyEsc, true
	}
	return 0, false
}

// isHoldKey reports whether k acts while held rather than on release.
func isHoldKey(k input.Key) bool {
	switch k {
	case input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight:
		return true
	default:
		return false
	}
}
