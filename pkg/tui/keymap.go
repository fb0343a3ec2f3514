package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the application.
type KeyMap struct {
	// Global
	Quit     key.Binding
	Escape   key.Binding
	Tab      key.Binding
	ShiftTab key.Binding

	// Navigation (Vim-style)
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	GoToTop key.Binding
	GoToEnd key.Binding

	// Selection
	Enter key.Binding

	// Playing
	Answer   key.Binding
	PageDown key.Binding
	PageUp   key.Binding

	// Result View
	Next       key.Binding
	Retry      key.Binding
	ReturnMenu key.Binding

	// Confirm dialogs
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),

		// Navigation (Vim-style)
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "collapse"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand"),
		),
		GoToTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		GoToEnd: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),

		// Selection
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),

		// Playing
		Answer: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "answer"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("ctrl+d", "pgdown"),
			key.WithHelp("ctrl+d", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("ctrl+u", "pgup"),
			key.WithHelp("ctrl+u", "scroll up"),
		),

		// Result View
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next game"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		ReturnMenu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),

		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "no"),
		),
	}
}

// DashboardKeys returns keybindings for the game list.
func (k KeyMap) DashboardKeys() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, withHelp(k.Enter, "play"), k.Quit}
}

// PlayingKeys returns keybindings while a game is running.
func (k KeyMap) PlayingKeys() []key.Binding {
	return []key.Binding{k.Answer, withHelp(k.Up, "choose"), withHelp(k.Enter, "answer"), withHelp(k.Escape, "leave"), k.Quit}
}

// ResultKeys returns keybindings for the result view. Next and Retry are
// shown only when offered.
func (k KeyMap) ResultKeys(canContinue, canRetry bool) []key.Binding {
	next, retry := k.Next, k.Retry
	next.SetEnabled(canContinue)
	retry.SetEnabled(canRetry)
	return []key.Binding{withHelp(k.Enter, "continue"), next, retry, k.ReturnMenu, k.Quit}
}

func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
