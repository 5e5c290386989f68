package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Task actions
	MoveLeft  key.Binding
	MoveRight key.Binding
	Select    key.Binding

	// Views
	DashboardView key.Binding
	InternalView  key.Binding
	ExternalView  key.Binding
	ProjectView   key.Binding
	PrevProject   key.Binding
	NextProject   key.Binding

	// AI planner
	Plan key.Binding

	// General
	Help       key.Binding
	ThemeCycle key.Binding
	Quit       key.Binding
	Cancel     key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
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
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),

		MoveLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "move left"),
		),
		MoveRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "move right"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),

		DashboardView: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		InternalView: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "internal"),
		),
		ExternalView: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "external"),
		),
		ProjectView: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "board"),
		),
		PrevProject: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev project"),
		),
		NextProject: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next project"),
		),

		Plan: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new AI plan"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ThemeCycle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.MoveLeft, k.MoveRight, k.Select},
		{k.DashboardView, k.InternalView, k.ExternalView, k.ProjectView},
		{k.PrevProject, k.NextProject, k.Plan},
		{k.ThemeCycle, k.Help, k.Quit},
	}
}
