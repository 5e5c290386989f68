package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Dracula theme, based on the Dracula palette
var Dracula = Theme{
	Name: "dracula",

	Background: lipgloss.Color("#282A36"),
	Foreground: lipgloss.Color("#F8F8F2"),
	Subtle:     lipgloss.Color("#6272A4"),
	Highlight:  lipgloss.Color("#44475A"),
	Border:     lipgloss.Color("#44475A"),

	Primary:   lipgloss.Color("#BD93F9"),
	Secondary: lipgloss.Color("#8BE9FD"),
	Success:   lipgloss.Color("#50FA7B"),
	Warning:   lipgloss.Color("#F1FA8C"),
	Error:     lipgloss.Color("#FF5555"),
	Info:      lipgloss.Color("#8BE9FD"),

	PriorityLow:    lipgloss.Color("#8BE9FD"),
	PriorityMedium: lipgloss.Color("#F1FA8C"),
	PriorityHigh:   lipgloss.Color("#FF5555"),

	StatusTodo:       lipgloss.Color("#6272A4"),
	StatusInProgress: lipgloss.Color("#8BE9FD"),
	StatusDone:       lipgloss.Color("#50FA7B"),

	CategoryInternal: lipgloss.Color("#BD93F9"),
	CategoryExternal: lipgloss.Color("#FFB86C"),

	Palette: map[string]lipgloss.Color{
		"indigo":  lipgloss.Color("#BD93F9"),
		"emerald": lipgloss.Color("#50FA7B"),
		"blue":    lipgloss.Color("#8BE9FD"),
		"rose":    lipgloss.Color("#FF79C6"),
		"purple":  lipgloss.Color("#BD93F9"),
		"amber":   lipgloss.Color("#FFB86C"),
	},
}
