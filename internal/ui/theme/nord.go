package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Nord is the default theme, based on the Nord palette
var Nord = Theme{
	Name: "nord",

	Background: lipgloss.Color("#2E3440"),
	Foreground: lipgloss.Color("#D8DEE9"),
	Subtle:     lipgloss.Color("#4C566A"),
	Highlight:  lipgloss.Color("#434C5E"),
	Border:     lipgloss.Color("#3B4252"),

	Primary:   lipgloss.Color("#88C0D0"),
	Secondary: lipgloss.Color("#81A1C1"),
	Success:   lipgloss.Color("#A3BE8C"),
	Warning:   lipgloss.Color("#EBCB8B"),
	Error:     lipgloss.Color("#BF616A"),
	Info:      lipgloss.Color("#5E81AC"),

	PriorityLow:    lipgloss.Color("#81A1C1"),
	PriorityMedium: lipgloss.Color("#EBCB8B"),
	PriorityHigh:   lipgloss.Color("#BF616A"),

	StatusTodo:       lipgloss.Color("#4C566A"),
	StatusInProgress: lipgloss.Color("#5E81AC"),
	StatusDone:       lipgloss.Color("#A3BE8C"),

	CategoryInternal: lipgloss.Color("#B48EAD"),
	CategoryExternal: lipgloss.Color("#D08770"),

	Palette: map[string]lipgloss.Color{
		"indigo":  lipgloss.Color("#5E81AC"),
		"emerald": lipgloss.Color("#A3BE8C"),
		"blue":    lipgloss.Color("#88C0D0"),
		"rose":    lipgloss.Color("#BF616A"),
		"purple":  lipgloss.Color("#B48EAD"),
		"amber":   lipgloss.Color("#EBCB8B"),
	},
}
