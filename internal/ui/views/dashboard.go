package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/napat/kanri/internal/model"
	"github.com/napat/kanri/internal/store"
	"github.com/napat/kanri/internal/ui/theme"
)

// ProjectSelectedMsg is emitted when a project is picked on the dashboard
type ProjectSelectedMsg struct {
	ID string
}

// DashboardView shows overall productivity: status counts, the status
// distribution and per-project progress bars
type DashboardView struct {
	store  *store.Store
	width  int
	height int

	// Cursor over the project progress rows
	cursor int
}

// NewDashboardView creates a new dashboard view
func NewDashboardView(s *store.Store) DashboardView {
	return DashboardView{store: s}
}

// Init initializes the dashboard view
func (v DashboardView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v DashboardView) SetSize(width, height int) DashboardView {
	v.width = width
	v.height = height
	return v
}

// Update handles messages
func (v DashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if v.cursor < len(v.store.Projects())-1 {
				v.cursor++
			}
		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
		case "enter":
			projects := v.store.Projects()
			if v.cursor < len(projects) {
				id := projects[v.cursor].ID
				return v, func() tea.Msg { return ProjectSelectedMsg{ID: id} }
			}
		}
	}
	return v, nil
}

// View renders the dashboard
func (v DashboardView) View() string {
	if v.width == 0 {
		return "Loading..."
	}

	styles := theme.Current.Styles

	counts := v.store.StatusCounts()
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	var sections []string
	sections = append(sections, styles.Title.Render("Dashboard"))
	sections = append(sections, styles.Subtitle.Render("Here's an overview of your productivity.")+"\n")

	// Metric cards
	sections = append(sections, v.renderCards(counts))

	// Status distribution
	sections = append(sections, "")
	sections = append(sections, styles.PanelTitle.Render("Task Status Distribution"))
	sections = append(sections, v.renderDistribution(counts, total))

	// Per-project progress
	sections = append(sections, "")
	sections = append(sections, styles.PanelTitle.Render("Progress by Project"))
	sections = append(sections, v.renderProgress())
	sections = append(sections, styles.Label.Render("j/k: select project • enter: open board"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v DashboardView) renderCards(counts []store.StatusCount) string {
	t := theme.Current.Theme

	cardWidth := (v.width - 8) / 3
	if cardWidth < 18 {
		cardWidth = 18
	}

	card := func(label string, count int, color lipgloss.Color) string {
		labelStyle := lipgloss.NewStyle().Foreground(t.Subtle)
		countStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
		return lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Width(cardWidth).
			Padding(0, 1).
			Render(labelStyle.Render(label) + "\n" + countStyle.Render(fmt.Sprintf("%d", count)))
	}

	var cards []string
	for _, c := range counts {
		switch c.Status {
		case model.StatusDone:
			cards = append(cards, card("Completed Tasks", c.Count, t.StatusDone))
		case model.StatusInProgress:
			cards = append(cards, card("In Progress", c.Count, t.StatusInProgress))
		default:
			cards = append(cards, card("To Do", c.Count, t.Foreground))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderDistribution renders a proportional segment bar plus a legend
func (v DashboardView) renderDistribution(counts []store.StatusCount, total int) string {
	t := theme.Current.Theme

	barWidth := v.width - 8
	if barWidth < 20 {
		barWidth = 20
	}

	if total == 0 {
		return lipgloss.NewStyle().Foreground(t.Subtle).Italic(true).Render("(no tasks)")
	}

	colorFor := func(s model.Status) lipgloss.Color {
		switch s {
		case model.StatusDone:
			return t.StatusDone
		case model.StatusInProgress:
			return t.StatusInProgress
		default:
			return t.StatusTodo
		}
	}

	var bar strings.Builder
	used := 0
	for i, c := range counts {
		w := c.Count * barWidth / total
		if i == len(counts)-1 {
			w = barWidth - used
		}
		used += w
		bar.WriteString(lipgloss.NewStyle().Foreground(colorFor(c.Status)).Render(strings.Repeat("█", w)))
	}

	var legend []string
	labels := map[model.Status]string{
		model.StatusDone:       "Done",
		model.StatusInProgress: "In Progress",
		model.StatusTodo:       "To Do",
	}
	for _, c := range counts {
		dot := lipgloss.NewStyle().Foreground(colorFor(c.Status)).Render("●")
		legend = append(legend, fmt.Sprintf("%s %s %d", dot, labels[c.Status], c.Count))
	}

	return bar.String() + "\n" + strings.Join(legend, "   ")
}

// renderProgress renders a completed/total stacked bar per project
func (v DashboardView) renderProgress() string {
	t := theme.Current.Theme

	progress := v.store.ProjectProgress()
	if len(progress) == 0 {
		return lipgloss.NewStyle().Foreground(t.Subtle).Italic(true).Render("(no projects)")
	}

	nameWidth := 0
	for _, p := range progress {
		if w := runewidth.StringWidth(p.Project.Name); w > nameWidth {
			nameWidth = w
		}
	}
	if nameWidth > 24 {
		nameWidth = 24
	}

	barWidth := v.width - nameWidth - 16
	if barWidth < 10 {
		barWidth = 10
	}

	var rows []string
	for i, p := range progress {
		name := runewidth.Truncate(p.Project.Name, nameWidth, "…")
		nameStyle := lipgloss.NewStyle().
			Foreground(t.ProjectColor(p.Project.Color)).
			Width(nameWidth)
		if i == v.cursor {
			nameStyle = nameStyle.Bold(true).Background(t.Highlight)
		}

		doneWidth := 0
		if p.Total > 0 {
			doneWidth = p.Done * barWidth / p.Total
		}
		bar := lipgloss.NewStyle().Foreground(t.StatusDone).Render(strings.Repeat("█", doneWidth)) +
			lipgloss.NewStyle().Foreground(t.Subtle).Render(strings.Repeat("░", barWidth-doneWidth))

		rows = append(rows, fmt.Sprintf("%s %s %d/%d", nameStyle.Render(name), bar, p.Done, p.Total))
	}
	return strings.Join(rows, "\n")
}

// IsInputMode returns whether the view is in input mode
func (v DashboardView) IsInputMode() bool {
	return false
}
