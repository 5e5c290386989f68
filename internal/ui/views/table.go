package views

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/napat/kanri/internal/model"
	"github.com/napat/kanri/internal/store"
	"github.com/napat/kanri/internal/ui/theme"
)

// TableView is the tabular task list for one category partition
type TableView struct {
	store    *store.Store
	category model.Category
	title    string

	table  table.Model
	width  int
	height int
}

// NewTableView creates a table view over one category
func NewTableView(s *store.Store, category model.Category, title string) TableView {
	columns := []table.Column{
		{Title: "Project", Width: 18},
		{Title: "Task", Width: 28},
		{Title: "Assignee", Width: 12},
		{Title: "Start", Width: 10},
		{Title: "Due", Width: 10},
		{Title: "Done", Width: 10},
		{Title: "Remaining", Width: 15},
		{Title: "Priority", Width: 8},
		{Title: "Status", Width: 11},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
	)

	t := theme.Current.Theme
	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderBottom(true).
		Bold(true).
		Foreground(t.Primary)
	st.Selected = st.Selected.
		Foreground(t.Foreground).
		Background(t.Highlight).
		Bold(false)
	tbl.SetStyles(st)

	v := TableView{
		store:    s,
		category: category,
		title:    title,
		table:    tbl,
	}
	v.refresh()
	return v
}

// Init initializes the table view
func (v TableView) Init() tea.Cmd {
	return nil
}

// Refresh rebuilds the rows from current store state
func (v TableView) Refresh() TableView {
	v.refresh()
	return v
}

// SetSize sets the view dimensions
func (v TableView) SetSize(width, height int) TableView {
	v.width = width
	v.height = height
	v.table.SetHeight(height - 4)
	return v
}

// refresh rebuilds the table rows from the store
func (v *TableView) refresh() {
	tasks := v.store.TasksByCategory(v.category)
	today := time.Now()

	fd := func(d *time.Time) string {
		if d == nil {
			return "-"
		}
		return d.Format("2006-01-02")
	}

	rows := make([]table.Row, 0, len(tasks))
	for _, t := range tasks {
		projectName := "Unknown Project"
		if p := v.store.Project(t.ProjectID); p != nil {
			projectName = p.Name
		}

		assignee := t.Assignee
		if assignee == "" {
			assignee = "-"
		}

		rows = append(rows, table.Row{
			projectName,
			t.Title,
			assignee,
			fd(t.StartDate),
			fd(t.DueDate),
			fd(t.CompletedDate),
			t.Remaining(today).Label(),
			string(t.Priority),
			statusLabel(t.Status),
		})
	}
	v.table.SetRows(rows)
}

func statusLabel(s model.Status) string {
	switch s {
	case model.StatusInProgress:
		return "IN PROGRESS"
	default:
		return string(s)
	}
}

// Update handles messages
func (v TableView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the task table
func (v TableView) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	header := styles.Title.Render(v.title)
	count := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Render(fmt.Sprintf("%d items", len(v.table.Rows())))

	if len(v.table.Rows()) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true).
			Padding(1, 2).
			Render("No tasks found in this category.")
		return lipgloss.JoinVertical(lipgloss.Left, header, count, empty)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, count, v.table.View())
}

// IsInputMode returns whether the view is in input mode
func (v TableView) IsInputMode() bool {
	return false
}
