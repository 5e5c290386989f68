package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/napat/kanri/internal/model"
	"github.com/napat/kanri/internal/store"
	"github.com/napat/kanri/internal/ui/theme"
)

// BoardColumn represents a column on the kanban board
type BoardColumn int

const (
	ColumnTodo BoardColumn = iota
	ColumnInProgress
	ColumnDone
)

var columnStatus = [3]model.Status{
	model.StatusTodo,
	model.StatusInProgress,
	model.StatusDone,
}

// BoardView is the kanban board for one project
type BoardView struct {
	store     *store.Store
	projectID string
	width     int
	height    int

	// Tasks organized by column
	columns [3][]model.Task

	// Navigation state
	currentColumn BoardColumn
	cursorRow     int
}

// NewBoardView creates a new kanban board view
func NewBoardView(s *store.Store) BoardView {
	return BoardView{store: s}
}

// Init initializes the board view
func (v BoardView) Init() tea.Cmd {
	return nil
}

// SetSize sets the view dimensions
func (v BoardView) SetSize(width, height int) BoardView {
	v.width = width
	v.height = height
	return v
}

// SetProject switches the board to another project and reloads it
func (v BoardView) SetProject(projectID string) BoardView {
	v.projectID = projectID
	v.cursorRow = 0
	v.currentColumn = ColumnTodo
	v.refresh()
	return v
}

// Refresh rebuilds the columns from current store state
func (v BoardView) Refresh() BoardView {
	v.refresh()
	return v
}

// refresh reorganizes the project's tasks into columns
func (v *BoardView) refresh() {
	v.columns = [3][]model.Task{}
	for _, t := range v.store.TasksForProject(v.projectID) {
		switch t.Status {
		case model.StatusInProgress:
			v.columns[ColumnInProgress] = append(v.columns[ColumnInProgress], t)
		case model.StatusDone:
			v.columns[ColumnDone] = append(v.columns[ColumnDone], t)
		default:
			v.columns[ColumnTodo] = append(v.columns[ColumnTodo], t)
		}
	}
	v.clampCursor()
}

// Update handles messages
func (v BoardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "h", "left":
			if v.currentColumn > 0 {
				v.currentColumn--
				v.clampCursor()
			}

		case "l", "right":
			if v.currentColumn < ColumnDone {
				v.currentColumn++
				v.clampCursor()
			}

		case "j", "down":
			if v.cursorRow < len(v.columns[v.currentColumn])-1 {
				v.cursorRow++
			}

		case "k", "up":
			if v.cursorRow > 0 {
				v.cursorRow--
			}

		case "g":
			v.cursorRow = 0

		case "G":
			if n := len(v.columns[v.currentColumn]); n > 0 {
				v.cursorRow = n - 1
			}

		case "H":
			return v.moveTask(-1)

		case "L":
			return v.moveTask(1)
		}
	}
	return v, nil
}

// moveTask moves the task under the cursor to an adjacent column
func (v BoardView) moveTask(direction int) (tea.Model, tea.Cmd) {
	col := v.columns[v.currentColumn]
	if len(col) == 0 || v.cursorRow >= len(col) {
		return v, nil
	}

	target := int(v.currentColumn) + direction
	if target < int(ColumnTodo) || target > int(ColumnDone) {
		return v, nil
	}

	task := col[v.cursorRow]
	v.store.MoveTask(task.ID, columnStatus[target], time.Now())
	v.refresh()

	// Follow the task into its new column
	v.currentColumn = BoardColumn(target)
	v.cursorRow = v.rowOf(task.ID)
	return v, nil
}

// rowOf finds a task's row in the current column
func (v *BoardView) rowOf(taskID string) int {
	for i, t := range v.columns[v.currentColumn] {
		if t.ID == taskID {
			return i
		}
	}
	return 0
}

// clampCursor ensures cursor is valid for the current column
func (v *BoardView) clampCursor() {
	n := len(v.columns[v.currentColumn])
	if v.cursorRow >= n {
		if n > 0 {
			v.cursorRow = n - 1
		} else {
			v.cursorRow = 0
		}
	}
}

// View renders the kanban board
func (v BoardView) View() string {
	if v.width == 0 || v.height == 0 {
		return "Loading..."
	}

	t := theme.Current.Theme
	styles := theme.Current.Styles

	project := v.store.Project(v.projectID)
	if project == nil {
		return styles.Panel.Render("Project not found")
	}

	// Project header
	nameStyle := lipgloss.NewStyle().
		Foreground(t.ProjectColor(project.Color)).
		Bold(true)
	header := nameStyle.Render(project.Name) + "  " +
		styles.Subtitle.Render(project.Description)

	columnNames := []string{"To Do", "In Progress", "Done"}
	columnColors := []lipgloss.Color{t.StatusTodo, t.StatusInProgress, t.StatusDone}

	colWidth := (v.width - 4) / 3
	if colWidth < 25 {
		colWidth = 25
	}

	headerStyle := func(i int, active bool) lipgloss.Style {
		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(columnColors[i]).
			Width(colWidth).
			Align(lipgloss.Center)
		if active {
			s = s.Background(t.Highlight)
		}
		return s
	}

	columnStyle := lipgloss.NewStyle().
		Width(colWidth).
		Height(v.height - 5).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	var headers []string
	for i := range v.columns {
		label := fmt.Sprintf("%s (%d)", columnNames[i], len(v.columns[i]))
		headers = append(headers, headerStyle(i, i == int(v.currentColumn)).Render(label))
	}
	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, headers...)

	today := time.Now()
	var cols []string
	for i := range v.columns {
		isActiveCol := i == int(v.currentColumn)

		var items []string
		for j, task := range v.columns[i] {
			isSelected := isActiveCol && j == v.cursorRow

			cardStyle := styles.Card.Width(colWidth - 4)
			if isSelected {
				cardStyle = styles.CardSelected.Width(colWidth - 4)
			}

			priorityChar := ""
			switch task.Priority {
			case model.PriorityHigh:
				priorityChar = lipgloss.NewStyle().Foreground(t.PriorityHigh).Render("▲")
			case model.PriorityMedium:
				priorityChar = lipgloss.NewStyle().Foreground(t.PriorityMedium).Render("●")
			case model.PriorityLow:
				priorityChar = lipgloss.NewStyle().Foreground(t.PriorityLow).Render("▽")
			}

			// Due hint for unfinished tasks
			var dueStr string
			dueLen := 0
			if r := task.Remaining(today); r.Kind != model.RemainingNone {
				dueStyle := lipgloss.NewStyle().Foreground(t.Subtle)
				if r.Kind == model.RemainingOverdue {
					dueStyle = lipgloss.NewStyle().Foreground(t.Error)
				}
				label := " (" + r.Label() + ")"
				dueStr = dueStyle.Render(label)
				dueLen = len(label)
			}

			maxTitleWidth := colWidth - 8 - dueLen
			if maxTitleWidth < 10 {
				maxTitleWidth = 10
			}
			title := runewidth.Truncate(task.Title, maxTitleWidth, "...")

			items = append(items, cardStyle.Render(fmt.Sprintf("%s %s%s", priorityChar, title, dueStr)))
		}

		content := strings.Join(items, "\n")
		if len(v.columns[i]) == 0 {
			content = lipgloss.NewStyle().
				Foreground(t.Subtle).
				Italic(true).
				Render("(empty)")
		}

		cs := columnStyle
		if isActiveCol {
			cs = cs.BorderForeground(t.Primary)
		}
		cols = append(cols, cs.Render(content))
	}
	columnsRow := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	footer := lipgloss.NewStyle().Foreground(t.Subtle).
		Render("h/l: column • j/k: nav • H/L: move task • [/]: switch project")

	return lipgloss.JoinVertical(lipgloss.Left, header, headerRow, columnsRow, footer)
}

// IsInputMode returns whether the view is in input mode
func (v BoardView) IsInputMode() bool {
	return false
}
