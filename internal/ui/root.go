package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/napat/kanri/internal/app"
	"github.com/napat/kanri/internal/ui/theme"
	"github.com/napat/kanri/internal/ui/views"
)

// RootModel is the top-level bubbletea model that delegates to views
type RootModel struct {
	app  *app.App
	keys KeyMap
	help help.Model

	width  int
	height int

	view            View
	activeProjectID string

	dashboard    views.DashboardView
	internalView views.TableView
	externalView views.TableView
	board        views.BoardView

	planner     views.PlannerView
	plannerOpen bool
	planSeq     int

	themeIndex int

	statusMsg string
	errorMsg  string
}

// NewRootModel creates the root model
func NewRootModel(a *app.App) RootModel {
	m := RootModel{
		app:  a,
		keys: DefaultKeyMap(),
		help: help.New(),

		dashboard:    views.NewDashboardView(a.Store),
		internalView: views.NewTableView(a.Store, "INTERNAL", "Internal Tasks"),
		externalView: views.NewTableView(a.Store, "EXTERNAL", "External Tasks"),
		board:        views.NewBoardView(a.Store),
		planner:      views.NewPlannerView(a.Planner),
	}

	if projects := a.Store.Projects(); len(projects) > 0 {
		m.activeProjectID = projects[0].ID
		m.board = m.board.SetProject(m.activeProjectID)
	}

	switch a.Cfg.View {
	case "internal":
		m.view = ViewInternal
	case "external":
		m.view = ViewExternal
	case "project":
		m.view = ViewProject
	default:
		m.view = ViewDashboard
	}

	for i, th := range theme.Available() {
		if th.Name == theme.Current.Theme.Name {
			m.themeIndex = i
		}
	}

	return m
}

// Init initializes the root model
func (m RootModel) Init() tea.Cmd {
	return tea.Batch(
		m.dashboard.Init(),
		m.planner.Init(),
	)
}

// Update handles all messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		contentHeight := msg.Height - 4
		m.dashboard = m.dashboard.SetSize(msg.Width, contentHeight)
		m.internalView = m.internalView.SetSize(msg.Width, contentHeight)
		m.externalView = m.externalView.SetSize(msg.Width, contentHeight)
		m.board = m.board.SetSize(msg.Width, contentHeight)
		m.planner = m.planner.SetSize(msg.Width, msg.Height)
		return m, nil

	case views.PlanResultMsg:
		if !m.plannerOpen || msg.Seq != m.planSeq {
			// The issuing modal instance was dismissed before the
			// response arrived, even if the modal has been reopened
			// since
			return m, nil
		}
		if msg.Err != nil {
			m.planner = m.planner.SetError(msg.Err)
			return m, nil
		}
		return m.materialize(msg)

	case views.ProjectSelectedMsg:
		m.activeProjectID = msg.ID
		m.board = m.board.SetProject(msg.ID)
		m.view = ViewProject
		return m, nil

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.delegate(msg)
}

// materialize applies an accepted plan and jumps to the new project's board
func (m RootModel) materialize(msg views.PlanResultMsg) (tea.Model, tea.Cmd) {
	project := m.app.Store.ApplyProposal(msg.Proposal, time.Now())
	m.plannerOpen = false
	m.activeProjectID = project.ID
	m.board = m.board.SetProject(project.ID)
	m.view = ViewProject
	m.statusMsg = fmt.Sprintf("Created project %q with %d tasks", project.Name, len(msg.Proposal.Tasks))
	m.internalView = m.internalView.Refresh()
	m.externalView = m.externalView.Refresh()
	return m, nil
}

// handleKey routes key presses
func (m RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.errorMsg = ""

	// Modal captures everything except escape
	if m.plannerOpen {
		if key.Matches(msg, m.keys.Cancel) {
			// Any in-flight result will be discarded on arrival
			m.plannerOpen = false
			return m, nil
		}
		return m.delegate(msg)
	}

	inputMode := m.activeView().IsInputMode()

	if !inputMode {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.ThemeCycle):
			available := theme.Available()
			m.themeIndex = (m.themeIndex + 1) % len(available)
			theme.SetTheme(available[m.themeIndex])
			m.statusMsg = "Theme: " + available[m.themeIndex].Name
			return m, nil

		case key.Matches(msg, m.keys.Plan):
			m.planSeq++
			var cmd tea.Cmd
			m.planner, cmd = m.planner.Open(m.planSeq)
			m.plannerOpen = true
			return m, cmd

		case key.Matches(msg, m.keys.DashboardView):
			m.view = ViewDashboard
			return m, nil

		case key.Matches(msg, m.keys.InternalView):
			m.view = ViewInternal
			m.internalView = m.internalView.Refresh()
			return m, nil

		case key.Matches(msg, m.keys.ExternalView):
			m.view = ViewExternal
			m.externalView = m.externalView.Refresh()
			return m, nil

		case key.Matches(msg, m.keys.ProjectView):
			m.view = ViewProject
			m.board = m.board.Refresh()
			return m, nil

		case key.Matches(msg, m.keys.PrevProject):
			return m.cycleProject(-1)

		case key.Matches(msg, m.keys.NextProject):
			return m.cycleProject(1)
		}
	} else if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	return m.delegate(msg)
}

// cycleProject steps the board to the previous or next project
func (m RootModel) cycleProject(step int) (tea.Model, tea.Cmd) {
	projects := m.app.Store.Projects()
	if len(projects) == 0 {
		return m, nil
	}

	idx := 0
	for i, p := range projects {
		if p.ID == m.activeProjectID {
			idx = i
			break
		}
	}
	idx = (idx + step + len(projects)) % len(projects)

	m.activeProjectID = projects[idx].ID
	m.board = m.board.SetProject(m.activeProjectID)
	m.view = ViewProject
	return m, nil
}

// delegate forwards a message to the active view
func (m RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var model tea.Model

	if m.plannerOpen {
		model, cmd = m.planner.Update(msg)
		m.planner = model.(views.PlannerView)
		return m, cmd
	}

	switch m.view {
	case ViewDashboard:
		model, cmd = m.dashboard.Update(msg)
		m.dashboard = model.(views.DashboardView)
	case ViewInternal:
		model, cmd = m.internalView.Update(msg)
		m.internalView = model.(views.TableView)
	case ViewExternal:
		model, cmd = m.externalView.Update(msg)
		m.externalView = model.(views.TableView)
	case ViewProject:
		model, cmd = m.board.Update(msg)
		m.board = model.(views.BoardView)
	}
	return m, cmd
}

// activeView returns the currently visible view
func (m RootModel) activeView() interface{ IsInputMode() bool } {
	if m.plannerOpen {
		return m.planner
	}
	switch m.view {
	case ViewInternal:
		return m.internalView
	case ViewExternal:
		return m.externalView
	case ViewProject:
		return m.board
	default:
		return m.dashboard
	}
}

// View renders the full screen
func (m RootModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.plannerOpen {
		return m.planner.View()
	}

	var content string
	switch m.view {
	case ViewDashboard:
		content = m.dashboard.View()
	case ViewInternal:
		content = m.internalView.View()
	case ViewExternal:
		content = m.externalView.View()
	case ViewProject:
		if m.app.Store.Project(m.activeProjectID) == nil {
			content = theme.Current.Styles.Panel.Render("Project not found")
		} else {
			content = m.board.View()
		}
	default:
		content = "Unknown view"
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// renderHeader renders the tab bar
func (m RootModel) renderHeader() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	tabs := []View{ViewDashboard, ViewInternal, ViewExternal, ViewProject}
	var parts []string
	for i, tab := range tabs {
		label := fmt.Sprintf(" %d:%s ", i+1, tab)
		style := lipgloss.NewStyle().Foreground(t.Subtle)
		if tab == m.view {
			style = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
		}
		parts = append(parts, style.Render(label))
	}

	title := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render("kanri")
	return styles.Header.Width(m.width).Render(title + "  " + strings.Join(parts, ""))
}

// renderFooter renders help plus any status or error line
func (m RootModel) renderFooter() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	line := m.help.View(m.keys)
	if m.errorMsg != "" {
		line = lipgloss.NewStyle().Foreground(t.Error).Render("✗ " + m.errorMsg)
	} else if m.statusMsg != "" {
		line = lipgloss.NewStyle().Foreground(t.Success).Render("✓ " + m.statusMsg)
	}

	return styles.Footer.Width(m.width).Render(line)
}

// Run starts the TUI
func Run(a *app.App) error {
	if os.Getenv("KANRI_DEBUG") == "1" {
		f, err := tea.LogToFile("kanri-debug.log", "debug")
		if err == nil {
			defer f.Close()
		}
	}

	p := tea.NewProgram(NewRootModel(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
