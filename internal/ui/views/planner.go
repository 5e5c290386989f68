package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/napat/kanri/internal/ai"
	"github.com/napat/kanri/internal/model"
	"github.com/napat/kanri/internal/ui/theme"
)

// PlanResultMsg carries the outcome of an AI planning request. Seq
// identifies the modal instance that issued the request; results from
// a dismissed instance carry a stale Seq and must be dropped.
type PlanResultMsg struct {
	Seq      int
	Proposal model.Proposal
	Err      error
}

// PlannerView is the modal that turns a free-text prompt into a project plan
type PlannerView struct {
	planner *ai.Client

	input   textarea.Model
	spinner spinner.Model

	// Only one request may be in flight at a time; seq tags that
	// request with the modal instance that issued it
	pending bool
	seq     int
	err     error

	width  int
	height int
}

// NewPlannerView creates the AI planner modal
func NewPlannerView(planner *ai.Client) PlannerView {
	ta := textarea.New()
	ta.Placeholder = "Describe the project you want to plan..."
	ta.SetHeight(4)
	ta.SetWidth(56)
	ta.ShowLineNumbers = false
	ta.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Current.Theme.Primary)

	return PlannerView{
		planner: planner,
		input:   ta,
		spinner: sp,
	}
}

// Init initializes the planner view
func (v PlannerView) Init() tea.Cmd {
	return textarea.Blink
}

// Open resets the modal for a fresh prompt. seq is the new instance's
// token; anything still in flight from an earlier instance settles
// with an older token and is discarded by the root.
func (v PlannerView) Open(seq int) (PlannerView, tea.Cmd) {
	v.input.Reset()
	v.err = nil
	v.pending = false
	v.seq = seq
	return v, v.input.Focus()
}

// Pending reports whether a request is in flight
func (v PlannerView) Pending() bool {
	return v.pending
}

// SetError surfaces a failed request and re-enables input
func (v PlannerView) SetError(err error) PlannerView {
	v.pending = false
	v.err = err
	v.input.Focus()
	return v
}

// SetSize sets the view dimensions
func (v PlannerView) SetSize(width, height int) PlannerView {
	v.width = width
	v.height = height
	w := width - 16
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	v.input.SetWidth(w)
	return v
}

// Update handles messages
func (v PlannerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter && !v.pending {
			prompt := strings.TrimSpace(v.input.Value())
			if prompt == "" {
				return v, nil
			}
			v.pending = true
			v.err = nil
			v.input.Blur()
			return v, tea.Batch(v.spinner.Tick, generatePlan(v.planner, prompt, v.seq))
		}

	case spinner.TickMsg:
		if v.pending {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if v.pending {
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// generatePlan runs the planning request off the UI loop
func generatePlan(planner *ai.Client, prompt string, seq int) tea.Cmd {
	return func() tea.Msg {
		proposal, err := planner.GeneratePlan(context.Background(), prompt)
		return PlanResultMsg{Seq: seq, Proposal: proposal, Err: err}
	}
}

// View renders the planner modal
func (v PlannerView) View() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	title := styles.PanelTitle.Render("Plan a Project with AI")

	var body string
	if v.pending {
		body = v.spinner.View() + " Generating plan..."
	} else {
		body = v.input.View()
	}

	hint := lipgloss.NewStyle().Foreground(t.Subtle).
		Render("enter: generate • esc: cancel")

	lines := []string{title, "", body, "", hint}
	if v.err != nil {
		errLine := lipgloss.NewStyle().Foreground(t.Error).
			Render("Error: " + v.err.Error())
		lines = []string{title, "", body, "", errLine, hint}
	}

	modal := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	if v.width > 0 && v.height > 0 {
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
	}
	return modal
}

// IsInputMode returns whether the view is in input mode
func (v PlannerView) IsInputMode() bool {
	return !v.pending
}
