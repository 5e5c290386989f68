package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/napat/kanri/internal/ai"
	"github.com/napat/kanri/internal/app"
	"github.com/napat/kanri/internal/model"
	"github.com/napat/kanri/internal/store"
	"github.com/napat/kanri/internal/ui/views"
)

func newTestRoot(t *testing.T) (RootModel, *app.App) {
	t.Helper()
	s := store.New()
	s.Seed(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local))
	a := &app.App{Store: s, Planner: ai.New("", "")}

	m := NewRootModel(a)
	return drive(t, m, tea.WindowSizeMsg{Width: 100, Height: 40}), a
}

func drive(t *testing.T, m RootModel, msgs ...tea.Msg) RootModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(RootModel)
	}
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func validProposal() model.Proposal {
	return model.Proposal{
		Name:        "Docs Overhaul",
		Description: "Rewrite the public documentation",
		Category:    model.CategoryInternal,
		Tasks: []model.ProposalTask{
			{Title: "Audit existing pages", Priority: model.PriorityMedium},
		},
	}
}

func TestPlanResultMaterializes(t *testing.T) {
	m, a := newTestRoot(t)
	before := len(a.Store.Projects())

	m = drive(t, m, keyRune('n'))
	if !m.plannerOpen {
		t.Fatal("planner did not open")
	}

	m = drive(t, m, views.PlanResultMsg{Seq: m.planSeq, Proposal: validProposal()})

	if got := len(a.Store.Projects()); got != before+1 {
		t.Fatalf("projects = %d, want %d", got, before+1)
	}
	if m.plannerOpen {
		t.Error("modal still open after a successful plan")
	}
	if m.view != ViewProject {
		t.Errorf("view = %v, want project board", m.view)
	}
}

func TestPlanResultAfterCloseIsDropped(t *testing.T) {
	m, a := newTestRoot(t)
	before := len(a.Store.Projects())

	m = drive(t, m, keyRune('n'))
	seq := m.planSeq
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.plannerOpen {
		t.Fatal("escape did not close the modal")
	}

	m = drive(t, m, views.PlanResultMsg{Seq: seq, Proposal: validProposal()})
	if got := len(a.Store.Projects()); got != before {
		t.Errorf("result from a dismissed modal was materialized: projects %d -> %d", before, got)
	}
}

func TestPlanResultFromDismissedInstanceIsDropped(t *testing.T) {
	m, a := newTestRoot(t)
	before := len(a.Store.Projects())

	// Open, dismiss while a request could still be in flight, reopen
	m = drive(t, m, keyRune('n'))
	staleSeq := m.planSeq
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEscape}, keyRune('n'))
	if !m.plannerOpen {
		t.Fatal("planner did not reopen")
	}
	if m.planSeq == staleSeq {
		t.Fatal("reopening did not advance the request token")
	}

	// The first instance's request settles behind the new prompt
	m = drive(t, m, views.PlanResultMsg{Seq: staleSeq, Proposal: validProposal()})

	if got := len(a.Store.Projects()); got != before {
		t.Errorf("stale result was materialized: projects %d -> %d", before, got)
	}
	if !m.plannerOpen {
		t.Error("stale result closed the reopened modal")
	}
	if m.view == ViewProject {
		t.Error("stale result switched the view")
	}
}

func TestStalePlanErrorIsDropped(t *testing.T) {
	m, _ := newTestRoot(t)

	m = drive(t, m, keyRune('n'))
	staleSeq := m.planSeq
	m = drive(t, m, tea.KeyMsg{Type: tea.KeyEscape}, keyRune('n'))

	m = drive(t, m, views.PlanResultMsg{Seq: staleSeq, Err: ai.ErrEmptyResponse})
	if !m.plannerOpen {
		t.Error("stale error closed the reopened modal")
	}
}
