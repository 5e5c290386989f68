package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/napat/kanri/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func sampleProposal() model.Proposal {
	return model.Proposal{
		Name:        "Launch Newsletter",
		Description: "Monthly product newsletter",
		Category:    model.CategoryInternal,
		Tasks: []model.ProposalTask{
			{Title: "Pick a platform", Priority: model.PriorityHigh, EstimatedDays: 3},
			{Title: "Write first issue", Priority: model.PriorityMedium, Assignee: "Writer"},
		},
	}
}

func TestApplyProposalCreatesProjectAndTasks(t *testing.T) {
	s := New()
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.Local)

	project := s.ApplyProposal(sampleProposal(), now)

	if project.ID == "" {
		t.Fatal("expected project to get an id")
	}
	if project.Name != "Launch Newsletter" {
		t.Errorf("project name = %q", project.Name)
	}

	found := false
	for _, c := range model.Colors {
		if project.Color == c {
			found = true
		}
	}
	if !found {
		t.Errorf("project color %q not from palette", project.Color)
	}

	if got := len(s.Projects()); got != 1 {
		t.Fatalf("project count = %d, want 1", got)
	}
	tasks := s.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("task count = %d, want 2", len(tasks))
	}

	for _, task := range tasks {
		if task.ProjectID != project.ID {
			t.Errorf("task %q not linked to project", task.Title)
		}
		if task.Status != model.StatusTodo {
			t.Errorf("task %q status = %q, want TODO", task.Title, task.Status)
		}
		if task.Category != model.CategoryInternal {
			t.Errorf("task %q category = %q, want INTERNAL", task.Title, task.Category)
		}
		if task.ID == "" {
			t.Errorf("task %q has no id", task.Title)
		}
	}

	if tasks[1].Assignee != "Writer" {
		t.Errorf("assignee = %q, want Writer", tasks[1].Assignee)
	}
}

func TestApplyProposalSchedulesDates(t *testing.T) {
	s := New()
	now := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.Local)

	s.ApplyProposal(sampleProposal(), now)
	tasks := s.Tasks()

	wantStart := date(2026, time.March, 11)
	for _, task := range tasks {
		if task.StartDate == nil || !task.StartDate.Equal(wantStart) {
			t.Errorf("task %q start = %v, want %v", task.Title, task.StartDate, wantStart)
		}
	}

	// First task carries a 3-day estimate, second falls back to the
	// default 2-day window.
	wantDue := []time.Time{
		date(2026, time.March, 14),
		date(2026, time.March, 13),
	}
	for i, task := range tasks {
		if task.DueDate == nil || !task.DueDate.Equal(wantDue[i]) {
			t.Errorf("task %q due = %v, want %v", task.Title, task.DueDate, wantDue[i])
		}
	}
}

func TestMoveTaskStampsCompletionDate(t *testing.T) {
	s := New()
	s.ApplyProposal(sampleProposal(), date(2026, time.March, 10))
	id := s.Tasks()[0].ID

	now := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.Local)
	if !s.MoveTask(id, model.StatusDone, now) {
		t.Fatal("MoveTask reported unknown id")
	}

	task := s.Tasks()[0]
	if task.Status != model.StatusDone {
		t.Fatalf("status = %q, want DONE", task.Status)
	}
	if task.CompletedDate == nil || !task.CompletedDate.Equal(date(2026, time.April, 1)) {
		t.Errorf("completed date = %v, want 2026-04-01", task.CompletedDate)
	}
}

func TestMoveTaskIsIdempotent(t *testing.T) {
	s := New()
	s.ApplyProposal(sampleProposal(), date(2026, time.March, 10))
	id := s.Tasks()[0].ID

	s.MoveTask(id, model.StatusDone, date(2026, time.April, 1))
	first := s.Tasks()[0]

	// A repeat move to DONE on a later day must not restamp
	s.MoveTask(id, model.StatusDone, date(2026, time.April, 5))
	second := s.Tasks()[0]

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated move changed the task: %+v vs %+v", first, second)
	}
}

func TestMoveTaskKeepsCompletionDateOnRegression(t *testing.T) {
	s := New()
	s.ApplyProposal(sampleProposal(), date(2026, time.March, 10))
	id := s.Tasks()[0].ID

	s.MoveTask(id, model.StatusDone, date(2026, time.April, 1))
	s.MoveTask(id, model.StatusInProgress, date(2026, time.April, 2))

	task := s.Tasks()[0]
	if task.Status != model.StatusInProgress {
		t.Fatalf("status = %q, want IN_PROGRESS", task.Status)
	}
	if task.CompletedDate == nil || !task.CompletedDate.Equal(date(2026, time.April, 1)) {
		t.Errorf("completed date = %v, want original 2026-04-01", task.CompletedDate)
	}
}

func TestMoveTaskUnknownIDIsNoOp(t *testing.T) {
	s := New()
	s.ApplyProposal(sampleProposal(), date(2026, time.March, 10))
	before := s.Tasks()

	if s.MoveTask("no-such-id", model.StatusDone, date(2026, time.April, 1)) {
		t.Error("MoveTask reported success for unknown id")
	}
	if !reflect.DeepEqual(before, s.Tasks()) {
		t.Error("unknown id mutated the collection")
	}
}

func TestStatusCountsOrderAndSum(t *testing.T) {
	s := New()
	s.Seed(date(2026, time.March, 10))

	counts := s.StatusCounts()
	wantOrder := []model.Status{model.StatusDone, model.StatusInProgress, model.StatusTodo}
	for i, c := range counts {
		if c.Status != wantOrder[i] {
			t.Errorf("bucket %d = %q, want %q", i, c.Status, wantOrder[i])
		}
	}

	sum := 0
	for _, c := range counts {
		sum += c.Count
	}
	if sum != len(s.Tasks()) {
		t.Errorf("counts sum to %d, want %d", sum, len(s.Tasks()))
	}
}

func TestProjectProgressEmptyProject(t *testing.T) {
	s := New()
	s.Seed(date(2026, time.March, 10))
	empty := s.ApplyProposal(model.Proposal{
		Name:     "Empty",
		Category: model.CategoryInternal,
		Tasks:    []model.ProposalTask{},
	}, date(2026, time.March, 10))

	for _, p := range s.ProjectProgress() {
		if p.Project.ID == empty.ID {
			if p.Done != 0 || p.Total != 0 {
				t.Errorf("empty project progress = %d/%d, want 0/0", p.Done, p.Total)
			}
			return
		}
	}
	t.Error("empty project missing from progress report")
}

func TestTasksByCategoryExcludesUncategorized(t *testing.T) {
	s := New()
	// Seed data predates categorization
	s.Seed(date(2026, time.March, 10))
	s.ApplyProposal(sampleProposal(), date(2026, time.March, 10))

	internal := s.TasksByCategory(model.CategoryInternal)
	external := s.TasksByCategory(model.CategoryExternal)

	if len(internal) != 2 {
		t.Errorf("internal partition = %d tasks, want 2", len(internal))
	}
	if len(external) != 0 {
		t.Errorf("external partition = %d tasks, want 0", len(external))
	}
}

func TestProjectLookup(t *testing.T) {
	s := New()
	p := s.ApplyProposal(sampleProposal(), date(2026, time.March, 10))

	if got := s.Project(p.ID); got == nil || got.Name != p.Name {
		t.Errorf("Project(%q) = %+v", p.ID, got)
	}
	if got := s.Project("missing"); got != nil {
		t.Errorf("Project(missing) = %+v, want nil", got)
	}
}
