package store

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/napat/kanri/internal/model"
)

// Default due-date window (days after the creation date) when a
// proposal carries no estimate: start at +1, due at +3.
const (
	startOffsetDays  = 1
	defaultDueWindow = 2
)

// Store holds all application state: the project and task collections.
// It is mutated only through named operations and is meant to be driven
// from a single event loop, so there is no locking.
type Store struct {
	projects []model.Project
	tasks    []model.Task
}

// New returns an empty store
func New() *Store {
	return &Store{}
}

// Projects returns a copy of the project collection
func (s *Store) Projects() []model.Project {
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Tasks returns a copy of the task collection
func (s *Store) Tasks() []model.Task {
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Project returns the project with the given id, or nil
func (s *Store) Project(id string) *model.Project {
	for i := range s.projects {
		if s.projects[i].ID == id {
			p := s.projects[i]
			return &p
		}
	}
	return nil
}

// TasksForProject returns the tasks belonging to a project
func (s *Store) TasksForProject(projectID string) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// TasksByCategory returns the tasks in one category partition. Tasks
// without a category belong to neither partition.
func (s *Store) TasksByCategory(c model.Category) []model.Task {
	var out []model.Task
	for _, t := range s.tasks {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// ApplyProposal materializes an AI proposal into one new project and
// its starter tasks, appending both to the collections. Every task
// starts as TODO with the proposal's category, a start date of
// today+1 and a due date derived from the estimate (today+3 when none
// was given). The proposal is assumed to have passed schema validation
// at the AI client boundary. Returns the new project so the caller can
// switch to it.
func (s *Store) ApplyProposal(p model.Proposal, now time.Time) model.Project {
	project := model.Project{
		ID:          uuid.New().String(),
		Name:        p.Name,
		Description: p.Description,
		Color:       model.Colors[rand.Intn(len(model.Colors))],
		CreatedAt:   now,
	}

	today := model.DateOnly(now)
	start := today.AddDate(0, 0, startOffsetDays)

	tasks := make([]model.Task, 0, len(p.Tasks))
	for _, pt := range p.Tasks {
		window := defaultDueWindow
		if pt.EstimatedDays > 0 {
			window = pt.EstimatedDays
		}
		due := start.AddDate(0, 0, window)
		startDate := start

		tasks = append(tasks, model.Task{
			ID:          uuid.New().String(),
			ProjectID:   project.ID,
			Title:       pt.Title,
			Description: pt.Description,
			Status:      model.StatusTodo,
			Priority:    pt.Priority,
			CreatedAt:   now,
			Category:    p.Category,
			Assignee:    pt.Assignee,
			StartDate:   &startDate,
			DueDate:     &due,
		})
	}

	s.projects = append(s.projects, project)
	s.tasks = append(s.tasks, tasks...)
	return project
}

// MoveTask transitions a task to the target status, replacing the
// record rather than mutating it in place. Entering DONE stamps the
// completion date; leaving DONE does not clear it. Moving a task to
// its current status is a no-op. An unknown id leaves the collection
// unchanged and reports false.
func (s *Store) MoveTask(id string, to model.Status, now time.Time) bool {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if s.tasks[i].Status == to {
			return true
		}

		t := s.tasks[i]
		t.Status = to
		if to == model.StatusDone {
			d := model.DateOnly(now)
			t.CompletedDate = &d
		}
		s.tasks[i] = t
		return true
	}
	return false
}
