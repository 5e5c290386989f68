package store

import (
	"github.com/napat/kanri/internal/model"
)

// StatusCount is one bucket of the status distribution
type StatusCount struct {
	Status model.Status
	Count  int
}

// StatusCounts returns the task count per status in fixed display
// order (done, in progress, todo). Every task lands in exactly one
// bucket, so the counts sum to the total task count.
func (s *Store) StatusCounts() []StatusCount {
	var done, inProgress, todo int
	for _, t := range s.tasks {
		switch t.Status {
		case model.StatusDone:
			done++
		case model.StatusInProgress:
			inProgress++
		default:
			todo++
		}
	}

	return []StatusCount{
		{Status: model.StatusDone, Count: done},
		{Status: model.StatusInProgress, Count: inProgress},
		{Status: model.StatusTodo, Count: todo},
	}
}

// ProjectProgress reports a project's completed and total task counts
type ProjectProgress struct {
	Project model.Project
	Done    int
	Total   int
}

// ProjectProgress returns per-project completion counts in project
// order. Projects with no tasks report 0/0.
func (s *Store) ProjectProgress() []ProjectProgress {
	out := make([]ProjectProgress, len(s.projects))
	for i, p := range s.projects {
		out[i].Project = p
	}

	index := make(map[string]int, len(s.projects))
	for i, p := range s.projects {
		index[p.ID] = i
	}

	for _, t := range s.tasks {
		i, ok := index[t.ProjectID]
		if !ok {
			continue
		}
		out[i].Total++
		if t.Status == model.StatusDone {
			out[i].Done++
		}
	}
	return out
}
