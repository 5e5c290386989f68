package store

import (
	"time"

	"github.com/napat/kanri/internal/model"
)

// Seed populates the store with the starter projects and tasks shown
// on first launch. Seed tasks predate categorization and carry no
// category, so they appear on the dashboard and boards but not in the
// internal/external tables.
func (s *Store) Seed(now time.Time) {
	s.projects = append(s.projects,
		model.Project{
			ID:          "p1",
			Name:        "Website Redesign",
			Description: "Overhaul the company homepage and product pages with new branding.",
			Color:       "indigo",
			CreatedAt:   now,
		},
		model.Project{
			ID:          "p2",
			Name:        "Mobile App Launch",
			Description: "Prepare marketing assets and store listings for iOS and Android.",
			Color:       "emerald",
			CreatedAt:   now,
		},
	)

	s.tasks = append(s.tasks,
		model.Task{
			ID:          "t1",
			ProjectID:   "p1",
			Title:       "Draft new copy",
			Description: "Write compelling headlines for the hero section.",
			Status:      model.StatusDone,
			Priority:    model.PriorityHigh,
			CreatedAt:   now,
		},
		model.Task{
			ID:          "t2",
			ProjectID:   "p1",
			Title:       "Select imagery",
			Description: "Find stock photos or schedule photoshoot.",
			Status:      model.StatusInProgress,
			Priority:    model.PriorityMedium,
			CreatedAt:   now,
		},
		model.Task{
			ID:          "t3",
			ProjectID:   "p1",
			Title:       "Develop hero component",
			Description: "Code the main banner for the landing page.",
			Status:      model.StatusTodo,
			Priority:    model.PriorityHigh,
			CreatedAt:   now,
		},
		model.Task{
			ID:          "t4",
			ProjectID:   "p2",
			Title:       "App store screenshots",
			Description: "Design 5 screenshots for the store listing.",
			Status:      model.StatusTodo,
			Priority:    model.PriorityHigh,
			CreatedAt:   now,
		},
	)
}
