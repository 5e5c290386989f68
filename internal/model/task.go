package model

import (
	"fmt"
	"time"
)

// Status represents the current state of a task
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Priority represents task priority level
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Category classifies a task as internal work or external client work.
// The zero value means the task predates categorization and belongs to
// neither partition.
type Category string

const (
	CategoryInternal Category = "INTERNAL"
	CategoryExternal Category = "EXTERNAL"
)

// Task represents a tracked work item
type Task struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`

	Category Category `json:"category,omitempty"`
	Assignee string   `json:"assignee,omitempty"`
	Link     string   `json:"link,omitempty"`
	Notes    string   `json:"notes,omitempty"`

	// All dates are day-granularity (midnight local)
	StartDate     *time.Time `json:"start_date,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	PublishDate   *time.Time `json:"publish_date,omitempty"`
}

// DateOnly truncates a timestamp to its calendar date (midnight local)
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RemainingKind classifies a task's due-date proximity
type RemainingKind int

const (
	RemainingNone RemainingKind = iota // done, or no due date
	RemainingDueToday
	RemainingLeft
	RemainingOverdue
)

// Remaining is a derived due-date proximity label. Days is positive for
// both Left and Overdue.
type Remaining struct {
	Kind RemainingKind
	Days int
}

// Remaining computes the due-date proximity of the task as of today.
// A done task reports RemainingNone regardless of its due date.
func (t *Task) Remaining(today time.Time) Remaining {
	if t.DueDate == nil || t.Status == StatusDone {
		return Remaining{Kind: RemainingNone}
	}

	days := int(DateOnly(*t.DueDate).Sub(DateOnly(today)).Hours() / 24)
	switch {
	case days > 0:
		return Remaining{Kind: RemainingLeft, Days: days}
	case days == 0:
		return Remaining{Kind: RemainingDueToday}
	default:
		return Remaining{Kind: RemainingOverdue, Days: -days}
	}
}

// Label renders the classification for table display
func (r Remaining) Label() string {
	switch r.Kind {
	case RemainingDueToday:
		return "Due today"
	case RemainingLeft:
		if r.Days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", r.Days)
	case RemainingOverdue:
		if r.Days == 1 {
			return "Overdue 1 day"
		}
		return fmt.Sprintf("Overdue %d days", r.Days)
	default:
		return "-"
	}
}

// IsOverdue returns true if the task is past its due date
func (t *Task) IsOverdue(today time.Time) bool {
	return t.Remaining(today).Kind == RemainingOverdue
}

// PriorityWeight returns a numeric weight for sorting by priority
func (t *Task) PriorityWeight() int {
	switch t.Priority {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 2
	}
}
