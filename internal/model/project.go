package model

import (
	"time"
)

// Project represents a collection of tasks sharing a goal
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Colors is the fixed palette a new project's color label is drawn
// from. Labels only group projects visually and carry no meaning.
var Colors = []string{"indigo", "emerald", "blue", "rose", "purple", "amber"}
