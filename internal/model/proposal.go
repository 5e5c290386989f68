package model

// Proposal is an AI-generated plan for a new project. It is an
// untrusted, transient payload: validated at the AI client boundary,
// consumed once when materialized into Project/Task records.
type Proposal struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    Category       `json:"category"`
	Tasks       []ProposalTask `json:"tasks"`
}

// ProposalTask is one proposed starter task
type ProposalTask struct {
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	Priority      Priority `json:"priority"`
	Assignee      string   `json:"assignee,omitempty"`
	EstimatedDays int      `json:"estimatedDays,omitempty"`
}
