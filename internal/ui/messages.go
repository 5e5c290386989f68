package ui

// View represents the current active view
type View int

const (
	ViewDashboard View = iota
	ViewInternal
	ViewExternal
	ViewProject
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "Dashboard"
	case ViewInternal:
		return "Internal"
	case ViewExternal:
		return "External"
	case ViewProject:
		return "Project"
	default:
		return "Unknown"
	}
}

// ErrorMsg contains an error to display
type ErrorMsg struct {
	Err error
}

// StatusMsg contains a status message to display
type StatusMsg struct {
	Message string
}
