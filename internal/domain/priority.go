package domain

// Priority represents the urgency of a task.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityNormal Priority = "NORMAL"
	PriorityHigh   Priority = "HIGH"
)

// DefaultPriority is used when the caller does not specify a priority.
const DefaultPriority = PriorityNormal

// AllPriorities returns all valid priority values.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityNormal, PriorityHigh}
}

// ParsePriority converts a caller-supplied token into a Priority.
// An empty token maps to DefaultPriority; anything else must be one of
// the three enumerated values.
func ParsePriority(s string) (Priority, error) {
	switch s {
	case "":
		return DefaultPriority, nil
	case string(PriorityLow):
		return PriorityLow, nil
	case string(PriorityNormal):
		return PriorityNormal, nil
	case string(PriorityHigh):
		return PriorityHigh, nil
	default:
		return "", ErrInvalidPriority
	}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the priority.
func (p Priority) Display() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityNormal:
		return "Normal"
	case PriorityHigh:
		return "High"
	default:
		return string(p)
	}
}
