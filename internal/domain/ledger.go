package domain

import "strings"

// Ledger is the ordered task list for one file. Insertion order is
// preserved and semantically significant: list output and file layout
// reflect append order, and completion never reorders tasks.
type Ledger struct {
	tasks []Task
}

// NewLedger creates a ledger holding the given tasks in order.
func NewLedger(tasks []Task) *Ledger {
	return &Ledger{tasks: tasks}
}

// Len returns the number of tasks in the ledger.
func (l *Ledger) Len() int {
	return len(l.tasks)
}

// Tasks returns all tasks in ledger order.
func (l *Ledger) Tasks() []Task {
	return l.tasks
}

// Add appends a new pending task to the end of the ledger.
// The description is trimmed and must be non-empty; the priority must be
// one of the enumerated values.
func (l *Ledger) Add(description string, priority Priority) (*Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	l.tasks = append(l.tasks, Task{
		Description: description,
		Priority:    priority,
		Completed:   false,
	})
	return &l.tasks[len(l.tasks)-1], nil
}

// List returns tasks in ledger order. When onlyPending is true, completed
// tasks are filtered out, preserving the relative order of the rest.
func (l *Ledger) List(onlyPending bool) []Task {
	if !onlyPending {
		return l.tasks
	}
	var pending []Task
	for _, t := range l.tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	return pending
}

// Complete marks the first task whose description contains substr as
// completed and returns it. The scan is positional: an already-completed
// task that matches earlier in order is still matched, making repeated
// calls an idempotent no-op.
func (l *Ledger) Complete(substr string) (*Task, error) {
	if strings.TrimSpace(substr) == "" {
		return nil, ErrEmptyMatch
	}
	for i := range l.tasks {
		if l.tasks[i].Matches(substr) {
			l.tasks[i].Completed = true
			return &l.tasks[i], nil
		}
	}
	return nil, ErrTaskNotFound
}
