// Package domain contains core business entities and interfaces.
package domain

import "strings"

// Task represents a single entry in the task ledger.
type Task struct {
	Description string   `json:"description" yaml:"description"`
	Priority    Priority `json:"priority" yaml:"priority"`
	Completed   bool     `json:"completed" yaml:"completed"`
}

// Matches reports whether the task description contains substr.
// Matching is case-sensitive, no wildcards.
func (t *Task) Matches(substr string) bool {
	return strings.Contains(t.Description, substr)
}

// Markdown renders the task as a single ledger line:
//
//	- [ ] [NORMAL] description
//	- [x] [HIGH] description
func (t *Task) Markdown() string {
	box := " "
	if t.Completed {
		box = "x"
	}
	return "- [" + box + "] [" + string(t.Priority) + "] " + t.Description
}

// ParseTaskLine parses a single ledger line into a Task.
// It returns false for lines that are not task lines (headers, blanks,
// stray content); such lines are skipped by the codec, not errors.
//
// The checkbox accepts any single character; only 'x' means completed.
// A recognized bracketed priority token sets the priority; an unrecognized
// token is consumed and the priority defaults to NORMAL. A line without a
// priority bracket is accepted as NORMAL with the full remainder as the
// description.
func ParseTaskLine(line string) (Task, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 5 || !strings.HasPrefix(line, "- [") || line[4] != ']' {
		return Task{}, false
	}
	completed := line[3] == 'x'

	rest := strings.TrimSpace(line[5:])
	priority := DefaultPriority
	if strings.HasPrefix(rest, "[") {
		if end := strings.IndexByte(rest, ']'); end > 0 {
			if p := Priority(rest[1:end]); p.IsValid() {
				priority = p
			}
			rest = strings.TrimSpace(rest[end+1:])
		}
	}

	if rest == "" {
		return Task{}, false
	}

	return Task{
		Description: rest,
		Priority:    priority,
		Completed:   completed,
	}, true
}
