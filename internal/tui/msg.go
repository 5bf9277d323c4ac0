package tui

import "github.com/runoshun/taskmd/internal/domain"

// Msg is the interface for all TUI messages.
// All message types implement this sealed interface.
//
//sumtype:decl
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the ledger file.
type MsgTasksLoaded struct {
	Tasks []domain.Task
	Err   error
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskAdded is sent when a task is added.
type MsgTaskAdded struct {
	Err  error
	Line string
}

func (MsgTaskAdded) sealed() {}

// MsgTaskCompleted is sent when a task is marked completed.
type MsgTaskCompleted struct {
	Err  error
	Line string
}

func (MsgTaskCompleted) sealed() {}
