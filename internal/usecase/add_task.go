// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/runoshun/taskmd/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Description string // Task description (required)
	Priority    string // Priority token: LOW, NORMAL, HIGH (optional, default NORMAL)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task domain.Task // The created task
	Line string      // The task's rendered ledger line
}

// AddTask is the use case for appending a task to the ledger.
type AddTask struct {
	store  domain.LedgerStore
	logger *slog.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.LedgerStore, logger *slog.Logger) *AddTask {
	return &AddTask{
		store:  store,
		logger: logger,
	}
}

// Execute appends a pending task to the end of the ledger and persists it.
// Validation failures leave the file untouched.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	priority, err := domain.ParsePriority(in.Priority)
	if err != nil {
		return nil, fmt.Errorf("priority %q: %w", in.Priority, err)
	}

	var created domain.Task
	err = uc.store.Update(func(ledger *domain.Ledger) error {
		task, err := ledger.Add(in.Description, priority)
		if err != nil {
			return err
		}
		created = *task
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task added", "description", created.Description, "priority", created.Priority)
	}

	return &AddTaskOutput{
		Task: created,
		Line: created.Markdown(),
	}, nil
}
