package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/taskmd/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	Match string // Substring to match against task descriptions (required)
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task domain.Task // The matched task, with Completed set
	Line string      // The task's rendered ledger line
}

// CompleteTask is the use case for marking a task as completed.
type CompleteTask struct {
	store  domain.LedgerStore
	logger *slog.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(store domain.LedgerStore, logger *slog.Logger) *CompleteTask {
	return &CompleteTask{
		store:  store,
		logger: logger,
	}
}

// Execute marks the first task matching the substring as completed and
// persists the ledger. When no task matches, the file is left unchanged
// and domain.ErrTaskNotFound is returned.
func (uc *CompleteTask) Execute(_ context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	var completed domain.Task
	err := uc.store.Update(func(ledger *domain.Ledger) error {
		task, err := ledger.Complete(in.Match)
		if err != nil {
			return err
		}
		completed = *task
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task completed", "description", completed.Description)
	}

	return &CompleteTaskOutput{
		Task: completed,
		Line: completed.Markdown(),
	}, nil
}
