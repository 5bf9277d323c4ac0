package usecase

import (
	"context"

	"github.com/runoshun/taskmd/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	OnlyPending bool // Filter out completed tasks
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.Task // Tasks in ledger order
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	store domain.LedgerStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.LedgerStore) *ListTasks {
	return &ListTasks{
		store: store,
	}
}

// Execute lists tasks in ledger order. It has no side effects: the file
// is only read, and re-querying reproduces the same order.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	ledger, err := uc.store.Load()
	if err != nil {
		return nil, err
	}

	return &ListTasksOutput{Tasks: ledger.List(in.OnlyPending)}, nil
}
