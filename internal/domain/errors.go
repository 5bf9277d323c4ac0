package domain

import "errors"

// Domain errors.
var (
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrEmptyMatch       = errors.New("match text cannot be empty")
	ErrTaskNotFound     = errors.New("task not found")
)
