package domain

import "errors"

var (
	// ErrTaskNotFound covers both a missing id and a task owned by someone
	// else, so callers cannot probe for other users' tasks.
	ErrTaskNotFound = errors.New("task not found")

	ErrTitleRequired = errors.New("title required")
)
