package task

import "errors"

// Task domain errors
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNotAssignee  = errors.New("not authorized to modify this task")
)
