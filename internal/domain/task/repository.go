package task

import "context"

// TaskRepository defines data access methods for tasks and their time logs.
type TaskRepository interface {
	// Create inserts a new task
	Create(ctx context.Context, t Task) (Task, error)

	// GetByID retrieves a task with its time logs. Returns ErrTaskNotFound
	// for an unknown id.
	GetByID(ctx context.Context, id string) (Task, error)

	// GetByIDForUpdate retrieves a task and locks its row for the duration
	// of the surrounding transaction. Used by read-modify-write mutations.
	GetByIDForUpdate(ctx context.Context, id string) (Task, error)

	// ListAll retrieves every task, newest first
	ListAll(ctx context.Context) ([]Task, error)

	// ListByAssignee retrieves the tasks assigned to one user, newest first
	ListByAssignee(ctx context.Context, userID string) ([]Task, error)

	// Update writes the mutable fields (status, admin status, sanctioned_at)
	Update(ctx context.Context, t Task) error

	// AppendTimeLog appends one entry to the task's log. Entries are never
	// edited or removed once appended.
	AppendTimeLog(ctx context.Context, taskID string, log TimeLog) (TimeLog, error)
}
