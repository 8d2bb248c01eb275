package task

import (
	"context"

	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/user"
)

// TaskService is the lifecycle engine. Every mutation takes the acting
// identity explicitly and consults the authorization policy before touching
// the record.
type TaskService interface {
	// Create assigns a new task. Admin only.
	Create(ctx context.Context, actor user.Actor, req CreateTaskRequest) (TaskResponse, error)

	// List returns every task for admins, and only the actor's own tasks
	// otherwise.
	List(ctx context.Context, actor user.Actor) ([]TaskResponse, error)

	// SetStatus moves a task to the requested status. Assigned employee or
	// admin. Leaving completed resets the admin sanction.
	SetStatus(ctx context.Context, actor user.Actor, taskID string, req SetStatusRequest) (TaskResponse, error)

	// AppendTimeLog appends one work session to the task. Assigned employee
	// or admin. Entries are accepted as-is; overlap is not validated.
	AppendTimeLog(ctx context.Context, actor user.Actor, taskID string, req TimeLogRequest) (TaskResponse, error)

	// Sanction records an admin approve/reject decision on the task.
	Sanction(ctx context.Context, actor user.Actor, taskID string, req SanctionRequest) (TaskResponse, error)
}
