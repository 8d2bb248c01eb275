package task

import (
	"context"
	"fmt"

	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/authz"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/task"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/user"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/clock"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/database"
)

type TaskServiceImpl struct {
	tx database.TxRunner
	task.TaskRepository
	clk clock.Clock
}

func NewTaskService(tx database.TxRunner, taskRepo task.TaskRepository, clk clock.Clock) task.TaskService {
	return &TaskServiceImpl{
		tx:             tx,
		TaskRepository: taskRepo,
		clk:            clk,
	}
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, actor user.Actor, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if !authz.Permits(actor, authz.ActionTaskCreate, "") {
		return task.TaskResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	newTask := task.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      task.StatusPending,
		AdminStatus: task.AdminPending,
	}

	created, err := s.TaskRepository.Create(ctx, newTask)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task.ToResponse(created), nil
}

// List implements task.TaskService. Admins see every task; everyone else
// sees only the tasks assigned to them. Filtering, not a failure mode.
func (s *TaskServiceImpl) List(ctx context.Context, actor user.Actor) ([]task.TaskResponse, error) {
	var (
		tasks []task.Task
		err   error
	)
	if actor.IsAdmin() {
		tasks, err = s.TaskRepository.ListAll(ctx)
	} else {
		tasks, err = s.TaskRepository.ListByAssignee(ctx, actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, task.ToResponse(t))
	}
	return responses, nil
}

// SetStatus implements task.TaskService.
func (s *TaskServiceImpl) SetStatus(ctx context.Context, actor user.Actor, taskID string, req task.SetStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	var updated task.Task
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.TaskRepository.GetByIDForUpdate(ctx, taskID)
		if err != nil {
			return err
		}

		if !authz.Permits(actor, authz.ActionTaskUpdate, current.AssignedTo) {
			return task.ErrNotAssignee
		}

		// Side effects are computed from the row just read under lock, so a
		// concurrent sanction cannot survive a status change it should not.
		current.ApplyStatus(task.Status(req.Status))

		if err := s.TaskRepository.Update(ctx, current); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		updated = current
		return nil
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated), nil
}

// AppendTimeLog implements task.TaskService. Entries are appended as-is:
// overlapping or duplicate sessions are accepted.
func (s *TaskServiceImpl) AppendTimeLog(ctx context.Context, actor user.Actor, taskID string, req task.TimeLogRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	var updated task.Task
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.TaskRepository.GetByIDForUpdate(ctx, taskID)
		if err != nil {
			return err
		}

		if !authz.Permits(actor, authz.ActionTaskUpdate, current.AssignedTo) {
			return task.ErrNotAssignee
		}

		entry, err := s.TaskRepository.AppendTimeLog(ctx, current.ID, req.ToTimeLog())
		if err != nil {
			return fmt.Errorf("failed to append time log: %w", err)
		}

		current.TimeLogs = append(current.TimeLogs, entry)
		updated = current
		return nil
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated), nil
}

// Sanction implements task.TaskService.
func (s *TaskServiceImpl) Sanction(ctx context.Context, actor user.Actor, taskID string, req task.SanctionRequest) (task.TaskResponse, error) {
	if !authz.Permits(actor, authz.ActionTaskSanction, "") {
		return task.TaskResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	var updated task.Task
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := s.TaskRepository.GetByIDForUpdate(ctx, taskID)
		if err != nil {
			return err
		}

		current.ApplySanction(task.AdminStatus(req.Decision), s.clk.Now())

		if err := s.TaskRepository.Update(ctx, current); err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		updated = current
		return nil
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated), nil
}
