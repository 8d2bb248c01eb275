package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/task"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

// Create implements task.TaskRepository.
func (t *taskRepository) Create(ctx context.Context, data task.Task) (task.Task, error) {
	q := GetQuerier(ctx, t.db)

	data.ID = uuid.NewString()

	query := `
		INSERT INTO tasks (id, title, description, assigned_to, status, admin_status, sanctioned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		data.ID,
		data.Title,
		data.Description,
		data.AssignedTo,
		data.Status,
		data.AdminStatus,
		data.SanctionedAt,
	).Scan(&data.CreatedAt, &data.UpdatedAt)

	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return data, nil
}

// GetByID implements task.TaskRepository.
func (t *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	return t.getByID(ctx, id, false)
}

// GetByIDForUpdate implements task.TaskRepository. The row lock is held
// until the transaction carried by ctx commits or rolls back.
func (t *taskRepository) GetByIDForUpdate(ctx context.Context, id string) (task.Task, error) {
	return t.getByID(ctx, id, true)
}

func (t *taskRepository) getByID(ctx context.Context, id string, forUpdate bool) (task.Task, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT t.id, t.title, t.description, t.assigned_to, t.status, t.admin_status, t.sanctioned_at,
		       t.created_at, t.updated_at, u.name
		FROM tasks t
		JOIN users u ON u.id = t.assigned_to
		WHERE t.id = $1
	`
	if forUpdate {
		// Locks the task row only; the joined users row stays unlocked.
		query += " FOR UPDATE OF t"
	}

	var data task.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&data.ID, &data.Title, &data.Description, &data.AssignedTo, &data.Status,
		&data.AdminStatus, &data.SanctionedAt, &data.CreatedAt, &data.UpdatedAt,
		&data.AssigneeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	logs, err := t.loadTimeLogs(ctx, []string{data.ID})
	if err != nil {
		return task.Task{}, err
	}
	data.TimeLogs = logs[data.ID]

	return data, nil
}

// ListAll implements task.TaskRepository.
func (t *taskRepository) ListAll(ctx context.Context) ([]task.Task, error) {
	return t.list(ctx, "", nil)
}

// ListByAssignee implements task.TaskRepository.
func (t *taskRepository) ListByAssignee(ctx context.Context, userID string) ([]task.Task, error) {
	return t.list(ctx, "WHERE t.assigned_to = $1", []any{userID})
}

func (t *taskRepository) list(ctx context.Context, where string, args []any) ([]task.Task, error) {
	q := GetQuerier(ctx, t.db)

	query := fmt.Sprintf(`
		SELECT t.id, t.title, t.description, t.assigned_to, t.status, t.admin_status, t.sanctioned_at,
		       t.created_at, t.updated_at, u.name
		FROM tasks t
		JOIN users u ON u.id = t.assigned_to
		%s
		ORDER BY t.created_at DESC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	var ids []string
	for rows.Next() {
		var data task.Task
		if err := rows.Scan(
			&data.ID, &data.Title, &data.Description, &data.AssignedTo, &data.Status,
			&data.AdminStatus, &data.SanctionedAt, &data.CreatedAt, &data.UpdatedAt,
			&data.AssigneeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, data)
		ids = append(ids, data.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	if len(ids) == 0 {
		return tasks, nil
	}

	logs, err := t.loadTimeLogs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		tasks[i].TimeLogs = logs[tasks[i].ID]
	}

	return tasks, nil
}

func (t *taskRepository) loadTimeLogs(ctx context.Context, taskIDs []string) (map[string][]task.TimeLog, error) {
	q := GetQuerier(ctx, t.db)

	query := `
		SELECT id, task_id, start_time, end_time, duration_minutes, created_at
		FROM task_time_logs
		WHERE task_id = ANY($1)
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, taskIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load time logs: %w", err)
	}
	defer rows.Close()

	logs := make(map[string][]task.TimeLog)
	for rows.Next() {
		var taskID string
		var entry task.TimeLog
		if err := rows.Scan(&entry.ID, &taskID, &entry.StartTime, &entry.EndTime, &entry.DurationMinutes, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan time log: %w", err)
		}
		logs[taskID] = append(logs[taskID], entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time logs: %w", err)
	}

	return logs, nil
}

// Update implements task.TaskRepository. Only the mutable fields are
// written; title, description and assignee are immutable after creation.
func (t *taskRepository) Update(ctx context.Context, data task.Task) error {
	q := GetQuerier(ctx, t.db)

	query := `
		UPDATE tasks
		SET status = $2, admin_status = $3, sanctioned_at = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, data.ID, data.Status, data.AdminStatus, data.SanctionedAt)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// AppendTimeLog implements task.TaskRepository.
func (t *taskRepository) AppendTimeLog(ctx context.Context, taskID string, log task.TimeLog) (task.TimeLog, error) {
	q := GetQuerier(ctx, t.db)

	log.ID = uuid.NewString()

	query := `
		INSERT INTO task_time_logs (id, task_id, start_time, end_time, duration_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, log.ID, taskID, log.StartTime, log.EndTime, log.DurationMinutes).Scan(&log.CreatedAt)
	if err != nil {
		return task.TimeLog{}, fmt.Errorf("failed to append time log: %w", err)
	}

	return log, nil
}
