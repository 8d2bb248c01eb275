package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/task"
	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/user"
	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/clock"
)

var (
	testAdmin    = user.Actor{ID: "admin-1", Role: user.RoleAdmin}
	testEmployee = user.Actor{ID: "emp-1", Role: user.RoleEmployee}
	testOther    = user.Actor{ID: "emp-2", Role: user.RoleEmployee}
	testNow      = time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
)

// fakeTxRunner executes the callback directly. Transaction boundaries are a
// storage concern; these tests only care about the logic inside them.
type fakeTxRunner struct{}

func (fakeTxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTaskRepo struct {
	tasks   map[string]task.Task
	nextID  int
	updates int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]task.Task)}
}

func (f *fakeTaskRepo) Create(ctx context.Context, t task.Task) (task.Task, error) {
	f.nextID++
	t.ID = "task-" + string(rune('0'+f.nextID))
	t.CreatedAt = testNow
	t.UpdatedAt = testNow
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) GetByIDForUpdate(ctx context.Context, id string) (task.Task, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeTaskRepo) ListAll(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepo) ListByAssignee(ctx context.Context, userID string) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		if t.AssignedTo == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t task.Task) error {
	if _, ok := f.tasks[t.ID]; !ok {
		return task.ErrTaskNotFound
	}
	f.updates++
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) AppendTimeLog(ctx context.Context, taskID string, log task.TimeLog) (task.TimeLog, error) {
	t, ok := f.tasks[taskID]
	if !ok {
		return task.TimeLog{}, task.ErrTaskNotFound
	}
	log.ID = "log-1"
	log.CreatedAt = testNow
	t.TimeLogs = append(t.TimeLogs, log)
	f.tasks[taskID] = t
	return log, nil
}

func newTestService(repo *fakeTaskRepo) task.TaskService {
	return NewTaskService(fakeTxRunner{}, repo, clock.Fixed{Instant: testNow})
}

func seedTask(repo *fakeTaskRepo, assignedTo string) task.Task {
	created, _ := repo.Create(context.Background(), task.Task{
		Title:       "Prepare onboarding docs",
		AssignedTo:  assignedTo,
		Status:      task.StatusPending,
		AdminStatus: task.AdminPending,
	})
	return created
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates a pending task", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)

		resp, err := svc.Create(ctx, testAdmin, task.CreateTaskRequest{
			Title:      "Prepare onboarding docs",
			AssignedTo: "123e4567-e89b-12d3-a456-426614174000",
		})
		require.NoError(t, err)
		assert.Equal(t, string(task.StatusPending), resp.Status)
		assert.Equal(t, string(task.AdminPending), resp.AdminStatus)
		assert.Nil(t, resp.SanctionedAt)
	})

	t.Run("employee is rejected before validation", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)

		_, err := svc.Create(ctx, testEmployee, task.CreateTaskRequest{})
		assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
		assert.Empty(t, repo.tasks)
	})

	t.Run("invalid request creates nothing", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)

		_, err := svc.Create(ctx, testAdmin, task.CreateTaskRequest{Title: ""})
		assert.Error(t, err)
		assert.Empty(t, repo.tasks)
	})
}

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakeTaskRepo()
	svc := newTestService(repo)
	seedTask(repo, testEmployee.ID)
	seedTask(repo, testOther.ID)

	t.Run("admin sees every task", func(t *testing.T) {
		tasks, err := svc.List(ctx, testAdmin)
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("employee sees only own tasks", func(t *testing.T) {
		tasks, err := svc.List(ctx, testEmployee)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, testEmployee.ID, tasks[0].AssignedTo)
	})
}

func TestTaskService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("assignee advances the task", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		resp, err := svc.SetStatus(ctx, testEmployee, seeded.ID, task.SetStatusRequest{Status: "in-progress"})
		require.NoError(t, err)
		assert.Equal(t, "in-progress", resp.Status)
	})

	t.Run("leaving completed wipes the sanction", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		_, err := svc.SetStatus(ctx, testEmployee, seeded.ID, task.SetStatusRequest{Status: "completed"})
		require.NoError(t, err)

		_, err = svc.Sanction(ctx, testAdmin, seeded.ID, task.SanctionRequest{Decision: "rejected"})
		require.NoError(t, err)

		// Rework after rejection: the stale decision must not survive.
		resp, err := svc.SetStatus(ctx, testEmployee, seeded.ID, task.SetStatusRequest{Status: "in-progress"})
		require.NoError(t, err)
		assert.Equal(t, "in-progress", resp.Status)
		assert.Equal(t, string(task.AdminPending), resp.AdminStatus)
		assert.Nil(t, resp.SanctionedAt)
	})

	t.Run("non-assignee cannot mutate", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		_, err := svc.SetStatus(ctx, testOther, seeded.ID, task.SetStatusRequest{Status: "completed"})
		assert.ErrorIs(t, err, task.ErrNotAssignee)
		assert.Zero(t, repo.updates)
		assert.Equal(t, task.StatusPending, repo.tasks[seeded.ID].Status)
	})

	t.Run("admin may move any task", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		resp, err := svc.SetStatus(ctx, testAdmin, seeded.ID, task.SetStatusRequest{Status: "completed"})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)
	})

	t.Run("unknown task", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)

		_, err := svc.SetStatus(ctx, testAdmin, "missing", task.SetStatusRequest{Status: "completed"})
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})

	t.Run("invalid status never reaches storage", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		_, err := svc.SetStatus(ctx, testEmployee, seeded.ID, task.SetStatusRequest{Status: "done"})
		assert.Error(t, err)
		assert.Zero(t, repo.updates)
	})
}

func TestTaskService_AppendTimeLog(t *testing.T) {
	ctx := context.Background()
	end := "2024-06-10T11:30:00Z"

	t.Run("assignee logs a closed session", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		resp, err := svc.AppendTimeLog(ctx, testEmployee, seeded.ID, task.TimeLogRequest{
			StartTime: "2024-06-10T10:00:00Z",
			EndTime:   &end,
		})
		require.NoError(t, err)
		require.Len(t, resp.TimeLogs, 1)
		assert.Equal(t, 90, resp.TimeLogs[0].DurationMinutes)
	})

	t.Run("entries accumulate append-only", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		_, err := svc.AppendTimeLog(ctx, testEmployee, seeded.ID, task.TimeLogRequest{StartTime: "2024-06-10T08:00:00Z"})
		require.NoError(t, err)
		resp, err := svc.AppendTimeLog(ctx, testEmployee, seeded.ID, task.TimeLogRequest{StartTime: "2024-06-10T09:00:00Z"})
		require.NoError(t, err)
		assert.Len(t, resp.TimeLogs, 2)
	})

	t.Run("non-assignee is rejected", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		_, err := svc.AppendTimeLog(ctx, testOther, seeded.ID, task.TimeLogRequest{StartTime: "2024-06-10T10:00:00Z"})
		assert.ErrorIs(t, err, task.ErrNotAssignee)
		assert.Empty(t, repo.tasks[seeded.ID].TimeLogs)
	})
}

func TestTaskService_Sanction(t *testing.T) {
	ctx := context.Background()

	t.Run("approval stamps sanctioned_at with the service clock", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		_, err := svc.SetStatus(ctx, testEmployee, seeded.ID, task.SetStatusRequest{Status: "completed"})
		require.NoError(t, err)

		resp, err := svc.Sanction(ctx, testAdmin, seeded.ID, task.SanctionRequest{Decision: "approved"})
		require.NoError(t, err)
		assert.Equal(t, string(task.AdminApproved), resp.AdminStatus)
		require.NotNil(t, resp.SanctionedAt)
		assert.Equal(t, testNow.Format("2006-01-02 15:04:05"), *resp.SanctionedAt)
		// Sanction never touches the work status.
		assert.Equal(t, "completed", resp.Status)
	})

	t.Run("rejection clears sanctioned_at", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		_, err := svc.Sanction(ctx, testAdmin, seeded.ID, task.SanctionRequest{Decision: "approved"})
		require.NoError(t, err)

		resp, err := svc.Sanction(ctx, testAdmin, seeded.ID, task.SanctionRequest{Decision: "rejected"})
		require.NoError(t, err)
		assert.Equal(t, string(task.AdminRejected), resp.AdminStatus)
		assert.Nil(t, resp.SanctionedAt)
	})

	t.Run("employee cannot sanction even their own task", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)
		seeded := seedTask(repo, testEmployee.ID)

		_, err := svc.Sanction(ctx, testEmployee, seeded.ID, task.SanctionRequest{Decision: "approved"})
		assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
		assert.Zero(t, repo.updates)
	})

	t.Run("unknown task", func(t *testing.T) {
		repo := newFakeTaskRepo()
		svc := newTestService(repo)

		_, err := svc.Sanction(ctx, testAdmin, "missing", task.SanctionRequest{Decision: "approved"})
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})
}
