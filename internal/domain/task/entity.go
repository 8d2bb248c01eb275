package task

import "time"

// Status is the work status of a task. Transitions are actor-initiated and
// unconstrained in direction; moving off completed resets the sanction.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether the status is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// AdminStatus is the sanction state an admin attaches to completed work,
// orthogonal to Status.
type AdminStatus string

const (
	AdminPending  AdminStatus = "pending"
	AdminApproved AdminStatus = "approved"
	AdminRejected AdminStatus = "rejected"
)

// Valid reports whether the admin status is one of the known states.
func (s AdminStatus) Valid() bool {
	switch s {
	case AdminPending, AdminApproved, AdminRejected:
		return true
	}
	return false
}

// IsDecision reports whether the admin status is an actual decision rather
// than the initial pending state.
func (s AdminStatus) IsDecision() bool {
	return s == AdminApproved || s == AdminRejected
}

// TimeLog is one timed work session. DurationMinutes is computed once when
// the session is closed and stored as-is; it is never recomputed.
type TimeLog struct {
	ID              string
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes int
	CreatedAt       time.Time
}

type Task struct {
	ID           string
	Title        string
	Description  string
	AssignedTo   string
	Status       Status
	AdminStatus  AdminStatus
	SanctionedAt *time.Time
	TimeLogs     []TimeLog
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	AssigneeName *string
}

// ApplyStatus moves the task to the requested status. Any status other than
// completed drops the admin sanction: a task cannot carry approval or
// rejection for unfinished work. The reset is keyed off the new status, so
// re-applying a non-completed status is idempotent.
func (t *Task) ApplyStatus(s Status) {
	t.Status = s
	if s != StatusCompleted {
		t.AdminStatus = AdminPending
		t.SanctionedAt = nil
	}
}

// ApplySanction records an admin decision. Approval stamps SanctionedAt;
// rejection clears it. The work status is left untouched.
func (t *Task) ApplySanction(decision AdminStatus, at time.Time) {
	t.AdminStatus = decision
	if decision == AdminApproved {
		t.SanctionedAt = &at
	} else {
		t.SanctionedAt = nil
	}
}
