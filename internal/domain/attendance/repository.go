package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. The (user_id, date) pair is unique at the
	// storage level; concurrent inserts for the same key surface
	// ErrAlreadyCheckedIn for every caller but one.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the record for a user on a calendar day.
	// Returns ErrAttendanceNotFound when none exists.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Attendance, error)

	// Update writes the mutable fields of an existing record
	Update(ctx context.Context, att Attendance) error
}
