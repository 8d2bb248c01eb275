package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens today's attendance record for the user. Fails with
	// ErrAlreadyCheckedIn when a record for today already exists.
	CheckIn(ctx context.Context, userID string) (AttendanceResponse, error)

	// CheckOut closes today's record. Fails with ErrNoAttendanceToday when
	// the user never checked in, ErrAlreadyCheckedOut on a second call.
	CheckOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// Status returns today's record, or a synthetic absent response when no
	// record exists. Read-only; never creates a record.
	Status(ctx context.Context, userID string) (AttendanceResponse, error)
}
