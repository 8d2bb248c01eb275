package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut  = errors.New("you have already checked out")
	ErrNoAttendanceToday  = errors.New("no attendance record found for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
