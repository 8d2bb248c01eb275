package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
)

// Attendance is one user's record for one calendar day. At most one record
// exists per (UserID, Date); Date carries no time component.
type Attendance struct {
	ID           string
	UserID       string
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
