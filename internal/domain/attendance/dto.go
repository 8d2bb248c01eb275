package attendance

import "time"

type AttendanceResponse struct {
	ID           string  `json:"id,omitempty"`
	UserID       string  `json:"user_id,omitempty"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Status       string  `json:"status"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

// ToResponse converts an Attendance entity to its API shape.
func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           att.ID,
		UserID:       att.UserID,
		Date:         att.Date.Format("2006-01-02"),
		CheckInTime:  timePtrToString(att.CheckInTime),
		CheckOutTime: timePtrToString(att.CheckOutTime),
		Status:       string(att.Status),
	}
}

// AbsentResponse is the synthetic status for a day without any record.
func AbsentResponse(date time.Time) AttendanceResponse {
	return AttendanceResponse{
		Date:   date.Format("2006-01-02"),
		Status: string(StatusAbsent),
	}
}
