package task

import (
	"time"

	"github.com/worktrack-hq/worktrack-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to is required",
		})
	} else if !validator.IsValidUUID(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to",
			Message: "assigned_to must be a valid user id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

func (r *SetStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, in-progress, completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeLogRequest struct {
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func (r *TimeLogRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := time.Time{}, false
	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if start, startOK = validator.IsValidDateTime(r.StartTime); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid ISO8601 timestamp",
		})
	}

	if r.EndTime != nil {
		end, ok := validator.IsValidDateTime(*r.EndTime)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be a valid ISO8601 timestamp",
			})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must not be before start_time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToTimeLog builds the entry to append. The duration is derived here, once,
// at the moment the session is closed; an open session carries zero.
func (r *TimeLogRequest) ToTimeLog() TimeLog {
	start, _ := validator.IsValidDateTime(r.StartTime)

	entry := TimeLog{StartTime: start.UTC()}
	if r.EndTime != nil {
		end, _ := validator.IsValidDateTime(*r.EndTime)
		endUTC := end.UTC()
		entry.EndTime = &endUTC
		entry.DurationMinutes = int(endUTC.Sub(entry.StartTime).Minutes())
	}
	return entry
}

type SanctionRequest struct {
	Decision string `json:"decision"`
}

func (r *SanctionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Decision) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision is required",
		})
	} else if !AdminStatus(r.Decision).IsDecision() {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be either approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeLogResponse struct {
	ID              string  `json:"id"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
}

type TaskResponse struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	AssignedTo   string            `json:"assigned_to"`
	AssigneeName *string           `json:"assignee_name,omitempty"`
	Status       string            `json:"status"`
	AdminStatus  string            `json:"admin_status"`
	SanctionedAt *string           `json:"sanctioned_at,omitempty"`
	TimeLogs     []TimeLogResponse `json:"time_logs"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    string            `json:"updated_at"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02 15:04:05")
	return &formatted
}

// ToResponse converts a Task entity to its API shape.
func ToResponse(t Task) TaskResponse {
	logs := make([]TimeLogResponse, 0, len(t.TimeLogs))
	for _, l := range t.TimeLogs {
		logs = append(logs, TimeLogResponse{
			ID:              l.ID,
			StartTime:       l.StartTime.Format("2006-01-02 15:04:05"),
			EndTime:         timePtrToString(l.EndTime),
			DurationMinutes: l.DurationMinutes,
		})
	}

	return TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		AssignedTo:   t.AssignedTo,
		AssigneeName: t.AssigneeName,
		Status:       string(t.Status),
		AdminStatus:  string(t.AdminStatus),
		SanctionedAt: timePtrToString(t.SanctionedAt),
		TimeLogs:     logs,
		CreatedAt:    t.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    t.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
