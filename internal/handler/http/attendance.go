package http

import (
	"log/slog"
	"net/http"

	"github.com/worktrack-hq/worktrack-backend-go/internal/domain/attendance"
	"github.com/worktrack-hq/worktrack-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	attendanceResponse, err := a.attendanceService.CheckIn(r.Context(), actor.ID)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User checked in", "user_id", actor.ID)
	response.Created(w, "Checked in successfully", attendanceResponse)
}

// CheckOut implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	attendanceResponse, err := a.attendanceService.CheckOut(r.Context(), actor.ID)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User checked out", "user_id", actor.ID)
	response.SuccessWithMessage(w, "Checked out successfully", attendanceResponse)
}

// Status implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	attendanceResponse, err := a.attendanceService.Status(r.Context(), actor.ID)
	if err != nil {
		slog.Error("Status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendanceResponse)
}
