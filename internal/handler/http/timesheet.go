package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehr/hr-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hr-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

// ClockIn implements TimesheetHandler.
func (h *timesheetHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.ClockIn(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked in successfully", result)
}

// ClockOut implements TimesheetHandler.
func (h *timesheetHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.ClockOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clocked out successfully", result)
}

// ListMy implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.ListMy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPending implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.timesheetService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements TimesheetHandler.
func (h *timesheetHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req := timesheet.ApproveTimesheetRequest{ID: chi.URLParam(r, "id")}

	result, err := h.timesheetService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet approved", result)
}

// Reject implements TimesheetHandler.
func (h *timesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	var req timesheet.RejectTimesheetRequest

	// The body is optional; rejecting without notes falls back to the
	// default note.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.timesheetService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet rejected", result)
}
