package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplehr/hr-backend-go/internal/domain/leave"
	"github.com/peoplehr/hr-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// Request implements LeaveHandler.
func (h *leaveHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req leave.RequestLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.leaveService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave requested", result)
}

// ListMy implements LeaveHandler.
func (h *leaveHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListMy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPending implements LeaveHandler.
func (h *leaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements LeaveHandler.
func (h *leaveHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements LeaveHandler.
func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	req := leave.ApproveLeaveRequest{ID: chi.URLParam(r, "id")}

	result, err := h.leaveService.Approve(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave approved", result)
}

// Reject implements LeaveHandler.
func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	req := leave.RejectLeaveRequest{ID: chi.URLParam(r, "id")}

	result, err := h.leaveService.Reject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave rejected", result)
}
