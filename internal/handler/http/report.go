package http

import (
	"net/http"

	"github.com/peoplehr/hr-backend-go/internal/domain/report"
	"github.com/peoplehr/hr-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
	Leaves(w http.ResponseWriter, r *http.Request)
	Employees(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Attendance implements ReportHandler.
func (h *reportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Attendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Payroll implements ReportHandler.
func (h *reportHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Payroll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Leaves implements ReportHandler.
func (h *reportHandlerImpl) Leaves(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Leaves(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Employees implements ReportHandler.
func (h *reportHandlerImpl) Employees(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Employees(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
