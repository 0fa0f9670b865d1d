package timesheet

import (
	"time"

	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

type TimesheetResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	ClockIn       *string         `json:"clock_in,omitempty"`
	ClockOut      *string         `json:"clock_out,omitempty"`
	DurationHours decimal.Decimal `json:"duration_hours"`
	Approved      bool            `json:"approved"`
	Status        string          `json:"status"`
	Notes         *string         `json:"notes,omitempty"`
	User          *user.UserRef   `json:"user,omitempty"`
	Approver      *user.UserRef   `json:"approver,omitempty"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// NewTimesheetResponse maps a timesheet entity, embedding the owner
// and approver references when the join fields are present.
func NewTimesheetResponse(t Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:            t.ID,
		Date:          t.Date,
		DurationHours: t.DurationHours,
		Approved:      t.Approved,
		Status:        string(t.Status),
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     t.UpdatedAt.Format(time.RFC3339),
	}

	if t.ClockIn != nil {
		clockIn := t.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &clockIn
	}
	if t.ClockOut != nil {
		clockOut := t.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &clockOut
	}

	if t.UserName != nil {
		ref := user.UserRef{ID: t.UserID, Name: *t.UserName}
		if t.UserEmail != nil {
			ref.Email = *t.UserEmail
		}
		resp.User = &ref
	}
	if t.ApproverID != nil && t.ApproverName != nil {
		ref := user.UserRef{ID: *t.ApproverID, Name: *t.ApproverName}
		if t.ApproverEmail != nil {
			ref.Email = *t.ApproverEmail
		}
		resp.Approver = &ref
	}

	return resp
}

type ListTimesheetsResponse struct {
	Count      int                 `json:"count"`
	Timesheets []TimesheetResponse `json:"timesheets"`
}

type ApproveTimesheetRequest struct {
	ID string `json:"-"`
}

type RejectTimesheetRequest struct {
	ID    string  `json:"-"`
	Notes *string `json:"notes,omitempty"`
}
