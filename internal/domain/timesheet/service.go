package timesheet

import "context"

// TimesheetService defines business logic for the timesheet lifecycle
type TimesheetService interface {
	// ClockIn opens today's timesheet for the acting employee
	ClockIn(ctx context.Context) (TimesheetResponse, error)

	// ClockOut closes today's timesheet and computes the duration
	ClockOut(ctx context.Context) (TimesheetResponse, error)

	// ListMy retrieves the acting user's timesheets
	ListMy(ctx context.Context) (ListTimesheetsResponse, error)

	// ListPending retrieves pending timesheets for manager/hr review
	ListPending(ctx context.Context) (ListTimesheetsResponse, error)

	// Approve marks a timesheet approved
	Approve(ctx context.Context, req ApproveTimesheetRequest) (TimesheetResponse, error)

	// Reject marks a timesheet rejected with optional notes
	Reject(ctx context.Context, req RejectTimesheetRequest) (TimesheetResponse, error)
}
