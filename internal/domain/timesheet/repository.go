package timesheet

import (
	"context"

	"github.com/shopspring/decimal"
)

// TimesheetRepository defines data access methods for timesheets.
type TimesheetRepository interface {
	// Create inserts a new timesheet row. A second insert for the same
	// (user, date) hits the unique index and returns
	// ErrAlreadyClockedIn, which closes the race between two
	// simultaneous clock-ins.
	Create(ctx context.Context, t Timesheet) (Timesheet, error)

	// GetByUserAndDate returns the row for (userID, date), or nil when
	// none exists
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Timesheet, error)

	// GetByID retrieves a timesheet with owner and approver populated
	GetByID(ctx context.Context, id string) (Timesheet, error)

	// Update persists clock/approval mutations and returns the row
	Update(ctx context.Context, t Timesheet) (Timesheet, error)

	// ListByUser returns a user's timesheets, newest date first
	ListByUser(ctx context.Context, userID string) ([]Timesheet, error)

	// ListPending returns every approved=false row system-wide,
	// newest first
	ListPending(ctx context.Context) ([]Timesheet, error)

	// ListPendingByManager returns approved=false rows whose owner
	// reports to managerID, newest first
	ListPendingByManager(ctx context.Context, managerID string) ([]Timesheet, error)

	// ListAll returns every timesheet, newest date first
	ListAll(ctx context.Context) ([]Timesheet, error)

	// SumApprovedHours sums duration_hours over approved rows with
	// date in the inclusive [periodStart, periodEnd] window
	SumApprovedHours(ctx context.Context, userID string, periodStart, periodEnd string) (decimal.Decimal, error)
}
