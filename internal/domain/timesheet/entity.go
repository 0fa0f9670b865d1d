package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// DefaultRejectionNote is applied when a rejection carries no notes.
const DefaultRejectionNote = "Rejected by manager"

// Timesheet is keyed by (user, date): at most one row per user per
// calendar day, enforced by a unique index in storage.
type Timesheet struct {
	ID            string
	UserID        string
	Date          string // YYYY-MM-DD
	ClockIn       *time.Time
	ClockOut      *time.Time
	DurationHours decimal.Decimal
	Approved      bool
	Status        Status
	ApproverID    *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO / Join
	UserName      *string
	UserEmail     *string
	UserManagerID *string
	ApproverName  *string
	ApproverEmail *string
}

// ComputeDuration returns the worked hours between clock-in and
// clock-out, rounded to 2 decimal places. Computed once at clock-out
// and never recomputed retroactively.
func ComputeDuration(clockIn, clockOut time.Time) decimal.Decimal {
	seconds := clockOut.Sub(clockIn).Seconds()
	return decimal.NewFromFloat(seconds / 3600).Round(2)
}
