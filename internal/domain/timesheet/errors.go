package timesheet

import "errors"

// Timesheet domain errors
var (
	// Clock errors
	ErrAlreadyClockedIn  = errors.New("already clocked in today")
	ErrNoClockInFound    = errors.New("no clock in found for today")
	ErrAlreadyClockedOut = errors.New("already clocked out today")

	// General errors
	ErrTimesheetNotFound = errors.New("timesheet not found")
	ErrNotDirectReport   = errors.New("timesheet does not belong to a direct report")
)
