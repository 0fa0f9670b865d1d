package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/peoplehr/hr-backend-go/internal/domain/auth"
	"github.com/peoplehr/hr-backend-go/internal/domain/leave"
	"github.com/peoplehr/hr-backend-go/internal/domain/payroll"
	"github.com/peoplehr/hr-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/peoplehr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrOAuthEmailMissing):
		BadRequest(w, "Google account has no verified email", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInvalidManager):
		BadRequest(w, "Manager does not exist", nil)
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "Not authorized for this action")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for today")
	case errors.Is(err, timesheet.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out for today")
	case errors.Is(err, timesheet.ErrNoClockInFound):
		NotFound(w, "No clock in found for today")
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrNotDirectReport):
		Forbidden(w, "Timesheet does not belong to a direct report")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, leave.ErrNotDirectReport):
		Forbidden(w, "Leave does not belong to a direct report")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrPeriodAlreadyExists):
		Conflict(w, "Payroll already generated for this period")
	case errors.Is(err, payroll.ErrNotDirectReport):
		Forbidden(w, "Not authorized to view this payroll")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
