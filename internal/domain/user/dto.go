package user

import (
	"time"

	"github.com/peoplehr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// UserRef is the populated form of a user reference embedded in other
// documents (owner, approver, payroll employee).
type UserRef struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
}

type UserResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	ManagerID  *string         `json:"manager_id,omitempty"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// NewUserResponse maps a user entity to its response form. The
// password hash and oauth identifiers never leave the service layer.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		HourlyRate: u.HourlyRate,
		ManagerID:  u.ManagerID,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.Format(time.RFC3339),
	}
}

type CreateUserRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	ManagerID  *string         `json:"manager_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if _, ok := ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: employee, manager, hr",
		})
	}

	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be non-negative",
		})
	}

	if r.ManagerID != nil && !validator.IsValidUUID(*r.ManagerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_id",
			Message: "manager_id must be a valid id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Role       *string          `json:"role,omitempty"`
	HourlyRate *decimal.Decimal `json:"hourly_rate,omitempty"`
	ManagerID  *string          `json:"manager_id,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if r.Role != nil {
		if _, ok := ParseRole(*r.Role); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "role must be one of: employee, manager, hr",
			})
		}
	}

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AddEmployeeRequest is the hr directory shortcut: the new user always
// gets the employee role and a default password.
type AddEmployeeRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	ManagerID  *string         `json:"manager_id,omitempty"`
}

func (r *AddEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}

	if r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_rate",
			Message: "hourly_rate must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListUsersResponse struct {
	Total int            `json:"total"`
	Users []UserResponse `json:"users"`
}
