package auth

import (
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/peoplehr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	Role       string          `json:"role"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
}

func (r *RegisterRequest) Validate() error {
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

	if _, ok := user.ParseRole(r.Role); !ok {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken           string            `json:"access_token"`
	AccessTokenExpiresAt  int64             `json:"access_token_expires_at"`
	RefreshToken          string            `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt int64             `json:"refresh_token_expires_at,omitempty"`
	User                  user.UserResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
