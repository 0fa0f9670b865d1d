package user

import "errors"

// User domain errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmailExists    = errors.New("email already registered")
	ErrInvalidManager = errors.New("manager reference must point to a user with the manager role")
	ErrForbidden      = errors.New("not authorized to access this resource")
)
