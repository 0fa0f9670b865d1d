package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("token is missing or invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrOAuthEmailMissing  = errors.New("oauth provider returned no verified email")
)
