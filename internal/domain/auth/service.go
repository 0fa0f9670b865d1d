package auth

import (
	"context"

	"github.com/peoplehr/hr-backend-go/internal/domain/user"
)

// AuthService defines authentication operations
type AuthService interface {
	// Register creates an account. The caller-supplied role is
	// honored unless the registration-role policy locks it to
	// employee.
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login verifies credentials and issues tokens
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)

	// LoginWithGoogle returns the OAuth2 redirect URL
	LoginWithGoogle(ctx context.Context, userAgent string) (redirectURL string, err error)

	// OAuthCallbackGoogle completes the OAuth2 code exchange and
	// issues tokens for the matching user
	OAuthCallbackGoogle(ctx context.Context, code string) (TokenResponse, error)

	// Me returns the authenticated user's profile
	Me(ctx context.Context) (user.UserResponse, error)
}
