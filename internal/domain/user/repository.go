package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	// Create creates a new user; duplicate email returns ErrEmailExists
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// Update applies a partial update and returns the updated user
	Update(ctx context.Context, req UpdateUserRequest) (User, error)

	// List retrieves all users, newest first
	List(ctx context.Context) ([]User, error)

	// ListByRole retrieves users with the given role, newest first
	ListByRole(ctx context.Context, role Role) ([]User, error)

	// LinkGoogleAccount attaches an OAuth identity to an existing user
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
