package user

import "context"

// UserService defines business logic for user management
type UserService interface {
	// Create creates a user with any role (hr only)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// Update applies a partial update to a user (hr only)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// List retrieves all users (hr/manager)
	List(ctx context.Context) (ListUsersResponse, error)

	// ListEmployees retrieves employee-role users (hr only)
	ListEmployees(ctx context.Context) (ListUsersResponse, error)

	// AddEmployee creates an employee with a default password (hr only)
	AddEmployee(ctx context.Context, req AddEmployeeRequest) (UserResponse, error)
}
