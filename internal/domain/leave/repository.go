package leave

import "context"

// LeaveRepository defines data access methods for leaves.
type LeaveRepository interface {
	// Create inserts a new leave request
	Create(ctx context.Context, l Leave) (Leave, error)

	// GetByID retrieves a leave with owner and approver populated
	GetByID(ctx context.Context, id string) (Leave, error)

	// Update persists a status transition and returns the row
	Update(ctx context.Context, l Leave) (Leave, error)

	// ListByUser returns a user's leaves, newest first
	ListByUser(ctx context.Context, userID string) ([]Leave, error)

	// ListPending returns all pending leaves, newest first
	ListPending(ctx context.Context) ([]Leave, error)

	// ListPendingByManager returns pending leaves whose owner reports
	// to managerID, newest first
	ListPendingByManager(ctx context.Context, managerID string) ([]Leave, error)

	// ListAll returns every leave, newest first
	ListAll(ctx context.Context) ([]Leave, error)

	// ListAllByManager returns leaves whose owner reports to
	// managerID, newest first
	ListAllByManager(ctx context.Context, managerID string) ([]Leave, error)
}
