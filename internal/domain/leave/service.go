package leave

import "context"

// LeaveService defines business logic for the leave workflow
type LeaveService interface {
	// Request submits a new leave request for the acting user
	Request(ctx context.Context, req RequestLeaveRequest) (LeaveResponse, error)

	// ListMy retrieves the acting user's leaves
	ListMy(ctx context.Context) (ListLeavesResponse, error)

	// ListPending retrieves pending leaves scoped to the actor's role
	ListPending(ctx context.Context) (ListLeavesResponse, error)

	// ListAll retrieves all visible leaves scoped to the actor's role
	ListAll(ctx context.Context) (ListLeavesResponse, error)

	// Approve marks a leave approved
	Approve(ctx context.Context, req ApproveLeaveRequest) (LeaveResponse, error)

	// Reject marks a leave rejected
	Reject(ctx context.Context, req RejectLeaveRequest) (LeaveResponse, error)
}
