package leave

import (
	"context"

	"github.com/peoplehr/hr-backend-go/internal/config"
	"github.com/peoplehr/hr-backend-go/internal/domain/auth"
	"github.com/peoplehr/hr-backend-go/internal/domain/leave"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/peoplehr/hr-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	policy config.PolicyConfig
}

func NewLeaveService(leaveRepository leave.LeaveRepository, policy config.PolicyConfig) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: leaveRepository,
		policy:          policy,
	}
}

// Request implements leave.LeaveService.
func (s *LeaveServiceImpl) Request(ctx context.Context, req leave.RequestLeaveRequest) (leave.LeaveResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	// Date ordering is unchecked by default: an end date before the
	// start date is accepted and stored as-is. The stricter policy
	// rejects it.
	if s.policy.ValidateLeaveDates && req.EndDate < req.StartDate {
		return leave.LeaveResponse{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		}}
	}

	leaveType, _ := leave.ParseType(req.Type)

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		UserID:    actor.ID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Type:      leaveType,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	populated, err := s.LeaveRepository.GetByID(ctx, created.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.NewLeaveResponse(populated), nil
}

// ListMy implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMy(ctx context.Context) (leave.ListLeavesResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.ListLeavesResponse{}, err
	}

	leaves, err := s.LeaveRepository.ListByUser(ctx, actor.ID)
	if err != nil {
		return leave.ListLeavesResponse{}, err
	}

	return newListResponse(leaves), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context) (leave.ListLeavesResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.ListLeavesResponse{}, err
	}
	if !actor.CanApprove() {
		return leave.ListLeavesResponse{}, user.ErrForbidden
	}

	var leaves []leave.Leave
	if actor.IsManager() {
		leaves, err = s.LeaveRepository.ListPendingByManager(ctx, actor.ID)
	} else {
		leaves, err = s.LeaveRepository.ListPending(ctx)
	}
	if err != nil {
		return leave.ListLeavesResponse{}, err
	}

	return newListResponse(leaves), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) (leave.ListLeavesResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.ListLeavesResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionLeaveViewAll) {
		return leave.ListLeavesResponse{}, user.ErrForbidden
	}

	var leaves []leave.Leave
	if actor.IsManager() {
		leaves, err = s.LeaveRepository.ListAllByManager(ctx, actor.ID)
	} else {
		leaves, err = s.LeaveRepository.ListAll(ctx)
	}
	if err != nil {
		return leave.ListLeavesResponse{}, err
	}

	return newListResponse(leaves), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ApproveLeaveRequest) (leave.LeaveResponse, error) {
	return s.review(ctx, req.ID, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	return s.review(ctx, req.ID, leave.StatusRejected)
}

func (s *LeaveServiceImpl) review(ctx context.Context, id string, status leave.Status) (leave.LeaveResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !actor.CanApprove() {
		return leave.LeaveResponse{}, user.ErrForbidden
	}

	found, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if actor.IsManager() && (found.UserManagerID == nil || *found.UserManagerID != actor.ID) {
		return leave.LeaveResponse{}, leave.ErrNotDirectReport
	}

	found.Status = status
	found.ApproverID = &actor.ID

	if _, err := s.LeaveRepository.Update(ctx, found); err != nil {
		return leave.LeaveResponse{}, err
	}

	populated, err := s.LeaveRepository.GetByID(ctx, found.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.NewLeaveResponse(populated), nil
}

func newListResponse(leaves []leave.Leave) leave.ListLeavesResponse {
	resp := leave.ListLeavesResponse{
		Count:  len(leaves),
		Leaves: make([]leave.LeaveResponse, 0, len(leaves)),
	}
	for _, l := range leaves {
		resp.Leaves = append(resp.Leaves, leave.NewLeaveResponse(l))
	}
	return resp
}
