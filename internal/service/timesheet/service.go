package timesheet

import (
	"context"
	"time"

	"github.com/peoplehr/hr-backend-go/internal/config"
	"github.com/peoplehr/hr-backend-go/internal/domain/auth"
	"github.com/peoplehr/hr-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
)

const dateLayout = "2006-01-02"

type TimesheetServiceImpl struct {
	timesheet.TimesheetRepository
	policy config.PolicyConfig
}

func NewTimesheetService(timesheetRepository timesheet.TimesheetRepository, policy config.PolicyConfig) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		TimesheetRepository: timesheetRepository,
		policy:              policy,
	}
}

// ClockIn implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ClockIn(ctx context.Context) (timesheet.TimesheetResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	now := time.Now()
	today := now.Format(dateLayout)

	existing, err := s.TimesheetRepository.GetByUserAndDate(ctx, actor.ID, today)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if existing != nil {
		return timesheet.TimesheetResponse{}, timesheet.ErrAlreadyClockedIn
	}

	// A concurrent clock-in between the check above and this insert
	// trips the (user, date) unique index and surfaces as the same
	// ErrAlreadyClockedIn.
	created, err := s.TimesheetRepository.Create(ctx, timesheet.Timesheet{
		UserID:  actor.ID,
		Date:    today,
		ClockIn: &now,
		Status:  timesheet.StatusPending,
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	populated, err := s.TimesheetRepository.GetByID(ctx, created.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return timesheet.NewTimesheetResponse(populated), nil
}

// ClockOut implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ClockOut(ctx context.Context) (timesheet.TimesheetResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	now := time.Now()
	today := now.Format(dateLayout)

	existing, err := s.TimesheetRepository.GetByUserAndDate(ctx, actor.ID, today)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if existing == nil || existing.ClockIn == nil {
		return timesheet.TimesheetResponse{}, timesheet.ErrNoClockInFound
	}
	if existing.ClockOut != nil {
		return timesheet.TimesheetResponse{}, timesheet.ErrAlreadyClockedOut
	}

	existing.ClockOut = &now
	existing.DurationHours = timesheet.ComputeDuration(*existing.ClockIn, now)

	updated, err := s.TimesheetRepository.Update(ctx, *existing)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	populated, err := s.TimesheetRepository.GetByID(ctx, updated.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return timesheet.NewTimesheetResponse(populated), nil
}

// ListMy implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListMy(ctx context.Context) (timesheet.ListTimesheetsResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return timesheet.ListTimesheetsResponse{}, err
	}

	timesheets, err := s.TimesheetRepository.ListByUser(ctx, actor.ID)
	if err != nil {
		return timesheet.ListTimesheetsResponse{}, err
	}

	return newListResponse(timesheets), nil
}

// ListPending implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ListPending(ctx context.Context) (timesheet.ListTimesheetsResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return timesheet.ListTimesheetsResponse{}, err
	}
	if !actor.CanApprove() {
		return timesheet.ListTimesheetsResponse{}, user.ErrForbidden
	}

	// The default listing is system-wide for any approver. The
	// team-scoped policy narrows managers to their direct reports.
	var timesheets []timesheet.Timesheet
	if s.policy.TeamScopedPending && actor.IsManager() {
		timesheets, err = s.TimesheetRepository.ListPendingByManager(ctx, actor.ID)
	} else {
		timesheets, err = s.TimesheetRepository.ListPending(ctx)
	}
	if err != nil {
		return timesheet.ListTimesheetsResponse{}, err
	}

	return newListResponse(timesheets), nil
}

// Approve implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Approve(ctx context.Context, req timesheet.ApproveTimesheetRequest) (timesheet.TimesheetResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !actor.CanApprove() {
		return timesheet.TimesheetResponse{}, user.ErrForbidden
	}

	found, err := s.TimesheetRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if actor.IsManager() && !ownerReportsTo(found, actor.ID) {
		return timesheet.TimesheetResponse{}, timesheet.ErrNotDirectReport
	}

	found.Approved = true
	found.Status = timesheet.StatusApproved
	found.ApproverID = &actor.ID

	if _, err := s.TimesheetRepository.Update(ctx, found); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	populated, err := s.TimesheetRepository.GetByID(ctx, found.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return timesheet.NewTimesheetResponse(populated), nil
}

// Reject implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Reject(ctx context.Context, req timesheet.RejectTimesheetRequest) (timesheet.TimesheetResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !actor.CanApprove() {
		return timesheet.TimesheetResponse{}, user.ErrForbidden
	}

	found, err := s.TimesheetRepository.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if actor.IsManager() && !ownerReportsTo(found, actor.ID) {
		return timesheet.TimesheetResponse{}, timesheet.ErrNotDirectReport
	}

	notes := timesheet.DefaultRejectionNote
	if req.Notes != nil && *req.Notes != "" {
		notes = *req.Notes
	}

	found.Approved = false
	found.Status = timesheet.StatusRejected
	found.ApproverID = &actor.ID
	found.Notes = &notes

	if _, err := s.TimesheetRepository.Update(ctx, found); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	populated, err := s.TimesheetRepository.GetByID(ctx, found.ID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return timesheet.NewTimesheetResponse(populated), nil
}

func ownerReportsTo(t timesheet.Timesheet, managerID string) bool {
	return t.UserManagerID != nil && *t.UserManagerID == managerID
}

func newListResponse(timesheets []timesheet.Timesheet) timesheet.ListTimesheetsResponse {
	resp := timesheet.ListTimesheetsResponse{
		Count:      len(timesheets),
		Timesheets: make([]timesheet.TimesheetResponse, 0, len(timesheets)),
	}
	for _, t := range timesheets {
		resp.Timesheets = append(resp.Timesheets, timesheet.NewTimesheetResponse(t))
	}
	return resp
}
