package payroll

import (
	"context"
	"fmt"

	"github.com/peoplehr/hr-backend-go/internal/config"
	"github.com/peoplehr/hr-backend-go/internal/domain/auth"
	"github.com/peoplehr/hr-backend-go/internal/domain/payroll"
	"github.com/peoplehr/hr-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	timesheet.TimesheetRepository
	user.UserRepository
	policy config.PolicyConfig
}

func NewPayrollService(payrollRepository payroll.PayrollRepository, timesheetRepository timesheet.TimesheetRepository, userRepository user.UserRepository, policy config.PolicyConfig) payroll.PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:   payrollRepository,
		TimesheetRepository: timesheetRepository,
		UserRepository:      userRepository,
		policy:              policy,
	}
}

// Generate implements payroll.PayrollService.
//
// Each run inserts fresh payslips: re-generating the same period
// duplicates them unless the dedupe policy is enabled. Inserts are
// sequential and individually atomic; a failure partway leaves the
// earlier payslips in place.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.ListPayrollsResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollsResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionPayrollGenerate) {
		return payroll.ListPayrollsResponse{}, user.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return payroll.ListPayrollsResponse{}, err
	}

	if s.policy.DedupePayrollPeriods {
		exists, err := s.PayrollRepository.ExistsForPeriod(ctx, req.PeriodStart, req.PeriodEnd)
		if err != nil {
			return payroll.ListPayrollsResponse{}, err
		}
		if exists {
			return payroll.ListPayrollsResponse{}, payroll.ErrPeriodAlreadyExists
		}
	}

	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return payroll.ListPayrollsResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := payroll.ListPayrollsResponse{Payrolls: make([]payroll.PayrollResponse, 0, len(employees))}
	for _, emp := range employees {
		totalHours, err := s.TimesheetRepository.SumApprovedHours(ctx, emp.ID, req.PeriodStart, req.PeriodEnd)
		if err != nil {
			return payroll.ListPayrollsResponse{}, fmt.Errorf("failed to sum approved hours for %s: %w", emp.ID, err)
		}

		gross, deductions, net := payroll.ComputePay(totalHours, emp.HourlyRate)

		created, err := s.PayrollRepository.Create(ctx, payroll.Payroll{
			PeriodStart: req.PeriodStart,
			PeriodEnd:   req.PeriodEnd,
			EmployeeID:  emp.ID,
			TotalHours:  totalHours,
			GrossPay:    gross,
			Deductions:  deductions,
			NetPay:      net,
		})
		if err != nil {
			return payroll.ListPayrollsResponse{}, fmt.Errorf("failed to create payslip for %s: %w", emp.ID, err)
		}

		rate := emp.HourlyRate
		created.EmployeeName = &emp.Name
		created.EmployeeEmail = &emp.Email
		created.EmployeeRate = &rate

		resp.Payrolls = append(resp.Payrolls, payroll.NewPayrollResponse(created))
	}
	resp.Count = len(resp.Payrolls)

	return resp, nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context) (payroll.ListPayrollsResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return payroll.ListPayrollsResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionPayrollView) {
		return payroll.ListPayrollsResponse{}, user.ErrForbidden
	}

	var payrolls []payroll.Payroll
	if actor.IsManager() {
		payrolls, err = s.PayrollRepository.ListByManager(ctx, actor.ID)
	} else {
		payrolls, err = s.PayrollRepository.ListAll(ctx)
	}
	if err != nil {
		return payroll.ListPayrollsResponse{}, err
	}

	resp := payroll.ListPayrollsResponse{
		Count:    len(payrolls),
		Payrolls: make([]payroll.PayrollResponse, 0, len(payrolls)),
	}
	for _, p := range payrolls {
		resp.Payrolls = append(resp.Payrolls, payroll.NewPayrollResponse(p))
	}
	return resp, nil
}

// Get implements payroll.PayrollService.
func (s *PayrollServiceImpl) Get(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionPayrollView) {
		return payroll.PayrollResponse{}, user.ErrForbidden
	}

	found, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	if actor.IsManager() && (found.EmployeeManagerID == nil || *found.EmployeeManagerID != actor.ID) {
		return payroll.PayrollResponse{}, payroll.ErrNotDirectReport
	}

	return payroll.NewPayrollResponse(found), nil
}
