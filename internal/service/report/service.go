package report

import (
	"context"

	"github.com/peoplehr/hr-backend-go/internal/domain/auth"
	"github.com/peoplehr/hr-backend-go/internal/domain/leave"
	"github.com/peoplehr/hr-backend-go/internal/domain/payroll"
	"github.com/peoplehr/hr-backend-go/internal/domain/report"
	"github.com/peoplehr/hr-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
)

// ReportServiceImpl composes the other repositories; reports have no
// storage of their own.
type ReportServiceImpl struct {
	timesheet.TimesheetRepository
	payroll.PayrollRepository
	leave.LeaveRepository
	user.UserRepository
}

func NewReportService(timesheetRepository timesheet.TimesheetRepository, payrollRepository payroll.PayrollRepository, leaveRepository leave.LeaveRepository, userRepository user.UserRepository) report.ReportService {
	return &ReportServiceImpl{
		TimesheetRepository: timesheetRepository,
		PayrollRepository:   payrollRepository,
		LeaveRepository:     leaveRepository,
		UserRepository:      userRepository,
	}
}

// Attendance implements report.ReportService.
func (s *ReportServiceImpl) Attendance(ctx context.Context) (report.AttendanceReportResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return report.AttendanceReportResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionReportsView) {
		return report.AttendanceReportResponse{}, user.ErrForbidden
	}

	timesheets, err := s.TimesheetRepository.ListAll(ctx)
	if err != nil {
		return report.AttendanceReportResponse{}, err
	}

	resp := report.AttendanceReportResponse{
		Count:      len(timesheets),
		Timesheets: make([]timesheet.TimesheetResponse, 0, len(timesheets)),
	}
	for _, t := range timesheets {
		resp.Timesheets = append(resp.Timesheets, timesheet.NewTimesheetResponse(t))
	}
	return resp, nil
}

// Payroll implements report.ReportService.
func (s *ReportServiceImpl) Payroll(ctx context.Context) (report.PayrollReportResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return report.PayrollReportResponse{}, err
	}
	if !actor.IsHR() {
		return report.PayrollReportResponse{}, user.ErrForbidden
	}

	payrolls, err := s.PayrollRepository.ListAll(ctx)
	if err != nil {
		return report.PayrollReportResponse{}, err
	}

	resp := report.PayrollReportResponse{
		Count:    len(payrolls),
		Payrolls: make([]payroll.PayrollResponse, 0, len(payrolls)),
	}
	for _, p := range payrolls {
		resp.Payrolls = append(resp.Payrolls, payroll.NewPayrollResponse(p))
	}
	return resp, nil
}

// Leaves implements report.ReportService.
func (s *ReportServiceImpl) Leaves(ctx context.Context) (report.LeaveReportResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return report.LeaveReportResponse{}, err
	}
	if !user.HasPermission(actor.Role, user.PermissionReportsView) {
		return report.LeaveReportResponse{}, user.ErrForbidden
	}

	leaves, err := s.LeaveRepository.ListAll(ctx)
	if err != nil {
		return report.LeaveReportResponse{}, err
	}

	resp := report.LeaveReportResponse{
		Count:  len(leaves),
		Leaves: make([]leave.LeaveResponse, 0, len(leaves)),
	}
	for _, l := range leaves {
		resp.Leaves = append(resp.Leaves, leave.NewLeaveResponse(l))
	}
	return resp, nil
}

// Employees implements report.ReportService.
func (s *ReportServiceImpl) Employees(ctx context.Context) (report.EmployeeReportResponse, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return report.EmployeeReportResponse{}, err
	}
	if !actor.IsHR() {
		return report.EmployeeReportResponse{}, user.ErrForbidden
	}

	employees, err := s.UserRepository.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return report.EmployeeReportResponse{}, err
	}

	resp := report.EmployeeReportResponse{
		Count:     len(employees),
		Employees: make([]user.UserResponse, 0, len(employees)),
	}
	for _, u := range employees {
		resp.Employees = append(resp.Employees, user.NewUserResponse(u))
	}
	return resp, nil
}
