package report

import "context"

// ReportService exposes read-only aggregations over timesheets,
// payrolls, leaves and the employee directory.
type ReportService interface {
	// Attendance returns every timesheet, date desc (manager/hr)
	Attendance(ctx context.Context) (AttendanceReportResponse, error)

	// Payroll returns every payslip, newest first (hr)
	Payroll(ctx context.Context) (PayrollReportResponse, error)

	// Leaves returns every leave, newest first (manager/hr)
	Leaves(ctx context.Context) (LeaveReportResponse, error)

	// Employees returns all employee-role users (hr)
	Employees(ctx context.Context) (EmployeeReportResponse, error)
}
