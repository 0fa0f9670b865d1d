package report

import (
	"github.com/peoplehr/hr-backend-go/internal/domain/leave"
	"github.com/peoplehr/hr-backend-go/internal/domain/payroll"
	"github.com/peoplehr/hr-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
)

type AttendanceReportResponse struct {
	Count      int                           `json:"count"`
	Timesheets []timesheet.TimesheetResponse `json:"timesheets"`
}

type PayrollReportResponse struct {
	Count    int                       `json:"count"`
	Payrolls []payroll.PayrollResponse `json:"payrolls"`
}

type LeaveReportResponse struct {
	Count  int                   `json:"count"`
	Leaves []leave.LeaveResponse `json:"leaves"`
}

type EmployeeReportResponse struct {
	Count     int                 `json:"count"`
	Employees []user.UserResponse `json:"employees"`
}
