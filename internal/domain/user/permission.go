package user

type Permission string

const (
	// Timesheets
	PermissionTimesheetClock    Permission = "timesheet.clock"
	PermissionTimesheetViewOwn  Permission = "timesheet.view_own"
	PermissionTimesheetViewAll  Permission = "timesheet.view_all"
	PermissionTimesheetApprove  Permission = "timesheet.approve"

	// Leaves
	PermissionLeaveRequest Permission = "leave.request"
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveApprove Permission = "leave.approve"

	// Payroll
	PermissionPayrollGenerate Permission = "payroll.generate"
	PermissionPayrollView     Permission = "payroll.view"

	// Users
	PermissionUserViewAll Permission = "user.view_all"
	PermissionUserManage  Permission = "user.manage"

	// Reports
	PermissionReportsView Permission = "reports.view"
)

// RolePermissions maps roles to their permissions. View-all and
// approve permissions for managers are still scoped to direct reports
// by the services; hr reads are unrestricted.
var RolePermissions = map[Role][]Permission{
	RoleHR: {
		PermissionTimesheetClock,
		PermissionTimesheetViewOwn,
		PermissionTimesheetViewAll,
		PermissionTimesheetApprove,
		PermissionLeaveRequest,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionPayrollGenerate,
		PermissionPayrollView,
		PermissionUserViewAll,
		PermissionUserManage,
		PermissionReportsView,
	},
	RoleManager: {
		PermissionTimesheetClock,
		PermissionTimesheetViewOwn,
		PermissionTimesheetViewAll,
		PermissionTimesheetApprove,
		PermissionLeaveRequest,
		PermissionLeaveViewOwn,
		PermissionLeaveViewAll,
		PermissionLeaveApprove,
		PermissionPayrollView,
		PermissionUserViewAll,
		PermissionReportsView,
	},
	RoleEmployee: {
		PermissionTimesheetClock,
		PermissionTimesheetViewOwn,
		PermissionLeaveRequest,
		PermissionLeaveViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
