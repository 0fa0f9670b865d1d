package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	cases := []struct {
		input string
		want  Role
		ok    bool
	}{
		{"employee", RoleEmployee, true},
		{"Employee", RoleEmployee, true},
		{"MANAGER", RoleManager, true},
		{"hr", RoleHR, true},
		{"HR", RoleHR, true},
		{" hr ", RoleHR, true},
		{"admin", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		got, ok := ParseRole(c.input)
		assert.Equal(t, c.ok, ok, "ParseRole(%q)", c.input)
		assert.Equal(t, c.want, got, "ParseRole(%q)", c.input)
	}
}

func TestIsDirectReportOf(t *testing.T) {
	managerID := "6a2c6a1e-0f4b-4a4e-9d39-0a0d9a2f9b10"
	otherID := "9f1b3c5d-7e2a-4c8b-8d6e-1f2a3b4c5d6e"

	report := User{ID: "emp-1", Role: RoleEmployee, ManagerID: &managerID}
	assert.True(t, report.IsDirectReportOf(managerID))
	assert.False(t, report.IsDirectReportOf(otherID))

	orphan := User{ID: "emp-2", Role: RoleEmployee}
	assert.False(t, orphan.IsDirectReportOf(managerID))
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleHR, PermissionPayrollGenerate))
	assert.True(t, HasPermission(RoleManager, PermissionTimesheetApprove))
	assert.True(t, HasPermission(RoleManager, PermissionPayrollView))
	assert.False(t, HasPermission(RoleManager, PermissionPayrollGenerate))
	assert.False(t, HasPermission(RoleEmployee, PermissionTimesheetViewAll))
	assert.False(t, HasPermission(Role("unknown"), PermissionTimesheetViewOwn))
}

func TestCanApprove(t *testing.T) {
	hr := User{Role: RoleHR}
	manager := User{Role: RoleManager}
	employee := User{Role: RoleEmployee}

	assert.True(t, hr.CanApprove())
	assert.True(t, manager.CanApprove())
	assert.False(t, employee.CanApprove())
}
