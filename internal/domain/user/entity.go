package user

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleEmployee Role = "employee" // Regular employee, sees own records only
	RoleManager  Role = "manager"  // Can approve records of direct reports
	RoleHR       Role = "hr"       // Unrestricted reads, manages users and payroll
)

// ParseRole canonicalizes a role string. Input is case-insensitive;
// storage and comparison always use the lowercase constant.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleEmployee:
		return RoleEmployee, true
	case RoleManager:
		return RoleManager, true
	case RoleHR:
		return RoleHR, true
	}
	return "", false
}

type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    *string
	Role            Role
	HourlyRate      decimal.Decimal
	ManagerID       *string
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	ManagerName *string
}

// IsHR checks if user has the hr role
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// IsManager checks if user has the manager role
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// CanApprove checks if user can approve timesheets and leaves
func (u *User) CanApprove() bool {
	return u.Role == RoleManager || u.Role == RoleHR
}

// IsDirectReportOf reports whether u's manager field equals managerID.
// The reporting relation is single-level; no transitive lookup exists.
func (u *User) IsDirectReportOf(managerID string) bool {
	return u.ManagerID != nil && *u.ManagerID == managerID
}
