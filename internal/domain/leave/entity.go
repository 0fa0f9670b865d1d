package leave

import (
	"strings"
	"time"
)

type Type string

const (
	TypeSick     Type = "sick"
	TypeVacation Type = "vacation"
	TypeOther    Type = "other"
)

// ParseType canonicalizes a leave type string, case-insensitive.
func ParseType(s string) (Type, bool) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeSick:
		return TypeSick, true
	case TypeVacation:
		return TypeVacation, true
	case TypeOther:
		return TypeOther, true
	}
	return "", false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

type Leave struct {
	ID         string
	UserID     string
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	Type       Type
	Reason     *string
	Status     Status
	ApproverID *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	UserName      *string
	UserEmail     *string
	UserManagerID *string
	ApproverName  *string
	ApproverEmail *string
}
