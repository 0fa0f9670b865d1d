package leave

import (
	"time"

	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/peoplehr/hr-backend-go/internal/pkg/validator"
)

type RequestLeaveRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Type      string  `json:"type"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *RequestLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if _, ok := ParseType(r.Type); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: sick, vacation, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveLeaveRequest struct {
	ID string `json:"-"`
}

type RejectLeaveRequest struct {
	ID string `json:"-"`
}

type LeaveResponse struct {
	ID        string        `json:"id"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Type      string        `json:"type"`
	Reason    *string       `json:"reason,omitempty"`
	Status    string        `json:"status"`
	User      *user.UserRef `json:"user,omitempty"`
	Approver  *user.UserRef `json:"approver,omitempty"`
	CreatedAt string        `json:"created_at"`
	UpdatedAt string        `json:"updated_at"`
}

// NewLeaveResponse maps a leave entity, embedding the owner and
// approver references when the join fields are present.
func NewLeaveResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:        l.ID,
		StartDate: l.StartDate,
		EndDate:   l.EndDate,
		Type:      string(l.Type),
		Reason:    l.Reason,
		Status:    string(l.Status),
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
		UpdatedAt: l.UpdatedAt.Format(time.RFC3339),
	}

	if l.UserName != nil {
		ref := user.UserRef{ID: l.UserID, Name: *l.UserName}
		if l.UserEmail != nil {
			ref.Email = *l.UserEmail
		}
		resp.User = &ref
	}
	if l.ApproverID != nil && l.ApproverName != nil {
		ref := user.UserRef{ID: *l.ApproverID, Name: *l.ApproverName}
		if l.ApproverEmail != nil {
			ref.Email = *l.ApproverEmail
		}
		resp.Approver = &ref
	}

	return resp
}

type ListLeavesResponse struct {
	Count  int             `json:"count"`
	Leaves []LeaveResponse `json:"leaves"`
}
