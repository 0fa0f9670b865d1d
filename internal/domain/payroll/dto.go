package payroll

import (
	"time"

	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/peoplehr/hr-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start is required",
		})
	} else if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period_start must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.PeriodEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end is required",
		})
	} else if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "period_end",
			Message: "period_end must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollResponse struct {
	ID          string        `json:"id"`
	PeriodStart string        `json:"period_start"`
	PeriodEnd   string        `json:"period_end"`
	Employee    *user.UserRef `json:"employee,omitempty"`
	TotalHours  string        `json:"total_hours"`
	GrossPay    string        `json:"gross_pay"`
	Deductions  string        `json:"deductions"`
	NetPay      string        `json:"net_pay"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

// NewPayrollResponse maps a payslip entity. Money fields are fixed to
// two decimal places; total hours keep their natural precision.
func NewPayrollResponse(p Payroll) PayrollResponse {
	resp := PayrollResponse{
		ID:          p.ID,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		TotalHours:  p.TotalHours.String(),
		GrossPay:    p.GrossPay.StringFixed(2),
		Deductions:  p.Deductions.StringFixed(2),
		NetPay:      p.NetPay.StringFixed(2),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}

	if p.EmployeeName != nil {
		ref := user.UserRef{ID: p.EmployeeID, Name: *p.EmployeeName}
		if p.EmployeeEmail != nil {
			ref.Email = *p.EmployeeEmail
		}
		ref.HourlyRate = p.EmployeeRate
		resp.Employee = &ref
	}

	return resp
}

type ListPayrollsResponse struct {
	Count    int               `json:"count"`
	Payrolls []PayrollResponse `json:"payrolls"`
}
