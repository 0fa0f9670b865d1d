package payroll

import "context"

// PayrollService defines business logic for payroll generation.
type PayrollService interface {
	// Generate produces one payslip per employee for the period from
	// approved timesheet hours
	Generate(ctx context.Context, req GeneratePayrollRequest) (ListPayrollsResponse, error)

	// List retrieves payslips scoped to the actor's role
	List(ctx context.Context) (ListPayrollsResponse, error)

	// Get retrieves a single payslip visible to the actor
	Get(ctx context.Context, id string) (PayrollResponse, error)
}
