package payroll

import "context"

// PayrollRepository defines data access methods for payslips.
type PayrollRepository interface {
	// Create inserts a single payslip
	Create(ctx context.Context, p Payroll) (Payroll, error)

	// GetByID retrieves a payslip with the employee populated
	GetByID(ctx context.Context, id string) (Payroll, error)

	// ListAll returns every payslip, newest first
	ListAll(ctx context.Context) ([]Payroll, error)

	// ListByManager returns payslips of employees reporting to
	// managerID, newest first
	ListByManager(ctx context.Context, managerID string) ([]Payroll, error)

	// ExistsForPeriod reports whether any payslip was already
	// generated for the exact period
	ExistsForPeriod(ctx context.Context, periodStart, periodEnd string) (bool, error)
}
