package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payroll struct {
	ID          string
	PeriodStart string // YYYY-MM-DD
	PeriodEnd   string // YYYY-MM-DD
	EmployeeID  string
	TotalHours  decimal.Decimal
	GrossPay    decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	EmployeeName      *string
	EmployeeEmail     *string
	EmployeeRate      *decimal.Decimal
	EmployeeManagerID *string
}

// ComputePay derives the money fields of a payslip from approved
// hours and the employee's hourly rate. Gross pay is rounded to two
// decimal places; deductions are currently always zero.
func ComputePay(totalHours, hourlyRate decimal.Decimal) (gross, deductions, net decimal.Decimal) {
	gross = totalHours.Mul(hourlyRate).Round(2)
	deductions = decimal.Zero
	net = gross.Sub(deductions)
	return gross, deductions, net
}
