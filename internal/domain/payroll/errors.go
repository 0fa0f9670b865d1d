package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayrollNotFound     = errors.New("payroll not found")
	ErrPeriodAlreadyExists = errors.New("payroll already generated for period")
	ErrNotDirectReport     = errors.New("payslip does not belong to a direct report")
)
