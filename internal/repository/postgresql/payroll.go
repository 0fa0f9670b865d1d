package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplehr/hr-backend-go/internal/domain/payroll"
	"github.com/peoplehr/hr-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

const payrollJoinColumns = `
	SELECT p.id, p.period_start, p.period_end, p.employee_id, p.total_hours,
		p.gross_pay, p.deductions, p.net_pay, p.created_at, p.updated_at,
		e.name, e.email, e.hourly_rate, e.manager_id
	FROM payrolls p
	JOIN users e ON e.id = p.employee_id
`

func scanPayrollJoinRow(row pgx.Row) (payroll.Payroll, error) {
	var (
		p             payroll.Payroll
		periodStart   time.Time
		periodEnd     time.Time
		employeeName  string
		employeeEmail string
		employeeRate  decimal.Decimal
	)
	err := row.Scan(
		&p.ID,
		&periodStart,
		&periodEnd,
		&p.EmployeeID,
		&p.TotalHours,
		&p.GrossPay,
		&p.Deductions,
		&p.NetPay,
		&p.CreatedAt,
		&p.UpdatedAt,
		&employeeName,
		&employeeEmail,
		&employeeRate,
		&p.EmployeeManagerID,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}

	p.PeriodStart = periodStart.Format(dateLayout)
	p.PeriodEnd = periodEnd.Format(dateLayout)
	p.EmployeeName = &employeeName
	p.EmployeeEmail = &employeeEmail
	p.EmployeeRate = &employeeRate
	return p, nil
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (id, period_start, period_end, employee_id, total_hours, gross_pay, deductions, net_pay)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, period_start, period_end, employee_id, total_hours,
			gross_pay, deductions, net_pay, created_at, updated_at
	`

	var (
		created     payroll.Payroll
		periodStart time.Time
		periodEnd   time.Time
	)
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		p.PeriodStart,
		p.PeriodEnd,
		p.EmployeeID,
		p.TotalHours,
		p.GrossPay,
		p.Deductions,
		p.NetPay,
	).Scan(
		&created.ID,
		&periodStart,
		&periodEnd,
		&created.EmployeeID,
		&created.TotalHours,
		&created.GrossPay,
		&created.Deductions,
		&created.NetPay,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return payroll.Payroll{}, err
	}

	created.PeriodStart = periodStart.Format(dateLayout)
	created.PeriodEnd = periodEnd.Format(dateLayout)
	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollJoinColumns + ` WHERE p.id = $1`

	found, err := scanPayrollJoinRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, err
	}

	return found, nil
}

func (r *payrollRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := payrollJoinColumns + where + ` ORDER BY p.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payrolls []payroll.Payroll
	for rows.Next() {
		p, err := scanPayrollJoinRow(rows)
		if err != nil {
			return nil, err
		}
		payrolls = append(payrolls, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payrolls, nil
}

// ListAll implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListAll(ctx context.Context) ([]payroll.Payroll, error) {
	return r.list(ctx, ``)
}

// ListByManager implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByManager(ctx context.Context, managerID string) ([]payroll.Payroll, error) {
	return r.list(ctx, ` WHERE e.manager_id = $1`, managerID)
}

// ExistsForPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ExistsForPeriod(ctx context.Context, periodStart, periodEnd string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM payrolls WHERE period_start = $1 AND period_end = $2)`

	var exists bool
	err := q.QueryRow(ctx, query, periodStart, periodEnd).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}
