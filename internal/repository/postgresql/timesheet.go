package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplehr/hr-backend-go/internal/domain/timesheet"
	"github.com/peoplehr/hr-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

// timesheetJoinColumns selects a timesheet with its owner and approver
// populated. The owner join is inner (user_id is NOT NULL), the
// approver join is left.
const timesheetJoinColumns = `
	SELECT t.id, t.user_id, t.date, t.clock_in, t.clock_out, t.duration_hours,
		t.approved, t.status, t.approver_id, t.notes, t.created_at, t.updated_at,
		u.name, u.email, u.manager_id, a.name, a.email
	FROM timesheets t
	JOIN users u ON u.id = t.user_id
	LEFT JOIN users a ON a.id = t.approver_id
`

func scanTimesheetJoinRow(row pgx.Row) (timesheet.Timesheet, error) {
	var (
		t         timesheet.Timesheet
		date      time.Time
		userName  string
		userEmail string
	)
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&date,
		&t.ClockIn,
		&t.ClockOut,
		&t.DurationHours,
		&t.Approved,
		&t.Status,
		&t.ApproverID,
		&t.Notes,
		&t.CreatedAt,
		&t.UpdatedAt,
		&userName,
		&userEmail,
		&t.UserManagerID,
		&t.ApproverName,
		&t.ApproverEmail,
	)
	if err != nil {
		return timesheet.Timesheet{}, err
	}

	t.Date = date.Format(dateLayout)
	t.UserName = &userName
	t.UserEmail = &userEmail
	return t, nil
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, t timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (id, user_id, date, clock_in, clock_out, duration_hours, approved, status, approver_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, user_id, date, clock_in, clock_out, duration_hours,
			approved, status, approver_id, notes, created_at, updated_at
	`

	var (
		created timesheet.Timesheet
		date    time.Time
	)
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		t.UserID,
		t.Date,
		t.ClockIn,
		t.ClockOut,
		t.DurationHours,
		t.Approved,
		t.Status,
		t.ApproverID,
		t.Notes,
	).Scan(
		&created.ID,
		&created.UserID,
		&date,
		&created.ClockIn,
		&created.ClockOut,
		&created.DurationHours,
		&created.Approved,
		&created.Status,
		&created.ApproverID,
		&created.Notes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timesheet.Timesheet{}, timesheet.ErrAlreadyClockedIn
		}
		return timesheet.Timesheet{}, err
	}

	created.Date = date.Format(dateLayout)
	return created, nil
}

// GetByUserAndDate implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date string) (*timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, clock_in, clock_out, duration_hours,
			approved, status, approver_id, notes, created_at, updated_at
		FROM timesheets
		WHERE user_id = $1 AND date = $2
	`

	var (
		found   timesheet.Timesheet
		rowDate time.Time
	)
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&found.ID,
		&found.UserID,
		&rowDate,
		&found.ClockIn,
		&found.ClockOut,
		&found.DurationHours,
		&found.Approved,
		&found.Status,
		&found.ApproverID,
		&found.Notes,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	found.Date = rowDate.Format(dateLayout)
	return &found, nil
}

// GetByID implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := timesheetJoinColumns + ` WHERE t.id = $1`

	found, err := scanTimesheetJoinRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}

	return found, nil
}

// Update implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Update(ctx context.Context, t timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheets
		SET clock_in = $1, clock_out = $2, duration_hours = $3, approved = $4,
			status = $5, approver_id = $6, notes = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id, user_id, date, clock_in, clock_out, duration_hours,
			approved, status, approver_id, notes, created_at, updated_at
	`

	var (
		updated timesheet.Timesheet
		date    time.Time
	)
	err := q.QueryRow(ctx, query,
		t.ClockIn,
		t.ClockOut,
		t.DurationHours,
		t.Approved,
		t.Status,
		t.ApproverID,
		t.Notes,
		t.ID,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&date,
		&updated.ClockIn,
		&updated.ClockOut,
		&updated.DurationHours,
		&updated.Approved,
		&updated.Status,
		&updated.ApproverID,
		&updated.Notes,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
		}
		return timesheet.Timesheet{}, err
	}

	updated.Date = date.Format(dateLayout)
	return updated, nil
}

func (r *timesheetRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := timesheetJoinColumns + where + ` ORDER BY t.date DESC, t.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		t, err := scanTimesheetJoinRow(rows)
		if err != nil {
			return nil, err
		}
		timesheets = append(timesheets, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return timesheets, nil
}

// ListByUser implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]timesheet.Timesheet, error) {
	return r.list(ctx, ` WHERE t.user_id = $1`, userID)
}

// ListPending implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListPending(ctx context.Context) ([]timesheet.Timesheet, error) {
	return r.list(ctx, ` WHERE t.approved = FALSE`)
}

// ListPendingByManager implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListPendingByManager(ctx context.Context, managerID string) ([]timesheet.Timesheet, error) {
	return r.list(ctx, ` WHERE t.approved = FALSE AND u.manager_id = $1`, managerID)
}

// ListAll implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListAll(ctx context.Context) ([]timesheet.Timesheet, error) {
	return r.list(ctx, ``)
}

// SumApprovedHours implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) SumApprovedHours(ctx context.Context, userID string, periodStart, periodEnd string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(duration_hours), 0)
		FROM timesheets
		WHERE user_id = $1 AND approved = TRUE AND date BETWEEN $2 AND $3
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, userID, periodStart, periodEnd).Scan(&total)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return total, nil
}
