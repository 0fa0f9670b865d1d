package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplehr/hr-backend-go/internal/domain/leave"
	"github.com/peoplehr/hr-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveJoinColumns = `
	SELECT l.id, l.user_id, l.start_date, l.end_date, l.type, l.reason,
		l.status, l.approver_id, l.created_at, l.updated_at,
		u.name, u.email, u.manager_id, a.name, a.email
	FROM leaves l
	JOIN users u ON u.id = l.user_id
	LEFT JOIN users a ON a.id = l.approver_id
`

func scanLeaveJoinRow(row pgx.Row) (leave.Leave, error) {
	var (
		l         leave.Leave
		startDate time.Time
		endDate   time.Time
		userName  string
		userEmail string
	)
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&startDate,
		&endDate,
		&l.Type,
		&l.Reason,
		&l.Status,
		&l.ApproverID,
		&l.CreatedAt,
		&l.UpdatedAt,
		&userName,
		&userEmail,
		&l.UserManagerID,
		&l.ApproverName,
		&l.ApproverEmail,
	)
	if err != nil {
		return leave.Leave{}, err
	}

	l.StartDate = startDate.Format(dateLayout)
	l.EndDate = endDate.Format(dateLayout)
	l.UserName = &userName
	l.UserEmail = &userEmail
	return l, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (id, user_id, start_date, end_date, type, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, start_date, end_date, type, reason,
			status, approver_id, created_at, updated_at
	`

	var (
		created   leave.Leave
		startDate time.Time
		endDate   time.Time
	)
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		l.UserID,
		l.StartDate,
		l.EndDate,
		l.Type,
		l.Reason,
		l.Status,
	).Scan(
		&created.ID,
		&created.UserID,
		&startDate,
		&endDate,
		&created.Type,
		&created.Reason,
		&created.Status,
		&created.ApproverID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return leave.Leave{}, err
	}

	created.StartDate = startDate.Format(dateLayout)
	created.EndDate = endDate.Format(dateLayout)
	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveJoinColumns + ` WHERE l.id = $1`

	found, err := scanLeaveJoinRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}

	return found, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, approver_id = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, user_id, start_date, end_date, type, reason,
			status, approver_id, created_at, updated_at
	`

	var (
		updated   leave.Leave
		startDate time.Time
		endDate   time.Time
	)
	err := q.QueryRow(ctx, query,
		l.Status,
		l.ApproverID,
		l.ID,
	).Scan(
		&updated.ID,
		&updated.UserID,
		&startDate,
		&endDate,
		&updated.Type,
		&updated.Reason,
		&updated.Status,
		&updated.ApproverID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, err
	}

	updated.StartDate = startDate.Format(dateLayout)
	updated.EndDate = endDate.Format(dateLayout)
	return updated, nil
}

func (r *leaveRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := leaveJoinColumns + where + ` ORDER BY l.created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeaveJoinRow(rows)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}

// ListByUser implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.Leave, error) {
	return r.list(ctx, ` WHERE l.user_id = $1`, userID)
}

// ListPending implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListPending(ctx context.Context) ([]leave.Leave, error) {
	return r.list(ctx, ` WHERE l.status = $1`, leave.StatusPending)
}

// ListPendingByManager implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListPendingByManager(ctx context.Context, managerID string) ([]leave.Leave, error) {
	return r.list(ctx, ` WHERE l.status = $1 AND u.manager_id = $2`, leave.StatusPending, managerID)
}

// ListAll implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListAll(ctx context.Context) ([]leave.Leave, error) {
	return r.list(ctx, ``)
}

// ListAllByManager implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListAllByManager(ctx context.Context, managerID string) ([]leave.Leave, error) {
	return r.list(ctx, ` WHERE u.manager_id = $1`, managerID)
}
