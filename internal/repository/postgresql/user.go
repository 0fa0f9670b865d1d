package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peoplehr/hr-backend-go/internal/domain/user"
	"github.com/peoplehr/hr-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, name, email, password_hash, role, hourly_rate, manager_id, oauth_provider, oauth_provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name, email, password_hash, role, hourly_rate, manager_id,
			oauth_provider, oauth_provider_id, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.HourlyRate,
		newUser.ManagerID,
		newUser.OAuthProvider,
		newUser.OAuthProviderID,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Email,
		&created.PasswordHash,
		&created.Role,
		&created.HourlyRate,
		&created.ManagerID,
		&created.OAuthProvider,
		&created.OAuthProviderID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.hourly_rate, u.manager_id,
			u.oauth_provider, u.oauth_provider_id, u.created_at, u.updated_at, m.name
		FROM users u
		LEFT JOIN users m ON m.id = u.manager_id
		WHERE u.id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.HourlyRate,
		&found.ManagerID,
		&found.OAuthProvider,
		&found.OAuthProviderID,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.ManagerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.hourly_rate, u.manager_id,
			u.oauth_provider, u.oauth_provider_id, u.created_at, u.updated_at, m.name
		FROM users u
		LEFT JOIN users m ON m.id = u.manager_id
		WHERE u.email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID,
		&found.Name,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.HourlyRate,
		&found.ManagerID,
		&found.OAuthProvider,
		&found.OAuthProviderID,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.ManagerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return found, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argPos := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *req.Name)
		argPos++
	}
	if req.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argPos))
		args = append(args, *req.Email)
		argPos++
	}
	if req.Role != nil {
		setClauses = append(setClauses, fmt.Sprintf("role = $%d", argPos))
		args = append(args, *req.Role)
		argPos++
	}
	if req.HourlyRate != nil {
		setClauses = append(setClauses, fmt.Sprintf("hourly_rate = $%d", argPos))
		args = append(args, *req.HourlyRate)
		argPos++
	}
	if req.ManagerID != nil {
		setClauses = append(setClauses, fmt.Sprintf("manager_id = $%d", argPos))
		args = append(args, *req.ManagerID)
		argPos++
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING id, name, email, password_hash, role, hourly_rate, manager_id,
			oauth_provider, oauth_provider_id, created_at, updated_at
	`, strings.Join(setClauses, ", "), argPos)

	var updated user.User
	err := q.QueryRow(ctx, query, args...).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Email,
		&updated.PasswordHash,
		&updated.Role,
		&updated.HourlyRate,
		&updated.ManagerID,
		&updated.OAuthProvider,
		&updated.OAuthProviderID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, err
	}

	return updated, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.hourly_rate, u.manager_id,
			u.oauth_provider, u.oauth_provider_id, u.created_at, u.updated_at, m.name
		FROM users u
		LEFT JOIN users m ON m.id = u.manager_id
		ORDER BY u.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.HourlyRate,
			&u.ManagerID,
			&u.OAuthProvider,
			&u.OAuthProviderID,
			&u.CreatedAt,
			&u.UpdatedAt,
			&u.ManagerName,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// ListByRole implements user.UserRepository.
func (r *userRepositoryImpl) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.role, u.hourly_rate, u.manager_id,
			u.oauth_provider, u.oauth_provider_id, u.created_at, u.updated_at, m.name
		FROM users u
		LEFT JOIN users m ON m.id = u.manager_id
		WHERE u.role = $1
		ORDER BY u.created_at DESC
	`

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.HourlyRate,
			&u.ManagerID,
			&u.OAuthProvider,
			&u.OAuthProviderID,
			&u.CreatedAt,
			&u.UpdatedAt,
			&u.ManagerName,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET oauth_provider = $1, oauth_provider_id = $2, updated_at = NOW()
		WHERE email = $3
		RETURNING id, name, email, password_hash, role, hourly_rate, manager_id,
			oauth_provider, oauth_provider_id, created_at, updated_at
	`

	var updated user.User
	err := q.QueryRow(ctx, query, "google", googleID, email).Scan(
		&updated.ID,
		&updated.Name,
		&updated.Email,
		&updated.PasswordHash,
		&updated.Role,
		&updated.HourlyRate,
		&updated.ManagerID,
		&updated.OAuthProvider,
		&updated.OAuthProviderID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return updated, nil
}
