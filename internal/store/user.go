package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dileepkhanna/jobportal/types"
)

const userColumns = `id, name, userid, password, phone, job_role, created_at`

// UserRepository handles persistence for users.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE userid = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, userID))
}

// GetByUserIDAndPhone returns the user whose userid and phone both match
// exactly.
func (r *UserRepository) GetByUserIDAndPhone(ctx context.Context, userID, phone string) (types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE userid = $1 AND phone = $2`
	return scanUser(r.db.QueryRowContext(ctx, query, userID, phone))
}

// Create inserts the user inside a transaction. The transaction is rolled
// back on any failure, including a duplicate userid.
func (r *UserRepository) Create(ctx context.Context, user types.User) (types.User, error) {
	user.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.User{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const query = `
		INSERT INTO users (name, userid, password, phone, job_role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	if err := tx.QueryRowContext(
		ctx,
		query,
		user.Name,
		user.UserID,
		user.PasswordHash,
		user.Phone,
		nullString(user.JobRole),
		user.CreatedAt,
	).Scan(&user.ID); err != nil {
		return types.User{}, err
	}

	if err := tx.Commit(); err != nil {
		return types.User{}, err
	}
	return user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]types.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]types.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (types.User, error) {
	var user types.User
	var jobRole sql.NullString
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.UserID,
		&user.PasswordHash,
		&user.Phone,
		&jobRole,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.User{}, ErrNotFound
		}
		return types.User{}, err
	}
	if jobRole.Valid {
		user.JobRole = &jobRole.String
	}
	return user, nil
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}
