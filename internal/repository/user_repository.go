package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/user-service/internal/domain"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// UserRepository defines persistence access for accounts. Lookups are plain
// single-field equality queries; there are no transactions or compound
// predicates.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByNationalID(ctx context.Context, nationalID string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, username, email, full_name, national_id, birth_date,
        password, status, role, created_at, updated_at, last_login`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, email, full_name, national_id, birth_date, password, status, role)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.FullName,
		user.NationalID,
		user.BirthDate,
		user.PasswordHash,
		string(user.Status),
		string(user.Role),
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getByField(ctx, "id", id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getByField(ctx, "username", username)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getByField(ctx, "email", email)
}

func (r *userRepository) GetByNationalID(ctx context.Context, nationalID string) (*domain.User, error) {
	return r.getByField(ctx, "national_id", nationalID)
}

func (r *userRepository) getByField(ctx context.Context, field string, value any) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s=$1`, userColumns, field)

	row := r.pool.QueryRow(ctx, query, value)
	return scanUser(row)
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY id`, userColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	const query = `UPDATE users SET last_login=NOW() WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user   domain.User
		status string
		role   string
	)
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.NationalID,
		&user.BirthDate,
		&user.PasswordHash,
		&status,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastLogin,
	); err != nil {
		return nil, err
	}

	// A row with a role outside the closed enum is store corruption, not a
	// client error.
	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	user.Role = parsedRole
	user.Status = domain.UserStatus(status)
	return &user, nil
}
