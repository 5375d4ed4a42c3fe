package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"voting-be/internal/domain"
	"voting-be/pkg/database"
	apperrors "voting-be/pkg/errors"
)

const defaultPageSize = 10

type PostgresUserRepository struct {
	db *database.PostgresDB
}

func NewUserRepository(db *database.PostgresDB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// GetByID gets a user by ID. A malformed id is treated the same as an
// absent row.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	userID, err := uuid.FromString(id)
	if err != nil {
		return nil, nil
	}

	query := `
		SELECT id, username, password_hash, first_password, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err = r.db.Pool.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetByUsername gets a user by username
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, first_password, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user domain.User
	err := r.db.Pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

// List returns a page of users ordered by creation time ascending.
// Out-of-range page/size values normalize to page 1 and size 10.
func (r *PostgresUserRepository) List(ctx context.Context, page, size int) (*domain.PaginatedUsers, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}

	var total int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	query := `
		SELECT id, username, password_hash, first_password, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Pool.Query(ctx, query, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, size)
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.PasswordHash,
			&user.FirstPassword,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return &domain.PaginatedUsers{
		List: users,
		Pagination: domain.Pagination{
			Page:     page,
			Size:     size,
			Total:    total,
			LastPage: (total + size - 1) / size,
		},
	}, nil
}

// Create inserts a new user. The unique index on username is the final
// arbiter against concurrent creation; a violation surfaces as a
// conflict error regardless of any pre-check the caller performed.
func (r *PostgresUserRepository) Create(ctx context.Context, username, passwordHash, firstPassword string) (*domain.User, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user id: %w", err)
	}

	query := `
		INSERT INTO users (id, username, password_hash, first_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING created_at, updated_at
	`

	user := domain.User{
		ID:            id.String(),
		Username:      username,
		PasswordHash:  passwordHash,
		FirstPassword: firstPassword,
	}

	err = r.db.Pool.QueryRow(ctx, query, id, username, passwordHash, firstPassword).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if database.IsUniqueViolation(err) {
		return nil, apperrors.NewConflictError("username already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}
