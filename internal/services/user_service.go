package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avieira/taskdeck-be/internal/auth"
	"github.com/avieira/taskdeck-be/internal/models"
)

const userColumns = "id, name, role, email, password_hash, created_at, updated_at"

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(ctx context.Context, name, role, email, password string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) (models.User, error)
}

// UserService provides persistence for user accounts. Every operation runs
// exactly one parameterized statement on a connection borrowed from the pool
// for the duration of the call.
type UserService struct {
	db      *sql.DB
	timeout time.Duration
}

// NewUserService creates a new UserService. timeout bounds each operation,
// including time spent waiting for a pool connection.
func NewUserService(db *sql.DB, timeout time.Duration) *UserService {
	return &UserService{db: db, timeout: timeout}
}

func (s *UserService) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Role, &user.Email,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}

// CreateUser hashes the password and inserts a new user, returning the
// stored row (including the hash; callers decide what to expose).
func (s *UserService) CreateUser(ctx context.Context, name, role, email, password string) (models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	ctx, cancel := s.opContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	row := s.db.QueryRowContext(ctx,
		"INSERT INTO users(name, role, email, password_hash, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?) RETURNING "+userColumns,
		name, role, email, hash, now, now)
	return scanUser(row)
}

// GetAllUsers returns every user ordered by id ascending.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user with id %d %w", id, ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByEmail retrieves the first user matching the email, lowest id
// first. Email carries no uniqueness constraint, so duplicates are possible.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = ? ORDER BY id ASC LIMIT 1", email)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user with email %s %w", email, ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser applies a partial update. Nil fields keep their stored value;
// COALESCE resolves that inside the single statement.
func (s *UserService) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `
		UPDATE users SET
			name = COALESCE(?, name),
			role = COALESCE(?, role),
			email = COALESCE(?, email),
			updated_at = ?
		WHERE id = ?
		RETURNING `+userColumns,
		update.Name, update.Role, update.Email, time.Now().UTC(), id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user with id %d %w", id, ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser removes a user, returning the deleted row. Todos owned by the
// user are removed by the schema's ON DELETE CASCADE, not by extra
// statements here.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, "DELETE FROM users WHERE id = ? RETURNING "+userColumns, id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("cannot delete: user with id %d %w", id, ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}
