package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avieira/taskdeck-be/internal/models"
)

const todoColumns = "id, user_id, title, description, completed, due_date, created_at, updated_at"

// TodoServiceProvider defines the interface for todo services.
type TodoServiceProvider interface {
	CreateTodo(ctx context.Context, todo models.NewTodo) (models.Todo, error)
	GetAllTodos(ctx context.Context) ([]models.Todo, error)
	GetTodoByID(ctx context.Context, id int64) (models.Todo, error)
	UpdateTodo(ctx context.Context, id int64, update models.TodoUpdate) (models.Todo, error)
	DeleteTodo(ctx context.Context, id int64) (models.Todo, error)
}

// TodoService provides persistence for todos, one parameterized statement
// per operation.
type TodoService struct {
	db      *sql.DB
	timeout time.Duration
}

// NewTodoService creates a new TodoService.
func NewTodoService(db *sql.DB, timeout time.Duration) *TodoService {
	return &TodoService{db: db, timeout: timeout}
}

func (s *TodoService) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func scanTodo(row rowScanner) (models.Todo, error) {
	var todo models.Todo
	var description sql.NullString
	var dueDate sql.NullTime
	err := row.Scan(&todo.ID, &todo.UserID, &todo.Title, &description,
		&todo.Completed, &dueDate, &todo.CreatedAt, &todo.UpdatedAt)
	if err != nil {
		return models.Todo{}, err
	}
	if description.Valid {
		todo.Description = &description.String
	}
	if dueDate.Valid {
		todo.DueDate = &dueDate.Time
	}
	return todo, nil
}

// CreateTodo inserts a new todo for a user. Completed always starts false.
func (s *TodoService) CreateTodo(ctx context.Context, todo models.NewTodo) (models.Todo, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	row := s.db.QueryRowContext(ctx,
		"INSERT INTO todos(user_id, title, description, completed, due_date, created_at, updated_at) VALUES(?, ?, ?, 0, ?, ?, ?) RETURNING "+todoColumns,
		todo.UserID, todo.Title, todo.Description, todo.DueDate, now, now)
	return scanTodo(row)
}

// GetAllTodos returns every todo ordered by id ascending.
func (s *TodoService) GetAllTodos(ctx context.Context) ([]models.Todo, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, "SELECT "+todoColumns+" FROM todos ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, rows.Err()
}

// GetTodoByID retrieves a single todo by its ID.
func (s *TodoService) GetTodoByID(ctx context.Context, id int64) (models.Todo, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, "SELECT "+todoColumns+" FROM todos WHERE id = ?", id)
	todo, err := scanTodo(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Todo{}, fmt.Errorf("todo with id %d %w", id, ErrNotFound)
		}
		return models.Todo{}, err
	}
	return todo, nil
}

// UpdateTodo applies a partial update; nil fields keep their stored value.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, update models.TodoUpdate) (models.Todo, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, `
		UPDATE todos SET
			title = COALESCE(?, title),
			description = COALESCE(?, description),
			completed = COALESCE(?, completed),
			due_date = COALESCE(?, due_date),
			updated_at = ?
		WHERE id = ?
		RETURNING `+todoColumns,
		update.Title, update.Description, update.Completed, update.DueDate, time.Now().UTC(), id)
	todo, err := scanTodo(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Todo{}, fmt.Errorf("todo with id %d %w", id, ErrNotFound)
		}
		return models.Todo{}, err
	}
	return todo, nil
}

// DeleteTodo removes a todo, returning the deleted row.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) (models.Todo, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	row := s.db.QueryRowContext(ctx, "DELETE FROM todos WHERE id = ? RETURNING "+todoColumns, id)
	todo, err := scanTodo(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Todo{}, fmt.Errorf("cannot delete: todo with id %d %w", id, ErrNotFound)
		}
		return models.Todo{}, err
	}
	return todo, nil
}
