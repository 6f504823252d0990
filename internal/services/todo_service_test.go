package services

import (
	"context"
	"testing"
	"time"

	"github.com/avieira/taskdeck-be/internal/models"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateTodoDefaults(t *testing.T) {
	users, todos := newTestServices(t)
	owner := mustCreateUser(t, users, "Alice", "user", "a@x.com", "pw")

	todo, err := todos.CreateTodo(context.Background(), models.NewTodo{UserID: owner, Title: "laundry"})
	require.NoError(t, err)

	require.NotZero(t, todo.ID)
	require.Equal(t, owner, todo.UserID)
	require.Equal(t, "laundry", todo.Title)
	require.False(t, todo.Completed)
	require.Nil(t, todo.Description)
	require.Nil(t, todo.DueDate)
}

func TestCreateTodoWithOptionalFields(t *testing.T) {
	users, todos := newTestServices(t)
	owner := mustCreateUser(t, users, "Alice", "user", "a@x.com", "pw")

	due := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	todo, err := todos.CreateTodo(context.Background(), models.NewTodo{
		UserID:      owner,
		Title:       "laundry",
		Description: strPtr("whites only"),
		DueDate:     &due,
	})
	require.NoError(t, err)

	require.NotNil(t, todo.Description)
	require.Equal(t, "whites only", *todo.Description)
	require.NotNil(t, todo.DueDate)
	require.True(t, todo.DueDate.Equal(due))
}

func TestGetAllTodosOrderedByID(t *testing.T) {
	users, todos := newTestServices(t)
	owner := mustCreateUser(t, users, "Alice", "user", "a@x.com", "pw")
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		_, err := todos.CreateTodo(ctx, models.NewTodo{UserID: owner, Title: title})
		require.NoError(t, err)
	}

	all, err := todos.GetAllTodos(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []string{"one", "two", "three"}, []string{all[0].Title, all[1].Title, all[2].Title})
}

func TestUpdateTodoCompletedOnly(t *testing.T) {
	users, todos := newTestServices(t)
	owner := mustCreateUser(t, users, "Alice", "user", "a@x.com", "pw")
	ctx := context.Background()

	todo, err := todos.CreateTodo(ctx, models.NewTodo{UserID: owner, Title: "laundry", Description: strPtr("whites")})
	require.NoError(t, err)

	after, err := todos.UpdateTodo(ctx, todo.ID, models.TodoUpdate{Completed: boolPtr(true)})
	require.NoError(t, err)

	require.True(t, after.Completed)
	require.Equal(t, "laundry", after.Title)
	require.NotNil(t, after.Description)
	require.Equal(t, "whites", *after.Description)
}

func TestUpdateTodoEmptyPayloadChangesNothing(t *testing.T) {
	users, todos := newTestServices(t)
	owner := mustCreateUser(t, users, "Alice", "user", "a@x.com", "pw")
	ctx := context.Background()

	before, err := todos.CreateTodo(ctx, models.NewTodo{UserID: owner, Title: "laundry"})
	require.NoError(t, err)

	after, err := todos.UpdateTodo(ctx, before.ID, models.TodoUpdate{})
	require.NoError(t, err)

	require.Equal(t, before.Title, after.Title)
	require.Equal(t, before.Description, after.Description)
	require.Equal(t, before.Completed, after.Completed)
	require.Equal(t, before.DueDate, after.DueDate)
	require.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestUpdateTodoRefreshesUpdatedAt(t *testing.T) {
	users, todos := newTestServices(t)
	owner := mustCreateUser(t, users, "Alice", "user", "a@x.com", "pw")
	ctx := context.Background()

	before, err := todos.CreateTodo(ctx, models.NewTodo{UserID: owner, Title: "laundry"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	after, err := todos.UpdateTodo(ctx, before.ID, models.TodoUpdate{Title: strPtr("dishes")})
	require.NoError(t, err)
	require.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestTodoNotFoundErrors(t *testing.T) {
	_, todos := newTestServices(t)
	ctx := context.Background()

	_, err := todos.GetTodoByID(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "999")

	_, err = todos.UpdateTodo(ctx, 999, models.TodoUpdate{Title: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "999")

	_, err = todos.DeleteTodo(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), "999")
}

func TestDeleteTodoReturnsDeletedRow(t *testing.T) {
	users, todos := newTestServices(t)
	owner := mustCreateUser(t, users, "Alice", "user", "a@x.com", "pw")
	ctx := context.Background()

	todo, err := todos.CreateTodo(ctx, models.NewTodo{UserID: owner, Title: "laundry"})
	require.NoError(t, err)

	deleted, err := todos.DeleteTodo(ctx, todo.ID)
	require.NoError(t, err)
	require.Equal(t, "laundry", deleted.Title)

	_, err = todos.GetTodoByID(ctx, todo.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
