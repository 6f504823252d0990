package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/avieira/taskdeck-be/internal/database"
	"github.com/stretchr/testify/require"
)

const testTimeout = 5 * time.Second

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"), 4, 2)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestServices(t *testing.T) (*UserService, *TodoService) {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(db, testTimeout), NewTodoService(db, testTimeout)
}

func mustCreateUser(t *testing.T, users *UserService, name, role, email, password string) int64 {
	t.Helper()
	user, err := users.CreateUser(context.Background(), name, role, email, password)
	require.NoError(t, err)
	return user.ID
}
