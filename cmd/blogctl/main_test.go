package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"personal-blog/internal/database"
	"personal-blog/internal/model"
	"personal-blog/internal/service"
	"personal-blog/internal/store"

	"github.com/stretchr/testify/require"
)

func restore() {
	newPgxPool = database.NewPgxPool
	runMigrations = database.RunMigrations
	rollbackAll = database.RollbackAll
	pruneOldPosts = service.PruneOldPosts
	listUsers = store.ListUsers
	exitFunc = func(int) {}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func fakePool(closed *bool) func(context.Context, string) (database.DB, error) {
	return func(_ context.Context, url string) (database.DB, error) {
		return &database.FakeDB{CloseFn: func() { *closed = true }}, nil
	}
}

func TestMigrate(t *testing.T) {
	t.Cleanup(restore)
	t.Setenv("DATABASE_URL", "")

	_, err := execute(t, "migrate", "up")
	require.Error(t, err)

	var gotURL string
	runMigrations = func(url string) error { gotURL = url; return nil }
	out, err := execute(t, "--database-url", "postgres://x", "migrate", "up")
	require.NoError(t, err)
	require.Equal(t, "postgres://x", gotURL)
	require.Contains(t, out, "migrations applied")

	rolled := false
	rollbackAll = func(string) error { rolled = true; return nil }
	out, err = execute(t, "--database-url", "postgres://x", "migrate", "down")
	require.NoError(t, err)
	require.True(t, rolled)
	require.Contains(t, out, "rolled back")

	runMigrations = func(string) error { return errors.New("dirty") }
	_, err = execute(t, "--database-url", "postgres://x", "migrate", "up")
	require.EqualError(t, err, "dirty")
}

func TestMigrateUsesEnv(t *testing.T) {
	t.Cleanup(restore)
	t.Setenv("DATABASE_URL", "postgres://env")
	var gotURL string
	runMigrations = func(url string) error { gotURL = url; return nil }
	_, err := execute(t, "migrate", "up")
	require.NoError(t, err)
	require.Equal(t, "postgres://env", gotURL)
}

func TestPrune(t *testing.T) {
	t.Cleanup(restore)
	t.Setenv("DATABASE_URL", "postgres://x")

	closed := false
	newPgxPool = fakePool(&closed)
	var gotMax int
	pruneOldPosts = func(_ context.Context, _ database.DB, maxCount int) (int64, error) {
		gotMax = maxCount
		return 2, nil
	}

	out, err := execute(t, "prune")
	require.NoError(t, err)
	require.Equal(t, service.DefaultMaxPosts, gotMax)
	require.Contains(t, out, "deleted 2 posts")
	require.True(t, closed)

	_, err = execute(t, "prune", "--max", "10")
	require.NoError(t, err)
	require.Equal(t, 10, gotMax)

	_, err = execute(t, "prune", "--max=-1")
	require.Error(t, err)

	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("refused") }
	_, err = execute(t, "prune")
	require.ErrorContains(t, err, "refused")
}

func TestUsersList(t *testing.T) {
	t.Cleanup(restore)
	t.Setenv("DATABASE_URL", "postgres://x")
	closed := false
	newPgxPool = fakePool(&closed)
	listUsers = func(context.Context, database.DB) ([]model.User, error) {
		return []model.User{
			{ID: 1, Name: service.AdminUsername, Email: "admin@admin.com", IsAdmin: true},
			{ID: 2, Name: "ana", Email: "ana@example.com"},
		}, nil
	}

	out, err := execute(t, "users", "list")
	require.NoError(t, err)
	require.Contains(t, out, "NAME")
	require.Contains(t, out, "administrador")
	require.Contains(t, out, "ana@example.com")
	require.True(t, closed)

	listUsers = func(context.Context, database.DB) ([]model.User, error) { return nil, errors.New("db") }
	_, err = execute(t, "users", "ls")
	require.Error(t, err)
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restore)
	code := 0
	exitFunc = func(c int) { code = c }
	t.Setenv("DATABASE_URL", "")
	args := os.Args
	t.Cleanup(func() { os.Args = args })

	// 沒有子命令時只印說明
	os.Args = []string{"blogctl"}
	main()
	require.Equal(t, 0, code)

	os.Args = []string{"blogctl", "migrate", "up"}
	main()
	require.Equal(t, 1, code)
}
