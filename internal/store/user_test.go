package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-blog/internal/database"
	"personal-blog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func userVals(u *model.User) []any {
	return []any{u.ID, u.Name, u.Email, u.PasswordHash, u.Active, u.IsAdmin, u.CreatedAt}
}

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.User{
		ID:           7,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		Active:       true,
		CreatedAt:    now,
	}

	t.Run("GetUserByID success", func(t *testing.T) {
		var gotArgs []any
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{vals: userVals(sample)}
			},
		}
		u, err := GetUserByID(context.Background(), p, 7)
		require.NoError(t, err)
		require.Equal(t, []any{7}, gotArgs)
		require.Equal(t, sample.Email, u.Email)
		require.True(t, u.Active)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByID(context.Background(), p, 999)
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, u)
	})

	t.Run("GetUserByEmail success", func(t *testing.T) {
		var gotSQL string
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				gotSQL = sql
				return &fakeRow{vals: userVals(sample)}
			},
		}
		u, err := GetUserByEmail(context.Background(), p, "alice@example.com")
		require.NoError(t, err)
		require.Contains(t, gotSQL, "WHERE email = $1")
		require.Equal(t, 7, u.ID)
	})

	t.Run("GetUserByEmail not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByEmail(context.Background(), p, "nobody@example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("GetUserByName other error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("conn reset")}
			},
		}
		_, err := GetUserByName(context.Background(), p, "Bob")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("CreateUser success", func(t *testing.T) {
		newUser := &model.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "pwdhash", Active: true}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{vals: []any{42, now.Add(time.Hour)}}
			},
		}
		created, err := CreateUser(context.Background(), p, newUser)
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
		require.WithinDuration(t, now.Add(time.Hour), created.CreatedAt, time.Second)
	})

	t.Run("CreateUser duplicate email", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("CreateUser duplicate name", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_name_key"}}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{})
		require.ErrorIs(t, err, ErrDuplicateName)
		require.NotErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("EnsureUser created", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				require.Contains(t, sql, "ON CONFLICT DO NOTHING")
				return &fakeRow{vals: []any{1, now}}
			},
		}
		u := &model.User{Email: "admin@admin.com"}
		created, err := EnsureUser(context.Background(), p, u)
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, 1, u.ID)
	})

	t.Run("EnsureUser exists", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		created, err := EnsureUser(context.Background(), p, &model.User{})
		require.NoError(t, err)
		require.False(t, created)
	})

	t.Run("EnsureUser error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("boom")}
			},
		}
		_, err := EnsureUser(context.Background(), p, &model.User{})
		require.Error(t, err)
	})

	t.Run("ListUsers ok", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{userVals(sample), userVals(sample)}}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return rows, nil },
		}
		list, err := ListUsers(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.True(t, rows.closed)
	})

	t.Run("ListUsers query err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, errors.New("db") },
		}
		_, err := ListUsers(context.Background(), p)
		require.Error(t, err)
	})

	t.Run("ListUsers scan err", func(t *testing.T) {
		rows := &fakeRows{data: [][]any{userVals(sample)}, scanErr: errors.New("scan")}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return rows, nil },
		}
		_, err := ListUsers(context.Background(), p)
		require.Error(t, err)
	})

	t.Run("DeleteUser success", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteUser(context.Background(), p, 7))
	})

	t.Run("DeleteUser missing", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteUser(context.Background(), p, 7), ErrNotFound)
	})

	t.Run("DeleteUser error", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("delete failed")
			},
		}
		require.Error(t, DeleteUser(context.Background(), p, 7))
	})
}
