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

func TestCommentStore(t *testing.T) {
	now := time.Now()

	t.Run("CreateComment", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"oi", 2, 5}, args)
				return &fakeRow{vals: []any{11, now}}
			},
		}
		c, err := CreateComment(context.Background(), p, &model.Comment{Body: "oi", AuthorID: 2, PostID: 5})
		require.NoError(t, err)
		require.Equal(t, 11, c.ID)
	})

	t.Run("CreateComment missing post", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: "23503"}}
			},
		}
		_, err := CreateComment(context.Background(), p, &model.Comment{PostID: 404})
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("GetComment", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{vals: []any{11, "oi", 2, "bob", "bob@example.com", 5, now}}
			},
		}
		c, err := GetComment(context.Background(), p, 11)
		require.NoError(t, err)
		require.Equal(t, 5, c.PostID)
		require.Equal(t, "bob", c.AuthorName)

		p.QueryRowFn = func(_ context.Context, _ string, _ ...any) pgx.Row {
			return &fakeRow{scanErr: pgx.ErrNoRows}
		}
		_, err = GetComment(context.Background(), p, 11)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ListCommentsByPost", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, []any{5}, args)
				return &fakeRows{data: [][]any{
					{1, "a", 2, "bob", "bob@example.com", 5, now},
					{2, "b", 3, "eve", "eve@example.com", 5, now},
				}}, nil
			},
		}
		list, err := ListCommentsByPost(context.Background(), p, 5)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "eve", list[1].AuthorName)
		require.Equal(t, "eve@example.com", list[1].AuthorEmail)

		p.QueryFn = func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return nil, errors.New("db")
		}
		_, err = ListCommentsByPost(context.Background(), p, 5)
		require.Error(t, err)
	})

	t.Run("DeleteComment", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteComment(context.Background(), p, 1))

		p.ExecFn = func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("DELETE 0"), nil
		}
		require.ErrorIs(t, DeleteComment(context.Background(), p, 1), ErrNotFound)
	})

	t.Run("ListRepliesByPost", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{data: [][]any{{1, "re", 2, "bob", "bob@example.com", 11, now}}}, nil
			},
		}
		replies, err := ListRepliesByPost(context.Background(), p, 5)
		require.NoError(t, err)
		require.Len(t, replies, 1)
		require.Equal(t, 11, replies[0].CommentID)

		p.QueryFn = func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{data: [][]any{{1}}, scanErr: errors.New("scan")}, nil
		}
		_, err = ListRepliesByPost(context.Background(), p, 5)
		require.Error(t, err)
	})
}
