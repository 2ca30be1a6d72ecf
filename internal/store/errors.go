package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateName  = errors.New("user name already taken")
)

// PostgreSQL SQLSTATE
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// translate 將 pgx 錯誤轉為 store 的 sentinel error，其餘原樣回傳
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			switch {
			case pgErr.ConstraintName == "users_email_key" || pgErr.ColumnName == "email":
				return ErrDuplicateEmail
			case pgErr.ConstraintName == "users_name_key" || pgErr.ColumnName == "name":
				return ErrDuplicateName
			}
		case foreignKeyViolation:
			return ErrNotFound
		}
	}
	return err
}
