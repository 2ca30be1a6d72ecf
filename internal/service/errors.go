// File: internal/service/errors.go
package service

import (
	"errors"

	"personal-blog/internal/store"
)

// 對外可見的錯誤分類，handler 以 errors.Is 判斷並轉為 HTTP 狀態
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownEmail       = errors.New("unknown email")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDuplicateEmail     = store.ErrDuplicateEmail
	ErrDuplicateName      = store.ErrDuplicateName
	ErrNotFound           = store.ErrNotFound
	ErrReservedUser       = errors.New("reserved user cannot be removed")
	ErrCommentTooLong     = errors.New("comment too long")
	ErrEmptyContent       = errors.New("empty content")
	ErrSessionExpired     = errors.New("session expired")
)
