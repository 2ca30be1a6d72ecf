// File: internal/service/authentication.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"personal-blog/internal/database"
	"personal-blog/internal/model"
	"personal-blog/internal/store"
)

// AdminUsername 保留的管理員名稱，不可被 ban
const AdminUsername = "administrador"

var (
	getUserByEmail = store.GetUserByEmail
	createUser     = store.CreateUser
	ensureUser     = store.EnsureUser
)

// NormalizeEmail 去除空白並轉小寫
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthenticateUser 以 bcrypt 比對密碼，失敗一律回傳 ErrInvalidCredentials
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if user.PasswordHash == "" {
		return ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login 依 email 查詢使用者並驗證密碼
// 查無帳號回傳 ErrUnknownEmail，密碼錯誤或帳號停用回傳 ErrInvalidCredentials
func Login(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	user, err := getUserByEmail(ctx, db, NormalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUnknownEmail
	}
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	if !user.Active {
		return nil, ErrInvalidCredentials
	}
	if err := AuthenticateUser(ctx, *user, password); err != nil {
		return nil, err
	}
	return user, nil
}

// Register 建立一般使用者；email 重複時回傳 ErrDuplicateEmail，
// 名稱已被使用或為保留的管理員名稱時回傳 ErrDuplicateName
func Register(ctx context.Context, db database.DB, name, email, password string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, AdminUsername) {
		return nil, ErrDuplicateName
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("Register: %w", err)
	}
	user, err := createUser(ctx, db, &model.User{
		Name:         name,
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		Active:       true,
	})
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return nil, ErrDuplicateEmail
	case errors.Is(err, store.ErrDuplicateName):
		return nil, ErrDuplicateName
	case err != nil:
		return nil, err
	}
	return user, nil
}

// SeedAdmin 在指定 email 不存在時建立管理員帳號
func SeedAdmin(ctx context.Context, db database.DB, email, password string) (bool, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("SeedAdmin: %w", err)
	}
	return ensureUser(ctx, db, &model.User{
		Name:         AdminUsername,
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		Active:       true,
		IsAdmin:      true,
	})
}
