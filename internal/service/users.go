// File: internal/service/users.go
package service

import (
	"context"

	"personal-blog/internal/database"
	"personal-blog/internal/store"
)

var (
	getUserByName = store.GetUserByName
	deleteUser    = store.DeleteUser
)

// BanUser 刪除指定名稱的使用者；保留的管理員帳號回傳 ErrReservedUser
func BanUser(ctx context.Context, db database.DB, name string) error {
	if name == AdminUsername {
		return ErrReservedUser
	}
	user, err := getUserByName(ctx, db, name)
	if err != nil {
		return err
	}
	if user.IsAdmin {
		return ErrReservedUser
	}
	return deleteUser(ctx, db, user.ID)
}
