package users

import (
	"errors"
	"fmt"
	"net/http"

	"personal-blog/internal/database"
	"personal-blog/internal/handler"
	"personal-blog/internal/service"
	"personal-blog/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listUsers = store.ListUsers
	banUser   = service.BanUser
)

func renderUsers(c echo.Context, db database.DB, flash string) error {
	users, err := listUsers(c.Request().Context(), db)
	if err != nil {
		return err
	}
	p := handler.NewPage(c, "Usuários")
	p.Users = users
	p.Flash = flash
	return c.Render(http.StatusOK, "users", p)
}

// ListHandler 管理員檢視所有使用者
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderUsers(c, db, "")
	}
}

// BanHandler 刪除指定名稱的使用者；保留帳號 (administrador 與管理員) 不做任何事
func BanHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := c.Param("name")
		err := banUser(c.Request().Context(), db, name)
		switch {
		case errors.Is(err, service.ErrReservedUser):
			return renderUsers(c, db, "")
		case err != nil:
			return err
		}
		return renderUsers(c, db, fmt.Sprintf("Usuário %s banido", name))
	}
}
