package auth

import (
	"errors"
	"net/http"

	"personal-blog/internal/api"
	"personal-blog/internal/database"
	"personal-blog/internal/handler"
	"personal-blog/internal/service"

	"github.com/labstack/echo/v4"
)

var register = service.Register

// RegisterFormHandler 顯示註冊表單
func RegisterFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "register", handler.NewPage(c, "Registrar"))
	}
}

// RegisterHandler 建立新帳號後導向登入頁；Email 或名稱重複時回 409 並重新顯示表單
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Formulário inválido")
		}
		p := handler.NewPage(c, "Registrar")
		p.Form = map[string]string{"username": req.Username, "email": req.Email}
		if err := c.Validate(&req); err != nil {
			p.Flash = "Preencha usuário, email válido e senha (mínimo 4 caracteres)"
			return c.Render(http.StatusBadRequest, "register", p)
		}

		_, err := register(c.Request().Context(), db, req.Username, req.Email, req.Password)
		switch {
		case errors.Is(err, service.ErrDuplicateEmail):
			p.Flash = "Email já cadastrado"
			return c.Render(http.StatusConflict, "register", p)
		case errors.Is(err, service.ErrDuplicateName):
			p.Flash = "Nome de usuário indisponível"
			return c.Render(http.StatusConflict, "register", p)
		}
		if err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/login")
	}
}
