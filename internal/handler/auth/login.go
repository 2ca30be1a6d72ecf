// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"personal-blog/internal/api"
	"personal-blog/internal/cache"
	"personal-blog/internal/database"
	"personal-blog/internal/handler"
	"personal-blog/internal/middleware"
	"personal-blog/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	login        = service.Login
	startSession = service.StartSession
	endSession   = service.EndSession
)

// LoginFormHandler 顯示登入表單
func LoginFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "login", handler.NewPage(c, "Entrar"))
	}
}

// LoginHandler 以 Email/Password 驗證，成功後寫入 session cookie 並導回首頁
func LoginHandler(db database.DB, store cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		// 先 Bind
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Formulário inválido")
		}
		p := handler.NewPage(c, "Entrar")
		p.Form = map[string]string{"email": req.Email}
		// 再驗證結構化參數
		if err := c.Validate(&req); err != nil {
			p.Flash = "Informe email e senha"
			return c.Render(http.StatusBadRequest, "login", p)
		}

		user, err := login(c.Request().Context(), db, req.Email, req.Password)
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			p.Flash = "Senha incorreta"
			return c.Render(http.StatusOK, "login", p)
		case errors.Is(err, service.ErrUnknownEmail):
			p.Flash = "Email não cadastrado"
			return c.Render(http.StatusOK, "login", p)
		case err != nil:
			return err
		}

		token, err := startSession(c.Request().Context(), store, *user, service.SessionTTL)
		if err != nil {
			return err
		}
		middleware.SetSessionCookie(c, token, service.SessionTTL)
		return c.Redirect(http.StatusSeeOther, "/")
	}
}

// LogoutHandler 清除 session (若有) 並導回首頁
func LogoutHandler(store cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := middleware.SessionToken(c); token != "" {
			if err := endSession(c.Request().Context(), store, token); err != nil {
				c.Logger().Errorf("logout: %v", err)
			}
			middleware.ClearSessionCookie(c)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
