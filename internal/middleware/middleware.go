package middleware

import (
	"errors"
	"net/http"
	"time"

	"personal-blog/internal/cache"
	"personal-blog/internal/database"
	"personal-blog/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

var loadSession = service.LoadSession

// SetSessionCookie 寫入 session cookie
func SetSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     service.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie 讓瀏覽器刪除 session cookie
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     service.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionToken 取出請求中的 session token，沒有則回傳空字串
func SessionToken(c echo.Context) string {
	ck, err := c.Cookie(service.SessionCookieName)
	if err != nil {
		return ""
	}
	return ck.Value
}

// LoadSession 解析 session cookie；無效、已登出或帳號已不存在的 session 視為匿名並清掉 cookie
func LoadSession(store cache.Cache, db database.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := SessionToken(c)
			if token == "" {
				return next(c)
			}
			claims, err := loadSession(c.Request().Context(), store, db, token)
			switch {
			case err == nil:
				c.Set(ContextUserKey, claims)
			case errors.Is(err, service.ErrSessionExpired):
				ClearSessionCookie(c)
			default:
				c.Logger().Warnf("load session: %v", err)
				ClearSessionCookie(c)
			}
			return next(c)
		}
	}
}

// CurrentUser 回傳目前登入者，未登入回傳 nil
func CurrentUser(c echo.Context) *service.SessionClaims {
	claims, _ := c.Get(ContextUserKey).(*service.SessionClaims)
	return claims
}

// RequireAuth 未登入時導向登入頁
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// RequireAdmin 非管理員一律 403
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := CurrentUser(c)
		if claims == nil || !claims.IsAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Não autorizado")
		}
		return next(c)
	}
}
