// File: internal/handler/errors.go
package handler

import (
	"errors"
	"net/http"
	"strings"

	"personal-blog/internal/dto"
	"personal-blog/internal/mail"
	"personal-blog/internal/service"

	"github.com/labstack/echo/v4"
)

// StatusFor 將錯誤分類對應到 HTTP 狀態碼
func StatusFor(err error) int {
	var he *echo.HTTPError
	var ne *mail.NotificationError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.As(err, &ne):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrReservedUser):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrDuplicateEmail), errors.Is(err, service.ErrDuplicateName):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUnknownEmail):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrCommentTooLong), errors.Is(err, service.ErrEmptyContent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Requisição inválida",
	http.StatusUnauthorized:        "Credenciais inválidas",
	http.StatusForbidden:           "Não autorizado",
	http.StatusNotFound:            "Página não encontrada",
	http.StatusMethodNotAllowed:    "Método não permitido",
	http.StatusConflict:            "Cadastro já existente",
	http.StatusBadGateway:          "Não foi possível enviar a mensagem",
	http.StatusInternalServerError: "Erro interno",
}

func messageFor(code int, err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if m, ok := he.Message.(string); ok && m != http.StatusText(code) {
			return m
		}
	}
	if m, ok := statusMessages[code]; ok {
		return m
	}
	return http.StatusText(code)
}

// ErrorHandler 取代 echo 預設錯誤處理：/api 回 JSON，其餘渲染錯誤頁
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := StatusFor(err)
	msg := messageFor(code, err)
	if code >= http.StatusInternalServerError {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		_ = c.JSON(code, dto.HTTPError{Message: msg})
		return
	}

	p := NewPage(c, "Erro")
	p.Status = code
	p.Message = msg
	if rerr := c.Render(code, "error", p); rerr != nil {
		c.Logger().Errorf("render error page: %v", rerr)
		_ = c.String(code, msg)
	}
}
