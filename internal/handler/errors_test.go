package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"personal-blog/internal/handler/handlertest"
	"personal-blog/internal/mail"
	"personal-blog/internal/service"
	"personal-blog/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{echo.NewHTTPError(http.StatusForbidden, "x"), http.StatusForbidden},
		{&mail.NotificationError{Err: errors.New("smtp")}, http.StatusBadGateway},
		{fmt.Errorf("wrap: %w", service.ErrUnauthorized), http.StatusForbidden},
		{service.ErrReservedUser, http.StatusForbidden},
		{fmt.Errorf("GetPost: %w", service.ErrNotFound), http.StatusNotFound},
		{service.ErrDuplicateEmail, http.StatusConflict},
		{service.ErrDuplicateName, http.StatusConflict},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{service.ErrUnknownEmail, http.StatusUnauthorized},
		{service.ErrCommentTooLong, http.StatusBadRequest},
		{service.ErrEmptyContent, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.code, StatusFor(tc.err), tc.err.Error())
	}
}

func TestErrorHandlerRendersPage(t *testing.T) {
	e, r := handlertest.NewEcho()
	ctx, rec := handlertest.Get(e, "/noticia/99")
	handlertest.AsUser(ctx, 2, "ana", false)

	ErrorHandler(service.ErrNotFound, ctx)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "error", r.Name)
	require.Equal(t, http.StatusNotFound, r.Page.Status)
	require.Equal(t, "Página não encontrada", r.Page.Message)
	require.Equal(t, "ana", r.Page.Viewer.Name)
}

func TestErrorHandlerHTTPErrorMessage(t *testing.T) {
	e, r := handlertest.NewEcho()

	ctx, rec := handlertest.Get(e, "/novo")
	ErrorHandler(echo.NewHTTPError(http.StatusForbidden, "Não autorizado"), ctx)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Equal(t, "Não autorizado", r.Page.Message)

	// echo 預設的 "Not Found" 訊息改為葡文
	ctx, rec = handlertest.Get(e, "/nope")
	ErrorHandler(echo.ErrNotFound, ctx)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Página não encontrada", r.Page.Message)

	ctx, rec = handlertest.Get(e, "/contato")
	ErrorHandler(&mail.NotificationError{Err: errors.New("dial")}, ctx)
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestErrorHandlerAPIReturnsJSON(t *testing.T) {
	e, r := handlertest.NewEcho()
	ctx, rec := handlertest.Get(e, "/api/posts/9")
	ErrorHandler(service.ErrNotFound, ctx)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), `"message"`)
	require.Zero(t, r.Calls)
}

func TestErrorHandlerFallbacks(t *testing.T) {
	e, r := handlertest.NewEcho()
	r.Err = errors.New("template broken")
	ctx, rec := handlertest.Get(e, "/")
	ErrorHandler(errors.New("boom"), ctx)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "Erro interno", rec.Body.String())

	// 已送出回應時不再處理
	r.Err = nil
	ctx, rec = handlertest.Get(e, "/")
	require.NoError(t, ctx.String(http.StatusOK, "done"))
	ErrorHandler(errors.New("late"), ctx)
	require.Equal(t, "done", rec.Body.String())
}

func TestErrorHandlerWithRealTemplates(t *testing.T) {
	e := echo.New()
	rend, err := view.New()
	require.NoError(t, err)
	e.Renderer = rend
	ctx, rec := handlertest.Get(e, "/deletapost/1")
	ErrorHandler(echo.NewHTTPError(http.StatusForbidden, "Não autorizado"), ctx)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Não autorizado")
}

func TestNewPage(t *testing.T) {
	e, _ := handlertest.NewEcho()
	ctx, _ := handlertest.Get(e, "/")
	p := NewPage(ctx, "Início")
	require.Equal(t, "Início", p.Title)
	require.False(t, p.Viewer.LoggedIn)

	handlertest.AsUser(ctx, 1, "administrador", true)
	p = NewPage(ctx, "Início")
	require.True(t, p.Viewer.LoggedIn)
	require.True(t, p.Viewer.IsAdmin)
	require.Equal(t, 1, p.Viewer.UserID)
}

func TestAboutHandler(t *testing.T) {
	e, r := handlertest.NewEcho()
	ctx, rec := handlertest.Get(e, "/sobre")
	require.NoError(t, AboutHandler()(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "about", r.Name)
}
