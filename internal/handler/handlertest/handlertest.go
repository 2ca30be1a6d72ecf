// Package handlertest 提供 handler 測試共用的 echo context 與假 renderer
package handlertest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"personal-blog/internal/api"
	"personal-blog/internal/middleware"
	"personal-blog/internal/service"
	"personal-blog/internal/view"

	"github.com/labstack/echo/v4"
)

// Renderer 記錄最後一次 Render 的頁面
type Renderer struct {
	Name  string
	Page  view.Page
	Calls int
	Err   error
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	r.Calls++
	r.Name = name
	r.Page, _ = data.(view.Page)
	if r.Err != nil {
		return r.Err
	}
	_, err := io.WriteString(w, name)
	return err
}

// NewEcho 建立帶真實 validator 與假 renderer 的 echo
func NewEcho() (*echo.Echo, *Renderer) {
	e := echo.New()
	r := &Renderer{}
	e.Renderer = r
	e.Validator = api.NewValidator()
	return e, r
}

// Get 建立 GET 請求的 context
func Get(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// PostForm 建立 x-www-form-urlencoded 的 POST context
func PostForm(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Params 設定路由參數
func Params(c echo.Context, path string, names []string, values ...string) echo.Context {
	c.SetPath(path)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c
}

// AsUser 模擬已登入 (經過 LoadSession middleware)
func AsUser(c echo.Context, id int, name string, admin bool) echo.Context {
	c.Set(middleware.ContextUserKey, &service.SessionClaims{UserID: id, Name: name, IsAdmin: admin})
	return c
}
