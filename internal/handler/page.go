package handler

import (
	"personal-blog/internal/middleware"
	"personal-blog/internal/view"

	"github.com/labstack/echo/v4"
)

// NewPage 建立頁面資料並帶入目前登入者
func NewPage(c echo.Context, title string) view.Page {
	p := view.Page{Title: title}
	if u := middleware.CurrentUser(c); u != nil {
		p.Viewer = view.Viewer{UserID: u.UserID, Name: u.Name, IsAdmin: u.IsAdmin, LoggedIn: true}
	}
	return p
}
