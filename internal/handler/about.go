package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AboutHandler 靜態的關於頁面
func AboutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "about", NewPage(c, "Sobre"))
	}
}
