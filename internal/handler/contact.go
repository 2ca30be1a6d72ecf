// File: internal/handler/contact.go
package handler

import (
	"net/http"

	"personal-blog/internal/api"
	"personal-blog/internal/mail"

	"github.com/labstack/echo/v4"
)

var sendContactEmail = mail.SendContactEmail

// ContactFormHandler 顯示聯絡表單
func ContactFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "contact", NewPage(c, "Contato"))
	}
}

// ContactHandler 寄出聯絡表單；寄信失敗交給 ErrorHandler 回 502
func ContactHandler(sender mail.Sender) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ContactRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Formulário inválido")
		}
		p := NewPage(c, "Contato")
		if err := c.Validate(&req); err != nil {
			p.Flash = "Preencha nome, email e mensagem"
			p.Form = map[string]string{"name": req.Name, "email": req.Email, "phone": req.Phone, "message": req.Message}
			return c.Render(http.StatusBadRequest, "contact", p)
		}

		err := sendContactEmail(c.Request().Context(), sender, mail.Contact{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		})
		if err != nil {
			return err
		}

		p.Flash = "Mensagem enviada!"
		return c.Render(http.StatusOK, "contact", p)
	}
}
