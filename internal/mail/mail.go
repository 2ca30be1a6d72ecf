// File: internal/mail/mail.go
package mail

import (
	"context"
	"fmt"
	"strings"
)

// ContactSubject 聯絡表單信件主旨
const ContactSubject = "Novo contato"

// Message 一封純文字信件，收件人由 Sender 設定決定
type Message struct {
	Subject string
	Body    string
	ReplyTo string
}

// Sender 負責把 Message 寄到固定收件人
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Contact 聯絡表單內容
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// NotificationError 寄信失敗 (連線、認證、API 錯誤)
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification failed: %v", e.Err)
}

func (e *NotificationError) Unwrap() error { return e.Err }

// ContactMessage 組出聯絡表單的信件內容
func ContactMessage(c Contact) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá, sou %s. Meu email: %s. Meu telefone: %s.\n\n", c.Name, c.Email, c.Phone)
	fmt.Fprintf(&b, "Gostaria de dizer:\n%s\n", c.Message)
	return Message{
		Subject: ContactSubject,
		Body:    b.String(),
		ReplyTo: c.Email,
	}
}

// SendContactEmail 寄出聯絡表單；任何失敗都包成 *NotificationError
func SendContactEmail(ctx context.Context, s Sender, c Contact) error {
	if s == nil {
		return &NotificationError{Err: fmt.Errorf("no mail sender configured")}
	}
	if err := s.Send(ctx, ContactMessage(c)); err != nil {
		return &NotificationError{Err: err}
	}
	return nil
}
