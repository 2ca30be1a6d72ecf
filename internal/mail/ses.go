// File: internal/mail/ses.go
package mail

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
)

// sesAPI 只取 SendEmailWithContext，方便測試
type sesAPI interface {
	SendEmailWithContext(ctx aws.Context, input *ses.SendEmailInput, opts ...request.Option) (*ses.SendEmailOutput, error)
}

// SESSender 透過 AWS SES 寄信，憑證與 region 由 AWS 環境變數決定
type SESSender struct {
	client sesAPI
	from   string
	to     string
}

var newAWSSession = func() (*session.Session, error) {
	return session.NewSession()
}

func NewSESSender(from, to string) (*SESSender, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("mail from/to are required")
	}
	sess, err := newAWSSession()
	if err != nil {
		return nil, fmt.Errorf("error creating AWS session: %w", err)
	}
	return &SESSender{client: ses.New(sess), from: from, to: to}, nil
}

func (s *SESSender) input(msg Message) *ses.SendEmailInput {
	in := &ses.SendEmailInput{
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(s.to)},
		},
		Message: &ses.Message{
			Body: &ses.Body{
				Text: &ses.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(msg.Body),
				},
			},
			Subject: &ses.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(msg.Subject),
			},
		},
		Source: aws.String(s.from),
	}
	if msg.ReplyTo != "" {
		in.ReplyToAddresses = []*string{aws.String(msg.ReplyTo)}
	}
	return in
}

// Send 呼叫 SES SendEmail
func (s *SESSender) Send(ctx context.Context, msg Message) error {
	if _, err := s.client.SendEmailWithContext(ctx, s.input(msg)); err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
