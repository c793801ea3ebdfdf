package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"rtodo/internal/config"
	"rtodo/internal/core/ports"
)

// SMTPMailer delivers plain-text mail through the configured SMTP relay.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

func NewSMTPMailer(conf *config.Config) (*SMTPMailer, error) {
	port := 587
	if conf.SmtpPort != "" {
		if _, err := fmt.Sscanf(conf.SmtpPort, "%d", &port); err != nil {
			return nil, fmt.Errorf("invalid smtp port %q: %w", conf.SmtpPort, err)
		}
	}

	options := []gomail.Option{gomail.WithPort(port)}
	if conf.SmtpUser != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(conf.SmtpUser),
			gomail.WithPassword(conf.SmtpPassword),
		)
	}

	client, err := gomail.NewClient(conf.SmtpHost, options...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: conf.SmtpFrom}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	return m.client.DialAndSendWithContext(ctx, msg)
}
