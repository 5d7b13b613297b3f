package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/pratik-mahalle/cloudsentry/internal/config"
)

// EmailChannel delivers notifications over SMTP
type EmailChannel struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

// NewEmailChannel creates an email channel from SMTP configuration
func NewEmailChannel(cfg config.SMTPConfig) *EmailChannel {
	return &EmailChannel{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// Name implements Channel
func (c *EmailChannel) Name() string {
	return "email"
}

// Send implements Channel. gomail has no context support, so the dial
// runs in a goroutine and the context cancels the wait.
func (c *EmailChannel) Send(ctx context.Context, subject, body string) error {
	if len(c.cfg.To) == 0 {
		return fmt.Errorf("email channel has no recipients configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.cfg.From)
	m.SetHeader("To", c.cfg.To...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- c.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("sending email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
