package reminder

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/Veraticus/foodsaver/internal/common"
)

// SMTPConfig holds the mail server settings for reminder delivery.
type SMTPConfig struct {
	Host     string
	Username string
	Password string
	From     string
	Port     int
}

// SMTPSender implements service.EmailSender over SMTP with STARTTLS.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender validates the config and returns a sender. A missing host,
// username, or password means reminders are simply not configured; the
// caller decides whether that is fatal.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" || cfg.Username == "" || cfg.Password == "" {
		return nil, common.ErrEmailNotConfigured
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return &SMTPSender{cfg: cfg}, nil
}

// Send delivers a plain-text message to the given recipients.
func (s *SMTPSender) Send(ctx context.Context, subject, body string, to []string) error {
	if len(to) == 0 {
		return common.ErrNoRecipients
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to...); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
