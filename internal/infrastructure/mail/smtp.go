// Package mail delivers contact-form messages to the site owner.
package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"

	"github.com/pagecraft/blog/internal/core/domain"
)

const defaultTimeout = 15 * time.Second

// Config binds the submission account and the fixed recipient.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Recipient string
	Timeout   time.Duration
}

// Configured reports whether enough settings are present to submit mail.
func (c Config) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != "" && c.Recipient != ""
}

// SMTPSender submits mail over implicit TLS with SMTP AUTH PLAIN. The
// account it logs in with is also the From address.
type SMTPSender struct {
	cfg    Config
	client *gomail.Client
}

func NewSMTPSender(cfg Config) (*SMTPSender, error) {
	if !cfg.Configured() {
		return nil, errors.New("mail: host, username, password and recipient are required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSSL(),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("mail client: %w", err)
	}
	return &SMTPSender{cfg: cfg, client: client}, nil
}

// Send blocks for the whole SMTP exchange.
func (s *SMTPSender) Send(ctx context.Context, msg domain.MailMessage) error {
	m, err := compose(s.cfg.Username, s.cfg.Recipient, msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func compose(from, to string, msg domain.MailMessage) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("mail from: %w", err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("mail to: %w", err)
	}
	// The visitor's address is not validated; an unparsable one only loses
	// the Reply-To header, the body still carries it.
	if msg.ReplyTo != "" {
		_ = m.ReplyTo(msg.ReplyTo)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)
	return m, nil
}

// LogSender writes messages to the log instead of sending them. Used when
// SMTP is not configured, e.g. in development.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg domain.MailMessage) error {
	s.log.Info().
		Str("reply_to", msg.ReplyTo).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("mail not configured, message logged only")
	return nil
}
