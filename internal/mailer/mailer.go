// Package mailer wraps outbound mail delivery. The operating mode is
// fixed once at construction: real SMTP delivery when full credentials
// are configured, log-only simulation otherwise.
package mailer

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/hrops/onboarding-admin/internal/logger"
)

// Sender delivers one message to one recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Config carries the SMTP settings resolved at process start.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Configured reports whether real delivery is possible.
func (c Config) Configured() bool {
	return c.Host != "" && c.User != "" && c.Pass != ""
}

// NewFromConfig selects the sender implementation once, at construction.
// Callers never consult the environment again at send time.
func NewFromConfig(ctx context.Context, cfg Config) Sender {
	if cfg.Configured() {
		logger.InfoLog(ctx, "Mail sender initialized in real mode (host=%s)", cfg.Host)
		return NewSMTPSender(cfg)
	}
	logger.InfoLog(ctx, "SMTP credentials absent, mail sender running in simulation mode")
	return &LogSender{}
}

// SMTPSender performs real network delivery through gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender builds a sender over an SMTP dialer. The From address
// falls back to the SMTP user when not set explicitly.
func NewSMTPSender(cfg Config) *SMTPSender {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:   from,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return err
	}
	logger.InfoLog(ctx, "Reminder sent to %s", to)
	return nil
}

// LogSender records send intent without any network I/O.
type LogSender struct{}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	logger.InfoLog(ctx, "[SIMULACION] Se enviaria correo a: %s", to)
	logger.InfoLog(ctx, "Asunto: %s", subject)
	logger.InfoLog(ctx, "Mensaje:\n%s", body)
	return nil
}
