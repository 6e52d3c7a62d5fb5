package notification

import (
	"context"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/jordan-wright/email"
	"github.com/pkg/errors"
)

// sendFunc matches (*email.Email).Send.
type sendFunc func(e *email.Email, addr string, a smtp.Auth) error

type smtpSender struct {
	addr string
	auth smtp.Auth
	from string
	send sendFunc
}

// NewSMTPSender creates an EmailSender that relays through an SMTP server with PLAIN auth.
func NewSMTPSender(cfg config.SMTPConfig) service.EmailSender {
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}

	return &smtpSender{
		addr: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		auth: auth,
		from: cfg.From,
		send: (*email.Email).Send,
	}
}

// SendEmail sends the text and HTML bodies as alternatives; the mail client has no context support so ctx only gates the start.
func (s *smtpSender) SendEmail(ctx context.Context, msg *service.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "email send cancelled")
	}
	if strings.TrimSpace(msg.To) == "" {
		return errors.New("email recipient is required")
	}

	if err := s.send(s.newEmail(msg), s.addr, s.auth); err != nil {
		return errors.Wrapf(err, "failed to send email via %s", s.addr)
	}

	return nil
}

func (s *smtpSender) newEmail(msg *service.EmailMessage) *email.Email {
	e := email.NewEmail()
	e.From = s.from
	e.To = []string{strings.TrimSpace(msg.To)}
	e.Subject = msg.Subject
	if msg.TextBody != "" {
		e.Text = []byte(msg.TextBody)
	}
	if msg.HTMLBody != "" {
		e.HTML = []byte(msg.HTMLBody)
	}

	return e
}

func newEmailChannel(cfg *config.Config, logger *slog.Logger) service.EmailSender {
	smtpCfg := cfg.Notification.SMTP
	if smtpCfg.Host == "" || smtpCfg.From == "" {
		logger.Info("SMTP not configured, email notifications disabled")

		return nil
	}

	return NewSMTPSender(smtpCfg)
}
