package smtp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/portfolio-api/internal/config"
	"github.com/portfolio-api/internal/domain"
	"github.com/wneessen/go-mail"
)

// sendTimeout bounds one dial-and-send, including the SMTP conversation.
const sendTimeout = 30 * time.Second

// Mailer sends emails.
type Mailer interface {
	SendEmail(n domain.EmailNotification) error
}

type sendFunc func(ctx context.Context, msg *mail.Msg) error

type mailer struct {
	host     string
	port     int
	username string
	password string
	send     sendFunc
}

// NewMailer returns an SMTP mailer authenticating as cfg.EmailUser. It does
// not dial; connection problems surface on SendEmail.
func NewMailer(cfg *config.Config) Mailer {
	m := &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.EmailUser,
		password: cfg.EmailPass,
	}
	m.send = m.dialAndSend
	return m
}

func (m *mailer) SendEmail(n domain.EmailNotification) error {
	msg, err := Build(n, time.Now())
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("smtp send to %s via %s:%d: %w", n.To, m.host, m.port, err)
	}
	return nil
}

func (m *mailer) options() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTimeout(sendTimeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.port == 465 {
		opts = append(opts, mail.WithSSL())
	}
	if m.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	}
	return opts
}

func (m *mailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	c, err := mail.NewClient(m.host, m.options()...)
	if err != nil {
		return err
	}
	return c.DialAndSendWithContext(ctx, msg)
}

// Build turns n into a message. With both bodies set the result is
// multipart/alternative, text first.
func Build(n domain.EmailNotification, date time.Time) (*mail.Msg, error) {
	if n.To == "" || n.From == "" {
		return nil, fmt.Errorf("smtp: sender and recipient are required")
	}
	if n.Text == "" && n.HTML == "" {
		return nil, fmt.Errorf("smtp: message has no body")
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(n.FromName, n.From); err != nil {
		return nil, fmt.Errorf("smtp: from address: %w", err)
	}
	if err := msg.To(n.To); err != nil {
		return nil, fmt.Errorf("smtp: recipient address: %w", err)
	}
	msg.Subject(n.Subject)
	msg.SetDateWithValue(date)
	if id := strings.Trim(n.MessageID, "<>"); id != "" {
		msg.SetMessageIDWithValue(id)
	}

	switch {
	case n.HTML == "":
		msg.SetBodyString(mail.TypeTextPlain, n.Text)
	case n.Text == "":
		msg.SetBodyString(mail.TypeTextHTML, n.HTML)
	default:
		msg.SetBodyString(mail.TypeTextPlain, n.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, n.HTML)
	}
	return msg, nil
}
