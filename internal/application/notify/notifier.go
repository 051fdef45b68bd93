// Package notify holds the best-effort outbound side effects of a contact
// submission: the acknowledgement email to the submitter and the SMS alert
// to the site owner. Nothing here returns an error to its caller; failures
// are logged and reported as false.
package notify

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/portfolio-api/internal/config"
	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/infrastructure/smtp"
)

// Notifier sends acknowledgement emails. A Notifier without a mailer is
// disabled: every Send is a logged no-op.
type Notifier struct {
	mailer smtp.Mailer
}

// New returns an enabled Notifier sending through m.
func New(m smtp.Mailer) *Notifier {
	if m == nil {
		return Disabled()
	}
	return &Notifier{mailer: m}
}

// Disabled returns a Notifier that never sends.
func Disabled() *Notifier { return &Notifier{} }

// Initialize builds the Notifier from EMAIL_USER and EMAIL_PASS. Missing
// credentials disable it; that is not an error.
func Initialize(cfg *config.Config) *Notifier {
	if !cfg.EmailEnabled() {
		slog.Warn("EMAIL_USER/EMAIL_PASS not provided, acknowledgement emails are disabled")
		return Disabled()
	}
	slog.Info("email notifier initialized", "smtp_host", cfg.SMTPHost, "smtp_port", cfg.SMTPPort, "user", cfg.EmailUser)
	return New(smtp.NewMailer(cfg))
}

func (n *Notifier) Enabled() bool { return n.mailer != nil }

// Send delivers msg and reports whether it was accepted by the mail server.
func (n *Notifier) Send(ctx context.Context, msg domain.EmailNotification) (ok bool) {
	if !n.Enabled() {
		slog.WarnContext(ctx, "email notifier disabled, not sending", "to", msg.To)
		return false
	}
	defer func() {
		if rec := recover(); rec != nil {
			slog.ErrorContext(ctx, "email send panicked", "to", msg.To, "panic", rec, "stack", string(debug.Stack()))
			ok = false
		}
	}()
	if err := n.mailer.SendEmail(msg); err != nil {
		slog.ErrorContext(ctx, "email send failed", "to", msg.To, "err", err)
		return false
	}
	slog.InfoContext(ctx, "email sent", "to", msg.To, "message_id", msg.MessageID)
	return true
}
