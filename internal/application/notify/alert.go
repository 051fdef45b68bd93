package notify

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/portfolio-api/internal/config"
	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/infrastructure/sns"
)

const (
	alertTimeout  = 10 * time.Second
	maxAlertRunes = 160
)

// Alerter texts the site owner when a new message arrives. Like Notifier it
// is either enabled with a sender or disabled.
type Alerter struct {
	sender sns.SMSSender
	phone  string
}

func NewAlerter(s sns.SMSSender, phone string) *Alerter {
	if s == nil || phone == "" {
		return &Alerter{}
	}
	return &Alerter{sender: s, phone: phone}
}

// InitializeAlerter enables the alert only when OWNER_ALERT_PHONE is set and
// the SNS client can be built.
func InitializeAlerter(cfg *config.Config) *Alerter {
	if cfg.OwnerAlertPhone == "" {
		slog.Info("OWNER_ALERT_PHONE not set, owner alerts are disabled")
		return &Alerter{}
	}
	s, err := sns.NewSender(cfg)
	if err != nil {
		slog.Warn("SNS sender not available, owner alerts are disabled", "err", err)
		return &Alerter{}
	}
	return NewAlerter(s, cfg.OwnerAlertPhone)
}

func (a *Alerter) Enabled() bool { return a.sender != nil }

// Alert sends a one-line summary of m to the owner.
func (a *Alerter) Alert(ctx context.Context, m domain.ContactMessage) (ok bool) {
	if !a.Enabled() {
		return false
	}
	defer func() {
		if rec := recover(); rec != nil {
			slog.ErrorContext(ctx, "owner alert panicked", "contact_id", m.ID, "panic", rec, "stack", string(debug.Stack()))
			ok = false
		}
	}()
	ctx, cancel := context.WithTimeout(ctx, alertTimeout)
	defer cancel()
	if err := a.sender.SendSMS(ctx, a.phone, AlertText(m)); err != nil {
		slog.ErrorContext(ctx, "owner alert failed", "contact_id", m.ID, "err", err)
		return false
	}
	slog.InfoContext(ctx, "owner alert sent", "contact_id", m.ID)
	return true
}

// AlertText renders the SMS body, cut to a single SMS segment.
func AlertText(m domain.ContactMessage) string {
	s := fmt.Sprintf("New portfolio message #%d from %s <%s>: %s", m.ID, m.Name, m.Email, m.Message)
	r := []rune(s)
	if len(r) <= maxAlertRunes {
		return s
	}
	return string(r[:maxAlertRunes-1]) + "…"
}
