package contact

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/portfolio-api/internal/application/notify"
	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/validate"
)

type Service interface {
	// Submit validates req and persists it. Validation failures are returned
	// as *validate.Errors. The acknowledgement is sent in the background and
	// never affects the result.
	Submit(ctx context.Context, req domain.ContactRequest) (*domain.ContactMessage, error)
}

type contactStore interface {
	Save(ctx context.Context, req domain.ContactRequest) (*domain.ContactMessage, error)
}

type emailNotifier interface {
	Send(ctx context.Context, msg domain.EmailNotification) bool
}

type ownerAlerter interface {
	Alert(ctx context.Context, m domain.ContactMessage) bool
}

type service struct {
	store    contactStore
	notifier emailNotifier
	alerter  ownerAlerter
	profile  notify.Profile
	// spawn runs fn detached from the request; tests replace it.
	spawn func(fn func())
}

type ServiceDeps struct {
	Store    contactStore
	Notifier emailNotifier // nil means disabled
	Alerter  ownerAlerter  // nil means disabled
	Profile  notify.Profile
}

func NewService(deps ServiceDeps) Service {
	s := &service{
		store:    deps.Store,
		notifier: deps.Notifier,
		alerter:  deps.Alerter,
		profile:  deps.Profile,
		spawn:    func(fn func()) { go fn() },
	}
	if s.notifier == nil {
		s.notifier = notify.Disabled()
	}
	return s
}

func (s *service) Submit(ctx context.Context, req domain.ContactRequest) (*domain.ContactMessage, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.store.Save(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("save contact message: %w", err)
	}

	// The request context is cancelled once the response is written.
	bg := context.WithoutCancel(ctx)
	saved := *m
	s.spawn(func() { s.acknowledge(bg, saved) })
	return m, nil
}

// acknowledge is the detached half of a submission. It owns its own recover
// boundary so a failure here can never reach the request goroutine.
func (s *service) acknowledge(ctx context.Context, m domain.ContactMessage) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.ErrorContext(ctx, "acknowledgement panicked", "contact_id", m.ID, "panic", rec, "stack", string(debug.Stack()))
		}
	}()

	n, err := notify.Acknowledgement(s.profile, m)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build acknowledgement email", "contact_id", m.ID, "err", err)
	} else if !s.notifier.Send(ctx, n) {
		slog.WarnContext(ctx, "acknowledgement email not sent", "contact_id", m.ID)
	}

	if s.alerter != nil {
		s.alerter.Alert(ctx, m)
	}
}
