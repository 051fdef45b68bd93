package http

import (
	"context"

	"github.com/portfolio-api/internal/application/notify"
	"github.com/portfolio-api/internal/domain"
)

// ContactRepository is the minimal interface the router requires from a contact store.
type ContactRepository interface {
	Save(ctx context.Context, req domain.ContactRequest) (*domain.ContactMessage, error)
}

// Pinger reports database reachability for the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ContactRepo ContactRepository
	DB          Pinger
	Notifier    *notify.Notifier
	Alerter     *notify.Alerter
	Profile     notify.Profile
}
