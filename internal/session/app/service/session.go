package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/go-session-gate/internal/session/app/event"
	"github.com/klwxsrx/go-session-gate/internal/session/app/token"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

// Registries is the process-scoped in-memory state shared by the gate, the auth service and the reaper.
type Registries struct {
	Sessions    domain.SessionStore
	Validations domain.ValidationCache
	Activity    domain.ActivityLimiter
}

// sessionLifecycle keeps the store, the validation cache and the activity limiter consistent for a subject.
type sessionLifecycle struct {
	registries Registries
	publisher  event.Publisher
	clock      pkgtime.Clock
	logger     log.Logger
}

func (l sessionLifecycle) start(ctx context.Context, tok token.Token, expiresAt time.Time) {
	l.registries.Sessions.Create(ctx, tok.Subject, tok.Value, expiresAt)
	l.registries.Validations.Invalidate(tok.Subject)
	l.registries.Activity.Invalidate(tok.Subject)

	l.publisher.Publish(ctx, event.SessionStarted{
		EventID:   uuid.New(),
		Subject:   tok.Subject,
		Role:      tok.Claims.Role,
		StartedAt: l.clock.Now(ctx),
		ExpiresAt: expiresAt,
	})
	l.logger.With(log.Fields{
		"subject":   tok.Subject,
		"expiresAt": expiresAt,
	}).Info(ctx, "session started")
}

func (l sessionLifecycle) refresh(ctx context.Context, tok token.Token) {
	l.registries.Sessions.Refresh(ctx, tok.Subject, tok.Value, tok.ExpiresAt)
	l.registries.Validations.Invalidate(tok.Subject)

	l.publisher.Publish(ctx, event.SessionRefreshed{
		EventID:     uuid.New(),
		Subject:     tok.Subject,
		RefreshedAt: l.clock.Now(ctx),
		ExpiresAt:   tok.ExpiresAt,
	})
	l.logger.WithField("subject", tok.Subject).Debug(ctx, "session refreshed")
}

func (l sessionLifecycle) end(ctx context.Context, subject string, reason event.EndReason) {
	l.registries.Sessions.Remove(ctx, subject)
	l.registries.Validations.Invalidate(subject)
	l.registries.Activity.Invalidate(subject)

	l.publisher.Publish(ctx, event.SessionEnded{
		EventID: uuid.New(),
		Subject: subject,
		Reason:  reason,
		EndedAt: l.clock.Now(ctx),
	})
	l.logger.With(log.Fields{
		"subject": subject,
		"reason":  reason,
	}).Info(ctx, "session ended")
}
