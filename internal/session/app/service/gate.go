//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names Gate=Gate
package service

import (
	"context"
	"errors"
	"time"

	"github.com/klwxsrx/go-session-gate/internal/pkg/auth"
	"github.com/klwxsrx/go-session-gate/internal/session/app/event"
	"github.com/klwxsrx/go-session-gate/internal/session/app/token"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	"github.com/klwxsrx/go-session-gate/pkg/metric"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

const (
	GracePeriod      = 10 * time.Second
	RefreshThreshold = 5 * time.Minute

	DefaultInactivityTimeout = time.Minute
)

const (
	OutcomePublic Outcome = iota
	OutcomeActive
	OutcomeRejected
)

type (
	Outcome int

	// Decision is the gate verdict for a single request.
	// Principal is set for OutcomeActive, Reason for OutcomeRejected.
	// RefreshedToken must be handed to the client when present.
	Decision struct {
		Outcome         Outcome
		Reason          error
		Principal       *auth.Principal
		RefreshedToken  *token.Token
		ClearCredential bool
	}

	Gate interface {
		Evaluate(ctx context.Context, path, credential string) Decision
	}

	GateConfig struct {
		InactivityTimeout time.Duration
	}
)

func (d Decision) Allowed() bool {
	return d.Outcome != OutcomeRejected
}

type gate struct {
	codec             token.Codec
	registries        Registries
	lifecycle         sessionLifecycle
	inactivityTimeout time.Duration
	clock             pkgtime.Clock
	metrics           metric.Metrics
	logger            log.Logger
}

func NewGate(
	config GateConfig,
	codec token.Codec,
	registries Registries,
	publisher event.Publisher,
	clock pkgtime.Clock,
	metrics metric.Metrics,
	logger log.Logger,
) Gate {
	if config.InactivityTimeout <= 0 {
		config.InactivityTimeout = DefaultInactivityTimeout
	}

	return gate{
		codec:      codec,
		registries: registries,
		lifecycle: sessionLifecycle{
			registries: registries,
			publisher:  publisher,
			clock:      clock,
			logger:     logger,
		},
		inactivityTimeout: config.InactivityTimeout,
		clock:             clock,
		metrics:           metrics,
		logger:            logger,
	}
}

func (g gate) Evaluate(ctx context.Context, path, credential string) Decision {
	decision := g.evaluate(ctx, path, credential)
	g.metrics.With(metric.Labels{
		"outcome": decision.outcomeLabel(),
		"reason":  decision.reasonLabel(),
	}).Increment("session_gate_decisions_total")

	return decision
}

func (g gate) evaluate(ctx context.Context, path, credential string) Decision {
	if IsPublicPath(path) {
		return Decision{Outcome: OutcomePublic}
	}

	if credential == "" {
		return rejected(domain.ErrNoCredential, false)
	}

	tok, err := g.codec.Verify(ctx, credential)
	if errors.Is(err, token.ErrExpiredToken) {
		return rejected(domain.ErrExpiredCredential, false)
	}
	if err != nil {
		g.logger.WithError(err).Debug(ctx, "session token rejected")
		return rejected(domain.ErrMalformedCredential, false)
	}

	now := g.clock.Now(ctx)
	principal := &auth.Principal{
		Subject:    tok.Subject,
		Role:       tok.Claims.Role,
		Provider:   tok.Claims.Provider,
		ExternalID: tok.Claims.ExternalID,
	}

	if !g.isSessionValid(ctx, tok.Subject) {
		if now.Sub(tok.IssuedAt) > GracePeriod {
			return rejected(domain.ErrNoActiveSession, true)
		}

		// the session may not be visible yet right after the credential exchange
		if _, found := g.registries.Sessions.Get(ctx, tok.Subject); !found {
			return Decision{Outcome: OutcomeActive, Principal: principal}
		}
	}

	if g.registries.Sessions.IsInactive(ctx, tok.Subject, g.inactivityTimeout) {
		g.lifecycle.end(ctx, tok.Subject, event.EndReasonInactive)
		return rejected(domain.ErrInactiveSession, true)
	}

	g.registries.Sessions.Touch(ctx, tok.Subject)

	decision := Decision{Outcome: OutcomeActive, Principal: principal}
	if tok.ExpiresAt.Sub(now) < RefreshThreshold {
		decision.RefreshedToken = g.refresh(ctx, tok)
	}

	return decision
}

// isSessionValid memoizes live sessions only, a cached verdict is dropped once its session is removed.
func (g gate) isSessionValid(ctx context.Context, subject string) bool {
	if valid, ok := g.registries.Validations.Get(ctx, subject); ok && valid {
		if _, found := g.registries.Sessions.Get(ctx, subject); found {
			return true
		}
		g.registries.Validations.Invalidate(subject)
	}

	valid := g.registries.Sessions.IsValid(ctx, subject)
	if valid {
		g.registries.Validations.Put(ctx, subject, true)
	}
	return valid
}

// refresh never fails the request, the client keeps the current token on error.
func (g gate) refresh(ctx context.Context, tok token.Token) *token.Token {
	renewed, err := g.codec.Issue(ctx, tok.Subject, tok.Claims)
	if err != nil {
		g.logger.WithField("subject", tok.Subject).WithError(err).Error(ctx, "failed to refresh session token")
		return nil
	}

	g.lifecycle.refresh(ctx, renewed)
	return &renewed
}

func rejected(reason error, clearCredential bool) Decision {
	return Decision{
		Outcome:         OutcomeRejected,
		Reason:          reason,
		ClearCredential: clearCredential,
	}
}

func (d Decision) outcomeLabel() string {
	switch d.Outcome {
	case OutcomePublic:
		return "public"
	case OutcomeActive:
		return "active"
	default:
		return "rejected"
	}
}

func (d Decision) reasonLabel() string {
	switch {
	case d.Outcome != OutcomeRejected && d.RefreshedToken != nil:
		return "refreshed"
	case d.Outcome != OutcomeRejected:
		return ""
	case errors.Is(d.Reason, domain.ErrNoCredential):
		return "no_token"
	case errors.Is(d.Reason, domain.ErrExpiredCredential):
		return "expired_token"
	case errors.Is(d.Reason, domain.ErrMalformedCredential):
		return "invalid_token"
	case errors.Is(d.Reason, domain.ErrNoActiveSession):
		return "session_expired"
	case errors.Is(d.Reason, domain.ErrInactiveSession):
		return "inactive"
	default:
		return "unknown"
	}
}
