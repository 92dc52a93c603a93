//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names Authentication=Authentication
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/go-session-gate/internal/pkg/auth"
	"github.com/klwxsrx/go-session-gate/internal/session/app/event"
	"github.com/klwxsrx/go-session-gate/internal/session/app/identity"
	"github.com/klwxsrx/go-session-gate/internal/session/app/token"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkgauth "github.com/klwxsrx/go-session-gate/pkg/auth"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	"github.com/klwxsrx/go-session-gate/pkg/metric"
	"github.com/klwxsrx/go-session-gate/pkg/sql"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

const DefaultSessionTimeout = time.Minute

type (
	Authentication interface {
		ExchangeToken(ctx context.Context, assertion string) (SessionData, error)
		CompleteInvitation(ctx context.Context, assertion, invitationToken string) (SessionData, error)
		Logout(ctx context.Context) error
		CurrentUser(ctx context.Context) (domain.User, error)
		RecordActivity(ctx context.Context, userAgent string) error
	}

	AuthConfig struct {
		SessionTimeout time.Duration
	}

	SessionData struct {
		User  domain.User
		Token token.Token
	}
)

type authenticationService struct {
	sessionTimeout time.Duration
	verifier       identity.Verifier
	codec          token.Codec
	users          domain.UserDirectory
	transaction    sql.Transaction
	registries     Registries
	lifecycle      sessionLifecycle
	clock          pkgtime.Clock
	metrics        metric.Metrics
	logger         log.Logger
}

func NewAuthentication(
	config AuthConfig,
	verifier identity.Verifier,
	codec token.Codec,
	users domain.UserDirectory,
	transaction sql.Transaction,
	registries Registries,
	publisher event.Publisher,
	clock pkgtime.Clock,
	metrics metric.Metrics,
	logger log.Logger,
) Authentication {
	if config.SessionTimeout <= 0 {
		config.SessionTimeout = DefaultSessionTimeout
	}

	return authenticationService{
		sessionTimeout: config.SessionTimeout,
		verifier:       verifier,
		codec:          codec,
		users:          users,
		transaction:    transaction,
		registries:     registries,
		lifecycle: sessionLifecycle{
			registries: registries,
			publisher:  publisher,
			clock:      clock,
			logger:     logger,
		},
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

func (s authenticationService) ExchangeToken(ctx context.Context, assertion string) (SessionData, error) {
	claims, err := s.verifyAssertion(ctx, assertion)
	if err != nil {
		return SessionData{}, err
	}

	user, err := s.lookupOrRejectUser(ctx, claims)
	if err != nil {
		return SessionData{}, err
	}

	return s.startSession(ctx, *user, claims.Subject)
}

func (s authenticationService) CompleteInvitation(ctx context.Context, assertion, invitationToken string) (SessionData, error) {
	claims, err := s.verifyAssertion(ctx, assertion)
	if err != nil {
		return SessionData{}, err
	}

	invitationToken = strings.TrimSpace(invitationToken)
	if invitationToken == "" {
		return SessionData{}, domain.ErrInvitationNotFound
	}

	var user domain.User
	err = s.transaction.Execute(ctx, func(ctx context.Context) error {
		invitation, err := s.users.FindInvitation(ctx, invitationToken)
		if err != nil {
			return err
		}

		now := s.clock.Now(ctx)
		err = invitation.Accept(claims.Email, now)
		if err != nil {
			return err
		}

		_, err = s.users.FindUser(ctx, claims.Email)
		if err == nil {
			return domain.ErrUserAlreadyExists
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("find user: %w", err)
		}

		user = domain.User{
			ID:         uuid.New(),
			Email:      claims.Email,
			Name:       claims.Name,
			Role:       invitation.Role,
			ExternalID: claims.Subject,
			Active:     true,
			CreatedAt:  now,
		}
		err = s.users.StoreUser(ctx, &user)
		if err != nil {
			return fmt.Errorf("store user: %w", err)
		}

		err = s.users.StoreInvitation(ctx, invitation)
		if err != nil {
			return fmt.Errorf("store invitation: %w", err)
		}

		return nil
	}, invitationLockName(invitationToken))
	if err != nil {
		return SessionData{}, err
	}

	s.logger.WithField("subject", user.Email).Info(ctx, "invitation completed")
	return s.startSession(ctx, user, claims.Subject)
}

func (s authenticationService) Logout(ctx context.Context) error {
	principal, ok := pkgauth.GetPrincipal[auth.Principal](ctx)
	if !ok {
		return pkgauth.ErrUnauthenticated
	}

	s.lifecycle.end(ctx, principal.Subject, event.EndReasonLogout)
	return nil
}

func (s authenticationService) CurrentUser(ctx context.Context) (domain.User, error) {
	principal, ok := pkgauth.GetPrincipal[auth.Principal](ctx)
	if !ok {
		return domain.User{}, pkgauth.ErrUnauthenticated
	}

	user, err := s.users.FindUser(ctx, principal.Subject)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, fmt.Errorf("%w: %w", pkgauth.ErrUnauthenticated, err)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}

	return *user, nil
}

func (s authenticationService) RecordActivity(ctx context.Context, userAgent string) error {
	principal, ok := pkgauth.GetPrincipal[auth.Principal](ctx)
	if !ok {
		return pkgauth.ErrUnauthenticated
	}

	if !s.registries.Activity.Admit(ctx, principal.Subject, userAgent) {
		s.metrics.Increment("session_activity_rejections_total")
		return domain.ErrRateLimited
	}

	return nil
}

func (s authenticationService) verifyAssertion(ctx context.Context, assertion string) (identity.Claims, error) {
	claims, err := s.verifier.Verify(ctx, assertion)
	if err != nil {
		return identity.Claims{}, err
	}
	if claims.Email == "" || claims.Subject == "" {
		return identity.Claims{}, fmt.Errorf("%w: missing email or subject", domain.ErrInvalidIdentityAssertion)
	}

	return claims, nil
}

// lookupOrRejectUser never creates users, unknown emails have to complete an invitation first.
func (s authenticationService) lookupOrRejectUser(ctx context.Context, claims identity.Claims) (*domain.User, error) {
	user, err := s.users.FindUser(ctx, claims.Email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrRequiresInvitation
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user.SyncIdentity(claims.Subject, claims.Name, claims.EmailVerified) {
		err = s.users.StoreUser(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("store user: %w", err)
		}
	}

	return user, nil
}

func (s authenticationService) startSession(ctx context.Context, user domain.User, externalID string) (SessionData, error) {
	tok, err := s.codec.Issue(ctx, user.Email, token.Claims{
		Role:       user.Role,
		Provider:   identity.ProviderFirebase,
		ExternalID: externalID,
	})
	if err != nil {
		return SessionData{}, fmt.Errorf("issue token: %w", err)
	}

	s.lifecycle.start(ctx, tok, s.clock.Now(ctx).Add(s.sessionTimeout))
	return SessionData{
		User:  user,
		Token: tok,
	}, nil
}

func invitationLockName(invitationToken string) string {
	return "invitation_" + invitationToken
}
