package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/go-session-gate/internal/pkg/auth"
	"github.com/klwxsrx/go-session-gate/internal/session/app/event"
	sessionappeventmock "github.com/klwxsrx/go-session-gate/internal/session/app/event/mock"
	"github.com/klwxsrx/go-session-gate/internal/session/app/identity"
	sessionappidentitymock "github.com/klwxsrx/go-session-gate/internal/session/app/identity/mock"
	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	sessiondomainmock "github.com/klwxsrx/go-session-gate/internal/session/domain/mock"
	"github.com/klwxsrx/go-session-gate/internal/session/infra/jwt"
	"github.com/klwxsrx/go-session-gate/internal/session/infra/memory"
	pkgauth "github.com/klwxsrx/go-session-gate/pkg/auth"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	pkgmessage "github.com/klwxsrx/go-session-gate/pkg/message"
	"github.com/klwxsrx/go-session-gate/pkg/metric"
	pkgsqlstub "github.com/klwxsrx/go-session-gate/pkg/sql/stub"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

const (
	assertion      = "header.payload.signature"
	sessionTimeout = 30 * time.Minute
)

var verifiedClaims = identity.Claims{
	Subject:       "uid-1",
	Email:         subject,
	Name:          "Alice",
	EmailVerified: true,
	IssuedAt:      issuedAt,
	ExpiresAt:     issuedAt.Add(time.Hour),
}

type authFixture struct {
	clock      pkgtime.AdjustableClock
	ctx        context.Context
	registries service.Registries
	service    service.Authentication
}

func newAuthFixture(
	verifier identity.Verifier,
	users domain.UserDirectory,
	publisher event.Publisher,
) authFixture {
	clock := pkgtime.NewAdjustableClock()
	registries := service.Registries{
		Sessions:    memory.NewSessionStore(clock),
		Validations: memory.NewValidationCache(memory.DefaultValidationCacheTTL, clock),
		Activity:    memory.NewActivityLimiter(memory.DefaultActivityWindow, memory.DefaultMaxActivityPerWindow, clock),
	}

	return authFixture{
		clock:      clock,
		ctx:        clock.Set(context.Background(), issuedAt),
		registries: registries,
		service: service.NewAuthentication(
			service.AuthConfig{SessionTimeout: sessionTimeout},
			verifier,
			jwt.NewCodec("auth-test-secret", clock),
			users,
			pkgsqlstub.NewTransaction(),
			registries,
			publisher,
			clock,
			metric.NewMetricsStub(),
			log.NewStub(),
		),
	}
}

func verifierReturning(ctrl *gomock.Controller, claims identity.Claims, err error) identity.Verifier {
	mock := sessionappidentitymock.NewVerifier(ctrl)
	mock.EXPECT().Verify(gomock.Any(), assertion).Return(claims, err)
	return mock
}

func expectSessionStarted(ctrl *gomock.Controller) event.Publisher {
	mock := sessionappeventmock.NewPublisher(ctrl)
	mock.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(event.SessionStarted{}))
	return mock
}

func existingUser() *domain.User {
	return &domain.User{
		ID:         uuid.New(),
		Email:      subject,
		Name:       "Alice",
		Role:       "ADMIN",
		ExternalID: "uid-1",
		Active:     true,
		CreatedAt:  issuedAt.Add(-24 * time.Hour),
	}
}

func TestAuthentication_ExchangeToken(t *testing.T) {
	tests := []struct {
		name      string
		verifier  func(ctrl *gomock.Controller) identity.Verifier
		users     func(ctrl *gomock.Controller) domain.UserDirectory
		publisher func(ctrl *gomock.Controller) event.Publisher
		expect    func(t *testing.T, f authFixture, result service.SessionData, err error)
	}{
		{
			name: "success_for_known_user",
			verifier: func(ctrl *gomock.Controller) identity.Verifier {
				return verifierReturning(ctrl, verifiedClaims, nil)
			},
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindUser(gomock.Any(), subject).Return(existingUser(), nil)
				return mock
			},
			publisher: expectSessionStarted,
			expect: func(t *testing.T, f authFixture, result service.SessionData, err error) {
				require.NoError(t, err)
				assert.Equal(t, subject, result.User.Email)
				assert.Equal(t, subject, result.Token.Subject)
				assert.Equal(t, "ADMIN", result.Token.Claims.Role)
				assert.Equal(t, identity.ProviderFirebase, result.Token.Claims.Provider)
				assert.Equal(t, "uid-1", result.Token.Claims.ExternalID)
				assert.Equal(t, issuedAt.Add(time.Hour), result.Token.ExpiresAt)

				session, ok := f.registries.Sessions.Get(f.ctx, subject)
				require.True(t, ok)
				assert.Equal(t, result.Token.Value, session.Token)
				assert.Equal(t, issuedAt.Add(sessionTimeout), session.ExpiresAt)
			},
		},
		{
			name: "success_syncs_changed_identity",
			verifier: func(ctrl *gomock.Controller) identity.Verifier {
				claims := verifiedClaims
				claims.Subject = "uid-2"
				claims.EmailVerified = false
				return verifierReturning(ctrl, claims, nil)
			},
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindUser(gomock.Any(), subject).Return(existingUser(), nil)
				mock.EXPECT().StoreUser(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, user *domain.User) {
						assert.Equal(t, "uid-2", user.ExternalID)
						assert.False(t, user.Active)
					}).
					Return(nil)
				return mock
			},
			publisher: expectSessionStarted,
			expect: func(t *testing.T, _ authFixture, result service.SessionData, err error) {
				require.NoError(t, err)
				assert.Equal(t, "uid-2", result.Token.Claims.ExternalID)
			},
		},
		{
			name: "requires_invitation_for_unknown_user",
			verifier: func(ctrl *gomock.Controller) identity.Verifier {
				return verifierReturning(ctrl, verifiedClaims, nil)
			},
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindUser(gomock.Any(), subject).Return(nil, domain.ErrUserNotFound)
				return mock
			},
			expect: func(t *testing.T, f authFixture, _ service.SessionData, err error) {
				assert.ErrorIs(t, err, domain.ErrRequiresInvitation)
				assert.Zero(t, f.registries.Sessions.Size())
			},
		},
		{
			name: "error_when_assertion_invalid",
			verifier: func(ctrl *gomock.Controller) identity.Verifier {
				return verifierReturning(ctrl, identity.Claims{}, domain.ErrInvalidIdentityAssertion)
			},
			expect: func(t *testing.T, _ authFixture, _ service.SessionData, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidIdentityAssertion)
			},
		},
		{
			name: "error_when_assertion_has_no_email",
			verifier: func(ctrl *gomock.Controller) identity.Verifier {
				claims := verifiedClaims
				claims.Email = ""
				return verifierReturning(ctrl, claims, nil)
			},
			expect: func(t *testing.T, _ authFixture, _ service.SessionData, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidIdentityAssertion)
			},
		},
		{
			name: "error_when_directory_returns_error",
			verifier: func(ctrl *gomock.Controller) identity.Verifier {
				return verifierReturning(ctrl, verifiedClaims, nil)
			},
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindUser(gomock.Any(), subject).Return(nil, errors.New("unexpected"))
				return mock
			},
			expect: func(t *testing.T, _ authFixture, _ service.SessionData, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrRequiresInvitation)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var users domain.UserDirectory = sessiondomainmock.NewUserDirectory(ctrl)
			if tc.users != nil {
				users = tc.users(ctrl)
			}
			var publisher event.Publisher = sessionappeventmock.NewPublisher(ctrl)
			if tc.publisher != nil {
				publisher = tc.publisher(ctrl)
			}

			f := newAuthFixture(tc.verifier(ctrl), users, publisher)
			result, err := f.service.ExchangeToken(f.ctx, assertion)
			tc.expect(t, f, result, err)
		})
	}
}

func TestAuthentication_CompleteInvitation(t *testing.T) {
	pendingInvitation := func() *domain.Invitation {
		return &domain.Invitation{
			ID:        uuid.New(),
			Token:     "invitation-token",
			Email:     "Alice@Example.com",
			Role:      "USER",
			Status:    domain.InvitationStatusPending,
			ExpiresAt: issuedAt.Add(24 * time.Hour),
		}
	}

	tests := []struct {
		name      string
		users     func(ctrl *gomock.Controller) domain.UserDirectory
		publisher func(ctrl *gomock.Controller) event.Publisher
		expect    func(t *testing.T, f authFixture, result service.SessionData, err error)
	}{
		{
			name: "success",
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindInvitation(gomock.Any(), "invitation-token").Return(pendingInvitation(), nil)
				mock.EXPECT().FindUser(gomock.Any(), subject).Return(nil, domain.ErrUserNotFound)
				mock.EXPECT().StoreUser(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, user *domain.User) {
						assert.Equal(t, subject, user.Email)
						assert.Equal(t, "USER", user.Role)
						assert.Equal(t, "uid-1", user.ExternalID)
						assert.True(t, user.Active)
					}).
					Return(nil)
				mock.EXPECT().StoreInvitation(gomock.Any(), gomock.Any()).
					Do(func(_ context.Context, invitation *domain.Invitation) {
						assert.Equal(t, domain.InvitationStatusAccepted, invitation.Status)
						require.NotNil(t, invitation.AcceptedAt)
						assert.Equal(t, issuedAt, *invitation.AcceptedAt)
					}).
					Return(nil)
				return mock
			},
			publisher: expectSessionStarted,
			expect: func(t *testing.T, f authFixture, result service.SessionData, err error) {
				require.NoError(t, err)
				assert.Equal(t, "USER", result.Token.Claims.Role)
				assert.True(t, f.registries.Sessions.IsValid(f.ctx, subject))
			},
		},
		{
			name: "error_when_invitation_not_found",
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindInvitation(gomock.Any(), "invitation-token").Return(nil, domain.ErrInvitationNotFound)
				return mock
			},
			expect: func(t *testing.T, _ authFixture, _ service.SessionData, err error) {
				assert.ErrorIs(t, err, domain.ErrInvitationNotFound)
			},
		},
		{
			name: "error_when_invitation_used",
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				invitation := pendingInvitation()
				invitation.Status = domain.InvitationStatusAccepted

				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindInvitation(gomock.Any(), "invitation-token").Return(invitation, nil)
				return mock
			},
			expect: func(t *testing.T, _ authFixture, _ service.SessionData, err error) {
				assert.ErrorIs(t, err, domain.ErrInvitationUsed)
			},
		},
		{
			name: "error_when_invitation_expired",
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				invitation := pendingInvitation()
				invitation.ExpiresAt = issuedAt.Add(-time.Second)

				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindInvitation(gomock.Any(), "invitation-token").Return(invitation, nil)
				return mock
			},
			expect: func(t *testing.T, _ authFixture, _ service.SessionData, err error) {
				assert.ErrorIs(t, err, domain.ErrInvitationExpired)
			},
		},
		{
			name: "error_when_email_mismatch",
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				invitation := pendingInvitation()
				invitation.Email = "bob@example.com"

				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindInvitation(gomock.Any(), "invitation-token").Return(invitation, nil)
				return mock
			},
			expect: func(t *testing.T, _ authFixture, _ service.SessionData, err error) {
				assert.ErrorIs(t, err, domain.ErrInvitationEmailMismatch)
			},
		},
		{
			name: "error_when_user_already_exists",
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindInvitation(gomock.Any(), "invitation-token").Return(pendingInvitation(), nil)
				mock.EXPECT().FindUser(gomock.Any(), subject).Return(existingUser(), nil)
				return mock
			},
			expect: func(t *testing.T, f authFixture, _ service.SessionData, err error) {
				assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
				assert.Zero(t, f.registries.Sessions.Size())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var publisher event.Publisher = sessionappeventmock.NewPublisher(ctrl)
			if tc.publisher != nil {
				publisher = tc.publisher(ctrl)
			}

			f := newAuthFixture(verifierReturning(ctrl, verifiedClaims, nil), tc.users(ctrl), publisher)
			result, err := f.service.CompleteInvitation(f.ctx, assertion, " invitation-token ")
			tc.expect(t, f, result, err)
		})
	}
}

func TestAuthentication_Logout_EndsSession(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := sessionappeventmock.NewPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, evt pkgmessage.Event) {
			ended, ok := evt.(event.SessionEnded)
			require.True(t, ok)
			assert.Equal(t, event.EndReasonLogout, ended.Reason)
		})

	f := newAuthFixture(sessionappidentitymock.NewVerifier(ctrl), sessiondomainmock.NewUserDirectory(ctrl), publisher)
	f.registries.Sessions.Create(f.ctx, subject, "token", issuedAt.Add(time.Hour))
	f.registries.Validations.Put(f.ctx, subject, true)

	err := f.service.Logout(pkgauth.WithPrincipal(f.ctx, auth.Principal{Subject: subject}))
	require.NoError(t, err)
	assert.Zero(t, f.registries.Sessions.Size())
	assert.Zero(t, f.registries.Validations.Size())

	err = f.service.Logout(f.ctx)
	assert.ErrorIs(t, err, pkgauth.ErrUnauthenticated)
}

func TestAuthentication_CurrentUser(t *testing.T) {
	tests := []struct {
		name   string
		users  func(ctrl *gomock.Controller) domain.UserDirectory
		expect func(t *testing.T, user domain.User, err error)
	}{
		{
			name: "success",
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindUser(gomock.Any(), subject).Return(existingUser(), nil)
				return mock
			},
			expect: func(t *testing.T, user domain.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, subject, user.Email)
			},
		},
		{
			name: "unauthenticated_when_user_not_found",
			users: func(ctrl *gomock.Controller) domain.UserDirectory {
				mock := sessiondomainmock.NewUserDirectory(ctrl)
				mock.EXPECT().FindUser(gomock.Any(), subject).Return(nil, domain.ErrUserNotFound)
				return mock
			},
			expect: func(t *testing.T, _ domain.User, err error) {
				assert.ErrorIs(t, err, pkgauth.ErrUnauthenticated)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newAuthFixture(sessionappidentitymock.NewVerifier(ctrl), tc.users(ctrl), sessionappeventmock.NewPublisher(ctrl))
			user, err := f.service.CurrentUser(pkgauth.WithPrincipal(f.ctx, auth.Principal{Subject: subject}))
			tc.expect(t, user, err)
		})
	}
}

func TestAuthentication_RecordActivity_RateLimited(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newAuthFixture(sessionappidentitymock.NewVerifier(ctrl), sessiondomainmock.NewUserDirectory(ctrl), sessionappeventmock.NewPublisher(ctrl))
	ctx := pkgauth.WithPrincipal(f.ctx, auth.Principal{Subject: subject})

	for range memory.DefaultMaxActivityPerWindow {
		require.NoError(t, f.service.RecordActivity(ctx, "Mozilla/5.0"))
	}
	assert.ErrorIs(t, f.service.RecordActivity(ctx, "Mozilla/5.0"), domain.ErrRateLimited)

	ctx = f.clock.Advance(ctx, memory.DefaultActivityWindow)
	assert.NoError(t, f.service.RecordActivity(ctx, "Mozilla/5.0"))
	assert.ErrorIs(t, f.service.RecordActivity(ctx, "Googlebot/2.1"), domain.ErrRateLimited)
}
