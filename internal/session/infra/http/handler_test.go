package http_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/go-session-gate/internal/pkg/auth"
	"github.com/klwxsrx/go-session-gate/internal/session/app/service"
	servicemock "github.com/klwxsrx/go-session-gate/internal/session/app/service/mock"
	"github.com/klwxsrx/go-session-gate/internal/session/app/token"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	sessionhttp "github.com/klwxsrx/go-session-gate/internal/session/infra/http"
	pkgauth "github.com/klwxsrx/go-session-gate/pkg/auth"
	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
	"github.com/klwxsrx/go-session-gate/pkg/log"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

var (
	alice = domain.User{
		ID:        uuid.MustParse("6f1c2f8e-3f52-4a34-9a55-1f4b3b0e9d11"),
		Email:     "alice@example.com",
		Name:      "Alice",
		Role:      "ADMIN",
		Active:    true,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	alicePrincipal = auth.Principal{
		Subject:    "alice@example.com",
		Role:       "ADMIN",
		Provider:   "firebase",
		ExternalID: "uid-1",
	}
	sessionToken = token.Token{
		Value:     "session-token",
		Subject:   "alice@example.com",
		IssuedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
	}
)

func newServer(gate service.Gate, handlers ...pkghttp.Handler) pkghttp.Server {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithErrorMapping(sessionhttp.ErrorMapping()))
	srv.Use(sessionhttp.NewGateMiddleware(gate, sessionhttp.NewCookieFactory(false)))
	for _, handler := range handlers {
		srv.Register(handler)
	}

	return srv
}

func activeGate(ctrl *gomock.Controller) service.Gate {
	gate := servicemock.NewGate(ctrl)
	gate.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).Return(service.Decision{
		Outcome:   service.OutcomeActive,
		Principal: &alicePrincipal,
	}).AnyTimes()
	return gate
}

func publicGate(ctrl *gomock.Controller) service.Gate {
	gate := servicemock.NewGate(ctrl)
	gate.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).Return(service.Decision{
		Outcome: service.OutcomePublic,
	}).AnyTimes()
	return gate
}

func serve(srv http.Handler, method, url, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	for _, fn := range mutate {
		fn(req)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionhttp.SessionCookieName {
			return cookie
		}
	}

	require.Fail(t, "session cookie not found")
	return nil
}

func TestGateMiddleware(t *testing.T) {
	refreshed := sessionToken
	refreshed.Value = "refreshed-token"

	tests := []struct {
		name     string
		cookie   string
		decision service.Decision
		expect   func(t *testing.T, rec *httptest.ResponseRecorder, principal *auth.Principal)
	}{
		{
			name:   "rejected_without_credential",
			cookie: "",
			decision: service.Decision{
				Outcome: service.OutcomeRejected,
				Reason:  domain.ErrNoCredential,
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder, principal *auth.Principal) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.JSONEq(t, `{"error":"no token"}`, rec.Body.String())
				assert.Empty(t, rec.Result().Cookies())
				assert.Nil(t, principal)
			},
		},
		{
			name:   "rejected_with_cleared_credential",
			cookie: "stale-token",
			decision: service.Decision{
				Outcome:         service.OutcomeRejected,
				Reason:          domain.ErrInactiveSession,
				ClearCredential: true,
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder, principal *auth.Principal) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.JSONEq(t, `{"error":"inactive"}`, rec.Body.String())
				assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")
				assert.Empty(t, sessionCookie(t, rec).Value)
				assert.Nil(t, principal)
			},
		},
		{
			name:   "expired_credential_rendered_as_invalid",
			cookie: "expired-token",
			decision: service.Decision{
				Outcome: service.OutcomeRejected,
				Reason:  domain.ErrExpiredCredential,
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder, _ *auth.Principal) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.JSONEq(t, `{"error":"invalid or expired token"}`, rec.Body.String())
			},
		},
		{
			name:   "active_with_principal",
			cookie: "session-token",
			decision: service.Decision{
				Outcome:   service.OutcomeActive,
				Principal: &alicePrincipal,
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder, principal *auth.Principal) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Empty(t, rec.Result().Cookies())
				assert.Equal(t, &alicePrincipal, principal)
			},
		},
		{
			name:   "active_with_refreshed_credential",
			cookie: "session-token",
			decision: service.Decision{
				Outcome:        service.OutcomeActive,
				Principal:      &alicePrincipal,
				RefreshedToken: &refreshed,
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder, principal *auth.Principal) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				cookie := sessionCookie(t, rec)
				assert.Equal(t, "refreshed-token", cookie.Value)
				assert.Equal(t, 3600, cookie.MaxAge)
				assert.NotNil(t, principal)
			},
		},
		{
			name:   "public_without_principal",
			cookie: "",
			decision: service.Decision{
				Outcome: service.OutcomePublic,
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder, principal *auth.Principal) {
				assert.Equal(t, http.StatusNoContent, rec.Code)
				assert.Nil(t, principal)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gate := servicemock.NewGate(ctrl)
			gate.EXPECT().Evaluate(gomock.Any(), "/api/protected", tc.cookie).Return(tc.decision)

			var principal *auth.Principal
			srv := newServer(gate, protectedHandler{fn: func(r *http.Request) {
				if p, ok := pkgauth.GetPrincipal[auth.Principal](r.Context()); ok {
					principal = &p
				}
			}})

			rec := serve(srv, http.MethodGet, "/api/protected", "", func(r *http.Request) {
				if tc.cookie != "" {
					r.AddCookie(&http.Cookie{Name: sessionhttp.SessionCookieName, Value: tc.cookie})
				}
			})
			tc.expect(t, rec, principal)
		})
	}
}

type protectedHandler struct {
	fn func(r *http.Request)
}

func (h protectedHandler) Method() string {
	return http.MethodGet
}

func (h protectedHandler) Path() string {
	return "/api/protected"
}

func (h protectedHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	h.fn(r)
	w.SetStatusCode(http.StatusNoContent)
	return nil
}

func TestExchangeTokenHandler(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		auth   func(mock *servicemock.Authentication)
		expect func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "success_sets_cookie",
			body: `{"token":" assertion "}`,
			auth: func(mock *servicemock.Authentication) {
				mock.EXPECT().ExchangeToken(gomock.Any(), "assertion").Return(service.SessionData{
					User:  alice,
					Token: sessionToken,
				}, nil)
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var out struct {
					User       sessionhttp.UserOut `json:"user"`
					Message    string              `json:"message"`
					TokenValid bool                `json:"tokenValid"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
				assert.Equal(t, "alice@example.com", out.User.Email)
				assert.Equal(t, "ADMIN", out.User.Role)
				assert.Equal(t, "Token exchanged successfully", out.Message)
				assert.True(t, out.TokenValid)

				cookie := sessionCookie(t, rec)
				assert.Equal(t, "session-token", cookie.Value)
				assert.True(t, cookie.HttpOnly)
				assert.True(t, cookie.Secure)
				assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
				assert.Equal(t, "/", cookie.Path)
			},
		},
		{
			name: "bad_request_without_token",
			body: `{"token":"  "}`,
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Empty(t, rec.Result().Cookies())
			},
		},
		{
			name: "bad_request_on_malformed_body",
			body: `token`,
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name: "unauthorized_on_invalid_assertion",
			body: `{"token":"assertion"}`,
			auth: func(mock *servicemock.Authentication) {
				mock.EXPECT().ExchangeToken(gomock.Any(), "assertion").
					Return(service.SessionData{}, fmt.Errorf("%w: token expired", domain.ErrInvalidIdentityAssertion))
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.JSONEq(t, `{"error":"identity token verification failed"}`, rec.Body.String())
			},
		},
		{
			name: "forbidden_when_invitation_required",
			body: `{"token":"assertion"}`,
			auth: func(mock *servicemock.Authentication) {
				mock.EXPECT().ExchangeToken(gomock.Any(), "assertion").Return(service.SessionData{}, domain.ErrRequiresInvitation)
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
				assert.JSONEq(t, `{
					"error": "user account not found, please complete your invitation first",
					"requires_invitation": true
				}`, rec.Body.String())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authService := servicemock.NewAuthentication(ctrl)
			if tc.auth != nil {
				tc.auth(authService)
			}

			srv := newServer(publicGate(ctrl), sessionhttp.NewExchangeTokenHandler(authService, sessionhttp.NewCookieFactory(false)))
			tc.expect(t, serve(srv, http.MethodPost, "/api/auth/exchange-token", tc.body))
		})
	}
}

func TestCompleteInvitationHandler(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		body          string
		auth          func(mock *servicemock.Authentication)
		expect        func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:          "success",
			authorization: "Bearer assertion",
			body:          `{"token":"invitation-token"}`,
			auth: func(mock *servicemock.Authentication) {
				mock.EXPECT().CompleteInvitation(gomock.Any(), "assertion", "invitation-token").Return(service.SessionData{
					User:  alice,
					Token: sessionToken,
				}, nil)
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "session-token", sessionCookie(t, rec).Value)
			},
		},
		{
			name:          "scheme_is_case_insensitive",
			authorization: "bearer  assertion ",
			body:          `{"token":"invitation-token"}`,
			auth: func(mock *servicemock.Authentication) {
				mock.EXPECT().CompleteInvitation(gomock.Any(), "assertion", "invitation-token").Return(service.SessionData{
					User:  alice,
					Token: sessionToken,
				}, nil)
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:          "unauthorized_without_bearer",
			authorization: "Basic abc",
			body:          `{"token":"invitation-token"}`,
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name:          "unauthorized_with_empty_bearer",
			authorization: "Bearer ",
			body:          `{"token":"invitation-token"}`,
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name:          "bad_request_without_invitation_token",
			authorization: "Bearer assertion",
			body:          `{}`,
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:          "bad_request_on_used_invitation",
			authorization: "Bearer assertion",
			body:          `{"token":"invitation-token"}`,
			auth: func(mock *servicemock.Authentication) {
				mock.EXPECT().CompleteInvitation(gomock.Any(), "assertion", "invitation-token").Return(service.SessionData{}, domain.ErrInvitationUsed)
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.JSONEq(t, `{"error":"invitation already used"}`, rec.Body.String())
			},
		},
		{
			name:          "bad_request_when_user_exists",
			authorization: "Bearer assertion",
			body:          `{"token":"invitation-token"}`,
			auth: func(mock *servicemock.Authentication) {
				mock.EXPECT().CompleteInvitation(gomock.Any(), "assertion", "invitation-token").Return(service.SessionData{}, domain.ErrUserAlreadyExists)
			},
			expect: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authService := servicemock.NewAuthentication(ctrl)
			if tc.auth != nil {
				tc.auth(authService)
			}

			srv := newServer(publicGate(ctrl), sessionhttp.NewCompleteInvitationHandler(authService, sessionhttp.NewCookieFactory(false)))
			tc.expect(t, serve(srv, http.MethodPost, "/api/auth/complete-invitation", tc.body, func(r *http.Request) {
				r.Header.Set("Authorization", tc.authorization)
			}))
		})
	}
}

func TestLogoutHandler_ClearsCookie(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authService := servicemock.NewAuthentication(ctrl)
	authService.EXPECT().Logout(gomock.Any()).Return(nil)

	srv := newServer(activeGate(ctrl), sessionhttp.NewLogoutHandler(authService, sessionhttp.NewCookieFactory(true)))
	rec := serve(srv, http.MethodPost, "/api/auth/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out successfully"}`, rec.Body.String())
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestCurrentUserHandler(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authService := servicemock.NewAuthentication(ctrl)
	authService.EXPECT().CurrentUser(gomock.Any()).Return(alice, nil)
	authService.EXPECT().CurrentUser(gomock.Any()).Return(domain.User{}, fmt.Errorf("%w: %w", pkgauth.ErrUnauthenticated, domain.ErrUserNotFound))

	srv := newServer(activeGate(ctrl), sessionhttp.NewCurrentUserHandler(authService))

	rec := serve(srv, http.MethodGet, "/api/auth/current-user", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"user": {
			"id": "6f1c2f8e-3f52-4a34-9a55-1f4b3b0e9d11",
			"email": "alice@example.com",
			"name": "Alice",
			"role": "ADMIN",
			"active": true,
			"createdAt": "2024-05-01T10:00:00Z"
		},
		"role": "ADMIN"
	}`, rec.Body.String())

	rec = serve(srv, http.MethodGet, "/api/auth/current-user", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestActivityHandler(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authService := servicemock.NewAuthentication(ctrl)
	gomock.InOrder(
		authService.EXPECT().RecordActivity(gomock.Any(), "agent/1.0").Return(nil),
		authService.EXPECT().RecordActivity(gomock.Any(), "agent/1.0").Return(domain.ErrRateLimited),
	)

	srv := newServer(activeGate(ctrl), sessionhttp.NewActivityHandler(authService, time.Minute))
	withAgent := func(r *http.Request) {
		r.Header.Set("User-Agent", "agent/1.0")
	}

	rec := serve(srv, http.MethodPost, "/api/auth/activity", "", withAgent)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = serve(srv, http.MethodPost, "/api/auth/activity", "", withAgent)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limited"}`, rec.Body.String())
}

func TestCleanupSessionsHandler(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	administration := servicemock.NewAdministration(ctrl)
	gomock.InOrder(
		administration.EXPECT().CleanupSessions(gomock.Any()).Return(service.SweepResult{Sessions: 2, ValidationEntries: 5}, nil),
		administration.EXPECT().CleanupSessions(gomock.Any()).Return(service.SweepResult{}, pkgauth.ErrPermissionDenied),
	)

	srv := newServer(activeGate(ctrl), sessionhttp.NewCleanupSessionsHandler(administration))

	rec := serve(srv, http.MethodPost, "/api/admin/sessions/cleanup", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"removed": {"sessions": 2, "validationEntries": 5},
		"message": "Session cleanup completed"
	}`, rec.Body.String())

	rec = serve(srv, http.MethodPost, "/api/admin/sessions/cleanup", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"permission denied"}`, rec.Body.String())
}

func TestDiagnosticHandlers(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	diagnostics := servicemock.NewDiagnostics(ctrl)
	gomock.InOrder(
		diagnostics.EXPECT().CountUsers(gomock.Any()).Return(3, nil),
		diagnostics.EXPECT().CountUsers(gomock.Any()).Return(0, errors.New("connection refused")),
	)

	srv := newServer(
		publicGate(ctrl),
		sessionhttp.NewHealthHandler(pkgtime.NewClock()),
		sessionhttp.NewDatabaseStatusHandler(diagnostics, log.NewStub()),
	)

	rec := serve(srv, http.MethodGet, "/api/diagnostic/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var health struct {
		Status    string `json:"status"`
		Timestamp int64  `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "UP", health.Status)
	assert.Positive(t, health.Timestamp)

	rec = serve(srv, http.MethodGet, "/api/diagnostic/database-status", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"databaseConnection":"Successful","userCount":3}`, rec.Body.String())

	rec = serve(srv, http.MethodGet, "/api/diagnostic/database-status", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"databaseConnection":"Failed","error":"connection refused"}`, rec.Body.String())
}
