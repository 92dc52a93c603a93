package memory

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

type sessionStore struct {
	sessions *xsync.MapOf[string, domain.Session]
	clock    pkgtime.Clock
}

func NewSessionStore(clock pkgtime.Clock) domain.SessionStore {
	return &sessionStore{
		sessions: xsync.NewMapOf[string, domain.Session](),
		clock:    clock,
	}
}

func (s *sessionStore) Create(ctx context.Context, subject, token string, expiresAt time.Time) {
	s.sessions.Store(subject, domain.Session{
		Subject:      subject,
		Token:        token,
		LastActivity: s.clock.Now(ctx),
		ExpiresAt:    expiresAt,
	})
}

func (s *sessionStore) Get(_ context.Context, subject string) (domain.Session, bool) {
	return s.sessions.Load(subject)
}

func (s *sessionStore) Touch(ctx context.Context, subject string) {
	now := s.clock.Now(ctx)
	s.update(subject, func(session *domain.Session) {
		session.LastActivity = now
	})
}

func (s *sessionStore) Refresh(ctx context.Context, subject, token string, expiresAt time.Time) {
	now := s.clock.Now(ctx)
	s.update(subject, func(session *domain.Session) {
		session.Token = token
		session.ExpiresAt = expiresAt
		session.LastActivity = now
	})
}

func (s *sessionStore) Remove(_ context.Context, subject string) {
	s.sessions.Delete(subject)
}

func (s *sessionStore) IsValid(ctx context.Context, subject string) bool {
	session, ok := s.sessions.Load(subject)
	return ok && !session.IsExpired(s.clock.Now(ctx))
}

func (s *sessionStore) IsInactive(ctx context.Context, subject string, maxInactivity time.Duration) bool {
	session, ok := s.sessions.Load(subject)
	return !ok || session.IsInactive(s.clock.Now(ctx), maxInactivity)
}

func (s *sessionStore) SweepExpired(ctx context.Context) int {
	now := s.clock.Now(ctx)

	removed := 0
	s.sessions.Range(func(subject string, session domain.Session) bool {
		if !session.IsExpired(now) {
			return true
		}

		// the session could be replaced since Range read it
		s.sessions.Compute(subject, func(current domain.Session, loaded bool) (domain.Session, bool) {
			if loaded && current.IsExpired(now) {
				removed++
				return current, true
			}
			return current, !loaded
		})
		return true
	})

	return removed
}

func (s *sessionStore) Size() int {
	return s.sessions.Size()
}

// update changes an existing session atomically, absent sessions are not created.
func (s *sessionStore) update(subject string, fn func(*domain.Session)) {
	s.sessions.Compute(subject, func(session domain.Session, loaded bool) (domain.Session, bool) {
		if !loaded {
			return session, true
		}

		fn(&session)
		return session, false
	})
}
