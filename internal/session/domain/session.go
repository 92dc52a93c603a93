//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names SessionStore=SessionStore,ValidationCache=ValidationCache,ActivityLimiter=ActivityLimiter
package domain

import (
	"context"
	"time"
)

type (
	// Session is stored as a whole, readers never see a partially updated record.
	Session struct {
		Subject      string
		Token        string
		LastActivity time.Time
		ExpiresAt    time.Time
	}

	// SessionStore keeps a single session per subject, Create replaces the previous one.
	SessionStore interface {
		Create(ctx context.Context, subject, token string, expiresAt time.Time)
		Get(ctx context.Context, subject string) (Session, bool)
		Touch(ctx context.Context, subject string)
		Refresh(ctx context.Context, subject, token string, expiresAt time.Time)
		Remove(ctx context.Context, subject string)
		IsValid(ctx context.Context, subject string) bool
		IsInactive(ctx context.Context, subject string, maxInactivity time.Duration) bool
		SweepExpired(ctx context.Context) int
		Size() int
	}

	ValidationCache interface {
		Get(ctx context.Context, subject string) (valid bool, ok bool)
		Put(ctx context.Context, subject string, valid bool)
		Invalidate(subject string)
		Clear()
		Size() int
		SweepExpired(ctx context.Context) int
	}

	ActivityLimiter interface {
		Admit(ctx context.Context, subject, userAgent string) bool
		Invalidate(subject string)
		Size() int
	}
)

func (s Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

func (s Session) IsInactive(now time.Time, maxInactivity time.Duration) bool {
	return now.Sub(s.LastActivity) > maxInactivity
}
