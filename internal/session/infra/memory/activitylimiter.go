package memory

import (
	"context"
	"strings"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

const (
	DefaultActivityWindow       = time.Minute
	DefaultMaxActivityPerWindow = 30
)

var automationMarkers = []string{"bot", "crawler", "spider", "automation"}

type activityWindow struct {
	start time.Time
	count int
}

type activityLimiter struct {
	windows      *xsync.MapOf[string, activityWindow]
	window       time.Duration
	maxPerWindow int
	clock        pkgtime.Clock
}

func NewActivityLimiter(window time.Duration, maxPerWindow int, clock pkgtime.Clock) domain.ActivityLimiter {
	if window <= 0 {
		window = DefaultActivityWindow
	}
	if maxPerWindow <= 0 {
		maxPerWindow = DefaultMaxActivityPerWindow
	}

	return &activityLimiter{
		windows:      xsync.NewMapOf[string, activityWindow](),
		window:       window,
		maxPerWindow: maxPerWindow,
		clock:        clock,
	}
}

func (l *activityLimiter) Admit(ctx context.Context, subject, userAgent string) bool {
	if strings.TrimSpace(subject) == "" || isAutomation(userAgent) {
		return false
	}

	now := l.clock.Now(ctx)
	l.pruneLapsed(now)

	current, _ := l.windows.Compute(subject, func(w activityWindow, loaded bool) (activityWindow, bool) {
		if !loaded || l.isLapsed(w, now) {
			return activityWindow{start: now, count: 1}, false
		}

		w.count++
		return w, false
	})

	return current.count <= l.maxPerWindow
}

func (l *activityLimiter) Invalidate(subject string) {
	l.windows.Delete(subject)
}

func (l *activityLimiter) Size() int {
	return l.windows.Size()
}

func (l *activityLimiter) pruneLapsed(now time.Time) {
	l.windows.Range(func(subject string, w activityWindow) bool {
		if !l.isLapsed(w, now) {
			return true
		}

		l.windows.Compute(subject, func(current activityWindow, loaded bool) (activityWindow, bool) {
			return current, !loaded || l.isLapsed(current, now)
		})
		return true
	})
}

func (l *activityLimiter) isLapsed(w activityWindow, now time.Time) bool {
	return now.Sub(w.start) >= l.window
}

func isAutomation(userAgent string) bool {
	userAgent = strings.ToLower(userAgent)
	for _, marker := range automationMarkers {
		if strings.Contains(userAgent, marker) {
			return true
		}
	}

	return false
}
