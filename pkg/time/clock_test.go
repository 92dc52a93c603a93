package time_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

func TestAdjustableClock_SetAndAdvance(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	ctx := clock.Set(context.Background(), start)
	assert.Equal(t, start, clock.Now(ctx))

	later := clock.Advance(ctx, 90*time.Second)
	assert.Equal(t, start.Add(90*time.Second), clock.Now(later))
	assert.Equal(t, start, clock.Now(ctx))
}

func TestAdjustableClock_FreezeKeepsPinnedTime(t *testing.T) {
	clock := pkgtime.NewAdjustableClock()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	ctx := clock.Freeze(clock.Set(context.Background(), start))
	assert.Equal(t, start, clock.Now(ctx))

	frozen := clock.Freeze(context.Background())
	first := clock.Now(frozen)
	assert.Equal(t, first, clock.Now(frozen))
}
