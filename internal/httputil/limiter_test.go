// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when the limiter sleeps.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return nil
}

func newTestLimiter(interval time.Duration) (*HostLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := NewHostLimiter(interval)
	l.now = clock.Now
	l.sleep = clock.Sleep
	return l, clock
}

func TestHostLimiter_SpacesSameOrigin(t *testing.T) {
	l, clock := newTestLimiter(time.Second)
	ctx := context.Background()

	require.NoError(t, l.Wait(ctx, "https://example.com/a"))
	require.NoError(t, l.Wait(ctx, "https://example.com/b"))
	require.NoError(t, l.Wait(ctx, "https://EXAMPLE.com/c"))

	assert.Equal(t, []time.Duration{0, time.Second, time.Second}, clock.sleeps)
}

func TestHostLimiter_IndependentOrigins(t *testing.T) {
	l, clock := newTestLimiter(time.Second)
	ctx := context.Background()

	require.NoError(t, l.Wait(ctx, "https://example.com/a"))
	require.NoError(t, l.Wait(ctx, "https://other.org/a"))

	assert.Equal(t, []time.Duration{0, 0}, clock.sleeps)
}

func TestHostLimiter_NoWaitAfterInterval(t *testing.T) {
	l, clock := newTestLimiter(time.Second)
	ctx := context.Background()

	require.NoError(t, l.Wait(ctx, "https://example.com/a"))
	clock.now = clock.now.Add(3 * time.Second)
	require.NoError(t, l.Wait(ctx, "https://example.com/b"))

	assert.Equal(t, []time.Duration{0, 0}, clock.sleeps)
}

func TestHostLimiter_ZeroIntervalDisabled(t *testing.T) {
	l, clock := newTestLimiter(0)
	require.NoError(t, l.Wait(context.Background(), "not a url at all"))
	assert.Empty(t, clock.sleeps)
}

func TestHostLimiter_RejectsHostlessURL(t *testing.T) {
	l, _ := newTestLimiter(time.Second)
	assert.Error(t, l.Wait(context.Background(), "/relative/path"))
}

func TestOrigin(t *testing.T) {
	got, err := Origin("HTTPS://www.GhanaWeb.com/GhanaHomePage/business/x?date=20240101")
	require.NoError(t, err)
	assert.Equal(t, "https://www.ghanaweb.com", got)
}

func TestSleepContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, SleepContext(ctx, time.Hour), context.Canceled)
}
