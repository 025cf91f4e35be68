// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"
)

// HostLimiter enforces a minimum interval between requests to the same
// origin (scheme + host). Requests to different origins do not wait on each
// other. It is safe for concurrent use.
type HostLimiter struct {
	interval time.Duration

	mu   sync.Mutex
	next map[string]time.Time

	// now and sleep are replaced in tests.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewHostLimiter returns a limiter spacing requests to one origin by at
// least interval. A zero interval disables waiting.
func NewHostLimiter(interval time.Duration) *HostLimiter {
	return &HostLimiter{
		interval: interval,
		next:     make(map[string]time.Time),
		now:      time.Now,
		sleep:    SleepContext,
	}
}

// Wait blocks until a request to rawURL's origin is allowed and reserves
// the following slot.
func (l *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	if l == nil || l.interval <= 0 {
		return nil
	}
	origin, err := Origin(rawURL)
	if err != nil {
		return err
	}

	l.mu.Lock()
	now := l.now()
	slot := l.next[origin]
	if slot.Before(now) {
		slot = now
	}
	l.next[origin] = slot.Add(l.interval)
	l.mu.Unlock()

	return l.sleep(ctx, slot.Sub(now))
}

// Origin returns the lower-cased scheme://host of rawURL.
func Origin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL %q has no host", rawURL)
	}
	return strings.ToLower(u.Scheme + "://" + u.Host), nil
}

// SleepContext sleeps for d or until ctx is done. Non-positive durations
// return immediately.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
