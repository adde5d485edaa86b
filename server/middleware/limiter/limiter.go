// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"codeberg.org/contentdemo/contentdemo/server/utils"
)

// timeNow is a wrapper for time.Now, which allows us to mock it in tests.
var timeNow = time.Now

// limiterWrapper holds a rate limiter and additional metadata.
type limiterWrapper struct {
	limiter    *rate.Limiter
	mu         sync.Mutex // guards lastAccess
	lastAccess time.Time
}

// Limiter hands out one token bucket per client address.
type Limiter struct {
	interval time.Duration
	burst    int
	expiry   time.Duration

	limiters sync.Map // client address -> *limiterWrapper

	stop     chan struct{}
	stopOnce sync.Once
}

// New returns a Limiter that allows one request per interval with the given
// burst. Buckets idle for longer than expiry are dropped by Cleanup.
func New(interval time.Duration, burst int, expiry time.Duration) *Limiter {
	return &Limiter{
		interval: interval,
		burst:    burst,
		expiry:   expiry,
		stop:     make(chan struct{}),
	}
}

// Allow spends a token for key and reports whether one was available.
func (l *Limiter) Allow(key string) bool {
	now := timeNow()

	value, _ := l.limiters.LoadOrStore(key, &limiterWrapper{
		limiter:    rate.NewLimiter(rate.Every(l.interval), l.burst),
		lastAccess: now,
	})

	wrapper, ok := value.(*limiterWrapper)
	if !ok {
		return true
	}

	wrapper.mu.Lock()
	wrapper.lastAccess = now
	wrapper.mu.Unlock()

	return wrapper.limiter.AllowN(now, 1)
}

// Cleanup removes buckets that have not been used within the expiry window.
// It returns the number of removed buckets.
func (l *Limiter) Cleanup() int {
	cutoff := timeNow().Add(-l.expiry)
	removed := 0

	l.limiters.Range(func(key, value any) bool {
		wrapper, ok := value.(*limiterWrapper)
		if !ok {
			l.limiters.Delete(key)

			return true
		}

		wrapper.mu.Lock()
		expired := wrapper.lastAccess.Before(cutoff)
		wrapper.mu.Unlock()

		if expired {
			l.limiters.Delete(key)

			removed++
		}

		return true
	})

	return removed
}

// Start runs Cleanup every expiry interval until Stop is called.
func (l *Limiter) Start() {
	go func() {
		ticker := time.NewTicker(l.expiry)
		defer ticker.Stop()

		for {
			select {
			case <-l.stop:
				return
			case <-ticker.C:
				start := time.Now()
				removed := l.Cleanup()

				log.Debug().
					Int("removed", removed).
					Dur("dur", time.Since(start)).
					Msg("limiter cleanup")
			}
		}
	}()
}

// Stop ends the cleanup loop started by Start. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// Evaluate is a middleware that rejects unsafe requests from clients that
// have exhausted their bucket with 429 Too Many Requests.
func (l *Limiter) Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	if isSafeMethod(r.Method) {
		next.ServeHTTP(w, r)

		return
	}

	client := utils.ClientAddress(r)
	if l.Allow(client) {
		next.ServeHTTP(w, r)

		return
	}

	log.Warn().
		Str("client", client).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("Rate limit exceeded")

	w.Header().Set("Retry-After", retryAfterSeconds(l.interval))
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}
