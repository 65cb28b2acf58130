// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/olegiv/suratku/internal/flash"
	"github.com/olegiv/suratku/internal/i18n"
	"github.com/olegiv/suratku/internal/model"
)

// limiterCache is a generic rate limiter cache with double-check locking.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

func newLimiterCache[K comparable](rps float64, burst int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

// get returns the rate limiter for a specific key, creating one if needed.
func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// clearIfExceeds clears all entries if the cache exceeds maxSize.
// Returns true if the cache was cleared.
func (lc *limiterCache[K]) clearIfExceeds(maxSize int) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if len(lc.limiters) > maxSize {
		lc.limiters = make(map[K]*rate.Limiter)
		return true
	}
	return false
}

func (lc *limiterCache[K]) size() int {
	lc.mu.RLock()
	defer lc.mu.RUnlock()
	return len(lc.limiters)
}

// maxTrackedIPs bounds the limiter cache between cleanups.
const maxTrackedIPs = 10000

// LoginProtectionConfig holds configuration for login throttling.
type LoginProtectionConfig struct {
	// IPRateLimit is login attempts per second per IP. Zero or less disables throttling.
	IPRateLimit float64
	// IPBurst is the maximum burst size per IP.
	IPBurst int
	// CleanupInterval is how often the limiter cache is checked for size.
	CleanupInterval time.Duration
}

// DefaultLoginProtectionConfig returns sensible defaults.
func DefaultLoginProtectionConfig() LoginProtectionConfig {
	return LoginProtectionConfig{
		IPRateLimit:     0.5, // 1 request per 2 seconds
		IPBurst:         5,
		CleanupInterval: 10 * time.Minute,
	}
}

// LoginProtection throttles login submissions per client IP.
type LoginProtection struct {
	ipLimiters *limiterCache[string]
	enabled    bool
	flash      *flash.Queue
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewLoginProtection creates a new login protection instance and starts
// its cleanup goroutine when throttling is enabled.
func NewLoginProtection(cfg LoginProtectionConfig, fq *flash.Queue) *LoginProtection {
	lp := &LoginProtection{
		enabled: cfg.IPRateLimit > 0,
		flash:   fq,
		stop:    make(chan struct{}),
	}
	if !lp.enabled {
		return lp
	}

	if cfg.IPBurst <= 0 {
		cfg.IPBurst = 1
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 10 * time.Minute
	}
	lp.ipLimiters = newLimiterCache[string](cfg.IPRateLimit, cfg.IPBurst)

	go lp.cleanup(cfg.CleanupInterval)

	return lp
}

// Allow reports whether another login attempt from ip is permitted.
func (lp *LoginProtection) Allow(ip string) bool {
	if !lp.enabled {
		return true
	}
	return lp.ipLimiters.get(ip).Allow()
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (lp *LoginProtection) Stop() {
	lp.stopOnce.Do(func() { close(lp.stop) })
}

func (lp *LoginProtection) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if lp.ipLimiters.clearIfExceeds(maxTrackedIPs) {
				slog.Info("cleared login rate limiters due to size")
			}
		case <-lp.stop:
			return
		}
	}
}

// Middleware returns HTTP middleware for IP rate limiting on login.
// Only POST requests count; throttled requests never reach the handler.
func (lp *LoginProtection) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			ip := ClientIP(r)
			if !lp.Allow(ip) {
				slog.Warn("login rate limit exceeded",
					"ip", ip,
					"category", model.EventCategorySecurity,
				)
				lp.flash.Error(r.Context(), i18n.T(GetLang(r), "auth.too_many_attempts"))
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the client IP from the request. chi's RealIP middleware
// has already applied X-Real-IP / X-Forwarded-For to RemoteAddr.
func ClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
