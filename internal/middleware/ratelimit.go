package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bees/mediahub/internal/response"
)

const (
	limiterGCThreshold = 1000
	limiterIdleTTL     = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles each client to rpm requests per minute with a burst of rpm.
type RateLimiter struct {
	rpm     int
	mu      sync.Mutex
	clients map[string]*clientLimiter
}

// NewRateLimiter creates a limiter. rpm <= 0 disables limiting.
func NewRateLimiter(rpm int) *RateLimiter {
	return &RateLimiter{rpm: rpm, clients: map[string]*clientLimiter{}}
}

// Handler wraps next with the per-client limit.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	if l.rpm <= 0 {
		return next
	}
	retryAfter := strconv.Itoa(int(time.Minute / time.Second / time.Duration(l.rpm)))
	if retryAfter == "0" {
		retryAfter = "1"
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.get(clientIP(r)).Allow() {
			response.TooManyRequests(w, retryAfter)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, ok := l.clients[ip]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.rpm)), l.rpm)}
		l.clients[ip] = c
	}
	c.lastSeen = now
	l.gcLocked(now)
	return c.limiter
}

func (l *RateLimiter) gcLocked(now time.Time) {
	if len(l.clients) < limiterGCThreshold {
		return
	}
	cutoff := now.Add(-limiterIdleTTL)
	for ip, c := range l.clients {
		if c.lastSeen.Before(cutoff) {
			delete(l.clients, ip)
		}
	}
}

// clientIP prefers RemoteAddr, which chi's RealIP middleware has already
// rewritten from X-Forwarded-For / X-Real-IP.
func clientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
		return host
	}
	if addr == "" {
		return "unknown"
	}
	return addr
}
