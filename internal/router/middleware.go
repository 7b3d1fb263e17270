package router

import (
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"skinkit/internal/theme"
)

type contextKey string

const (
	sessionIdentityKey contextKey = "skinkit.identity"
	sessionMetadataKey contextKey = "skinkit.session"
)

// Descriptor names one middleware so the chain can be logged and tested.
type Descriptor struct {
	Name       string
	Middleware wish.Middleware
}

// Identity is what username routing resolved for a session.
type Identity struct {
	Username string
	Variant  theme.Variant
	// Matched is false when the username named no variant and the
	// default was used.
	Matched bool
}

// SessionInfo is the per-session metadata handed to the preview.
type SessionInfo struct {
	Identity  Identity
	RemoteIP  string
	Term      string
	Width     int
	Height    int
	StartedAt time.Time
}

// DefaultChain wires the middleware chain in execution order: rate
// limiting, username routing, then session metadata.
func DefaultChain(limitPerMinute, burst int, defaultVariant theme.Variant, logger *log.Logger) []Descriptor {
	if logger == nil {
		logger = log.Default()
	}
	return []Descriptor{
		{Name: "rate-limit", Middleware: RateLimitMiddleware(NewLimiter(limitPerMinute, burst), logger)},
		{Name: "username-routing", Middleware: usernameRouting(defaultVariant)},
		{Name: "session-metadata", Middleware: sessionMetadata()},
	}
}

// MiddlewareFromDescriptors returns the chain in the order wish.WithMiddleware
// expects. wish composes first to last, so the last entry runs first; the
// chain is reversed to keep chain[0] outermost.
func MiddlewareFromDescriptors(chain []Descriptor) []wish.Middleware {
	out := make([]wish.Middleware, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Middleware != nil {
			out = append(out, chain[i].Middleware)
		}
	}
	return out
}

// VariantForUser maps an SSH username to a skin variant. Only exact,
// lower-case variant names match.
func VariantForUser(user string, def theme.Variant) (theme.Variant, bool) {
	for _, v := range theme.Variants() {
		if user == string(v) {
			return v, true
		}
	}
	return def, false
}

func usernameRouting(def theme.Variant) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			v, ok := VariantForUser(s.User(), def)
			s.Context().SetValue(sessionIdentityKey, Identity{Username: s.User(), Variant: v, Matched: ok})
			next(s)
		}
	}
}

func sessionMetadata() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			info := SessionInfo{RemoteIP: remoteIP(s), StartedAt: time.Now().UTC()}
			if id, ok := s.Context().Value(sessionIdentityKey).(Identity); ok {
				info.Identity = id
			}
			if pty, _, ok := s.Pty(); ok {
				info.Term = pty.Term
				info.Width = pty.Window.Width
				info.Height = pty.Window.Height
			}
			s.Context().SetValue(sessionMetadataKey, info)
			next(s)
		}
	}
}

// IdentityFrom returns the identity username routing stored for s.
func IdentityFrom(s ssh.Session) (Identity, bool) {
	id, ok := s.Context().Value(sessionIdentityKey).(Identity)
	return id, ok
}

// SessionInfoFrom returns the metadata stored for s.
func SessionInfoFrom(s ssh.Session) (SessionInfo, bool) {
	info, ok := s.Context().Value(sessionMetadataKey).(SessionInfo)
	return info, ok
}

type ipBucket struct {
	tokens float64
	last   time.Time
}

// Limiter is a per-IP token bucket.
type Limiter struct {
	mu            sync.Mutex
	ratePerSecond float64
	burst         float64
	buckets       map[string]ipBucket
}

// NewLimiter refills limitPerMinute tokens per minute up to burst.
func NewLimiter(limitPerMinute, burst int) *Limiter {
	if limitPerMinute <= 0 {
		limitPerMinute = 30
	}
	if burst <= 0 {
		burst = 10
	}
	return &Limiter{
		ratePerSecond: float64(limitPerMinute) / 60.0,
		burst:         float64(burst),
		buckets:       make(map[string]ipBucket),
	}
}

// Allow takes one token for ip at now.
func (l *Limiter) Allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket := l.buckets[ip]
	if bucket.last.IsZero() {
		bucket = ipBucket{tokens: l.burst, last: now}
	}

	elapsed := now.Sub(bucket.last).Seconds()
	if elapsed > 0 {
		bucket.tokens += elapsed * l.ratePerSecond
		if bucket.tokens > l.burst {
			bucket.tokens = l.burst
		}
		bucket.last = now
	}

	if bucket.tokens < 1 {
		l.buckets[ip] = bucket
		return false
	}

	bucket.tokens--
	l.buckets[ip] = bucket
	return true
}

// RateLimitMiddleware rejects sessions whose remote IP ran out of tokens.
func RateLimitMiddleware(limiter *Limiter, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			now := time.Now().UTC()
			ip := remoteIP(s)
			if !limiter.Allow(ip, now) {
				logger.Warn("rate limit throttled", "remote_ip", ip)
				_, _ = s.Write([]byte("rate limit exceeded\n"))
				return
			}
			next(s)
		}
	}
}

func remoteIP(s ssh.Session) string {
	remote := s.RemoteAddr()
	if remote == nil {
		return "unknown"
	}

	host, _, err := net.SplitHostPort(remote.String())
	if err != nil {
		return remote.String()
	}

	if host == "" {
		return "unknown"
	}
	return host
}
