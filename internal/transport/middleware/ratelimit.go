package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Immonkei/Backend-Mobile-MAD/pkg/ctxutil"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter hands out per-client token buckets. Authenticated callers are
// keyed by user id, anonymous ones by remote IP.
type RateLimiter struct {
	mu   sync.Mutex
	sets []*limiterSet
	stop chan struct{}
}

type limiterSet struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*client
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware allowing perMinute requests per client with the
// given burst. A burst <= 0 allows a full minute's worth at once. Each call
// tracks its clients separately, so route groups do not share budgets.
func (rl *RateLimiter) Limit(perMinute, burst int) Middleware {
	if burst <= 0 {
		burst = perMinute
	}
	set := &limiterSet{
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   burst,
		clients: make(map[string]*client),
	}

	rl.mu.Lock()
	rl.sets = append(rl.sets, set)
	rl.mu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := set.get(clientKey(r)).Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *limiterSet) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

func (s *limiterSet) evictIdle(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, c := range s.clients {
		if now.Sub(c.lastSeen) > limiterIdleTTL {
			delete(s.clients, key)
		}
	}
}

func clientKey(r *http.Request) string {
	if id, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + id.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.mu.Lock()
			sets := rl.sets
			rl.mu.Unlock()

			now := time.Now()
			for _, s := range sets {
				s.evictIdle(now)
			}
		}
	}
}
