package limiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitors struct {
	mu    sync.Mutex
	items map[string]*visitor
	limit rate.Limit
	burst int
	ttl   time.Duration
}

func newVisitors(rps int, burst int, ttl time.Duration) *visitors {
	return &visitors{
		items: make(map[string]*visitor),
		limit: rate.Limit(rps),
		burst: burst,
		ttl:   ttl,
	}
}

func (v *visitors) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	if item, ok := v.items[ip]; ok {
		item.lastSeen = time.Now()
		return item.limiter
	}

	l := rate.NewLimiter(v.limit, v.burst)
	v.items[ip] = &visitor{limiter: l, lastSeen: time.Now()}
	return l
}

// cleanup drops visitors not seen for longer than ttl.
func (v *visitors) cleanup() {
	for {
		time.Sleep(v.ttl)

		v.mu.Lock()
		for ip, item := range v.items {
			if time.Since(item.lastSeen) > v.ttl {
				delete(v.items, ip)
			}
		}
		v.mu.Unlock()
	}
}

// Limit is a per-client-IP token bucket: rps requests per second with bursts up to burst.
func Limit(rps int, burst int, ttl time.Duration) gin.HandlerFunc {
	v := newVisitors(rps, burst, ttl)
	go v.cleanup()

	return func(c *gin.Context) {
		if !v.get(c.ClientIP()).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}
