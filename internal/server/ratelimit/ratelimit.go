// Package ratelimit provides per-client request rate limiting for the API.
package ratelimit

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// EndpointConfig is the rate limit for one endpoint. Path supports prefix
// matching when it ends with "/".
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns the limiter configuration for the API endpoints.
// Analysis and generation calls are expensive and get the tightest limits;
// reads fall under the default; health checks are never limited.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/v1/analyze", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
			{Path: "/v1/questions/generate", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
			{Path: "/v1/jobs/scrape", Method: "POST", Limit: 5, Window: time.Hour, Burst: 1},
		},
	}
}

// Info reports rate limit status to middleware so it can set response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type clientBucket struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// Limiter tracks a token bucket per client and endpoint.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket
	config  *Config
	ticker  *time.Ticker
	stop    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Limiter{
		buckets: make(map[string]*clientBucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.stop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow reports whether a request from clientID to the given endpoint may
// proceed, consuming a token when it does.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	cfg := l.match(path, method)
	if cfg.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + cfg.Path + ":" + method
	bucket := l.bucket(key, cfg)

	if !bucket.Allow() {
		res := bucket.Reserve()
		retry := res.Delay()
		res.Cancel()
		return false, Info{Limit: cfg.Limit, RetryAfter: retry}
	}

	return true, Info{
		Allowed:   true,
		Limit:     cfg.Limit,
		Remaining: int(bucket.Tokens()),
	}
}

// Stop stops the cleanup loop.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}

// match resolves the endpoint configuration for a request. Health checks are
// unlimited; unmatched paths use the default limit.
func (l *Limiter) match(path, method string) EndpointConfig {
	if path == "/health" && method == "GET" {
		return EndpointConfig{Path: path, Method: method, Limit: 0}
	}

	for _, cfg := range l.config.EndpointConfigs {
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return EndpointConfig{
		Path:   path,
		Method: method,
		Limit:  l.config.DefaultLimit,
		Window: l.config.DefaultWindow,
	}
}

func (l *Limiter) bucket(key string, cfg EndpointConfig) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		b.lastAccess = time.Now()
		return b.limiter
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Limit
	}
	b := &clientBucket{
		limiter:    rate.NewLimiter(rate.Limit(float64(cfg.Limit)/cfg.Window.Seconds()), burst),
		lastAccess: time.Now(),
	}
	l.buckets[key] = b
	return b.limiter
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.evictIdle()
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops buckets idle for over an hour so the map cannot grow
// without bound.
func (l *Limiter) evictIdle() {
	cutoff := time.Now().Add(-time.Hour)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
