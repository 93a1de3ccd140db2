// Package ratelimit throttles assessment-related actions with fixed-window
// counters. Counters live behind a small Store interface so a multi-instance
// deployment can swap the in-process map for a shared external store without
// touching call sites. The bundled MemoryStore is single-process: it does not
// coordinate across instances and resets on restart.
package ratelimit

import (
	"sync"
	"time"
)

// Store keeps per-key fixed-window counters.
type Store interface {
	// Incr bumps the counter for key, starting a fresh window of length d
	// when no window is active or the active one has elapsed, and returns
	// the count within the current window.
	Incr(key string, d time.Duration, now time.Time) int
	// Sweep evicts windows that elapsed before now.
	Sweep(now time.Time)
}

type window struct {
	count   int
	resetAt time.Time
}

// MemoryStore is the in-process Store.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]*window
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]*window)}
}

func (s *MemoryStore) Incr(key string, d time.Duration, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.windows[key]
	if w == nil || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(d)}
		s.windows[key] = w
	}
	w.count++
	return w.count
}

func (s *MemoryStore) Sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, w := range s.windows {
		if now.After(w.resetAt) {
			delete(s.windows, key)
		}
	}
}

// Len reports the number of live windows. Useful for sweep monitoring.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}

// Limiter answers allow/deny per key and periodically sweeps its store to
// bound memory.
type Limiter struct {
	store    Store
	stop     chan struct{}
	stopOnce sync.Once
}

type Option func(*limiterConfig)

type limiterConfig struct {
	sweepEvery time.Duration
}

// WithSweepInterval overrides the hourly sweep cadence.
func WithSweepInterval(d time.Duration) Option {
	return func(c *limiterConfig) { c.sweepEvery = d }
}

// New starts a Limiter over store. Callers must Stop it when done.
func New(store Store, opts ...Option) *Limiter {
	cfg := &limiterConfig{sweepEvery: time.Hour}
	for _, o := range opts {
		o(cfg)
	}
	l := &Limiter{store: store, stop: make(chan struct{})}
	go l.sweepLoop(cfg.sweepEvery)
	return l
}

// Allow records one action under key and reports whether it fits within max
// actions per window.
func (l *Limiter) Allow(key string, max int, windowDur time.Duration) bool {
	return l.store.Incr(key, windowDur, time.Now()) <= max
}

// Stop ends the sweep goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.store.Sweep(time.Now())
		case <-l.stop:
			return
		}
	}
}
