package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure a Store.
type Options struct {
	// MaxCapacity bounds a single room's capacity. Zero means unbounded.
	MaxCapacity int
	// TTL is how long a session may stay idle before Sweep drops it. Zero disables expiry.
	TTL time.Duration
	// Now overrides the clock in tests.
	Now func() time.Time
}

// Store is an in-memory, concurrency-safe registry of sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	opts     Options
	logger   *zap.Logger
}

// NewStore creates an empty store.
func NewStore(opts Options, logger *zap.Logger) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		sessions: make(map[string]*Session),
		opts:     opts,
		logger:   logger,
	}
}

// Create registers a new empty session.
func (st *Store) Create() *Session {
	now := st.opts.Now()
	s := &Session{
		ID:          uuid.NewString(),
		CreatedAt:   now.UTC(),
		maxCapacity: st.opts.MaxCapacity,
		lastUsed:    now,
		now:         st.opts.Now,
	}

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given id.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete drops a session. Unknown ids are ignored.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many were dropped.
func (st *Store) Sweep(now time.Time) int {
	if st.opts.TTL <= 0 {
		return 0
	}
	st.mu.Lock()
	defer st.mu.Unlock()

	dropped := 0
	for id, s := range st.sessions {
		if now.Sub(s.idleSince()) > st.opts.TTL {
			delete(st.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Run sweeps every interval until ctx is done.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || st.opts.TTL <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(st.opts.Now()); n > 0 {
				st.logger.Info("session_sweep",
					zap.String("status", "success"),
					zap.Int("expired", n),
					zap.Int("remaining", st.Len()),
				)
			}
		}
	}
}
