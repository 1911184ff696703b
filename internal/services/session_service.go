package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gradientspace.dev/internal/view"
)

// ErrSessionNotFound is returned for an unknown or expired page session
var ErrSessionNotFound = errors.New("session not found")

// session owns the view state of one page session
type session struct {
	mu       sync.Mutex
	state    *view.State
	lastSeen atomic.Int64 // unix nanos
}

// SessionService keeps one view.State per page session in memory. Sessions
// idle for longer than the TTL are dropped by Sweep.
type SessionService struct {
	router  *view.Router
	catalog view.Catalog
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionService creates a new SessionService
func NewSessionService(router *view.Router, catalog view.Catalog, ttl time.Duration, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		router:   router,
		catalog:  catalog,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Create starts a new page session on the home tab and returns its ID
func (s *SessionService) Create() string {
	id := uuid.NewString()
	sess := &session{state: view.New(s.router, s.catalog)}
	sess.lastSeen.Store(s.now().UnixNano())

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.logger.Debug("page session created", zap.String("session", id))
	return id
}

// Exists reports whether id names a live session
func (s *SessionService) Exists(id string) bool {
	s.mu.RLock()
	_, ok := s.sessions[id]
	s.mu.RUnlock()
	return ok
}

// With runs fn with exclusive access to the session's view state
func (s *SessionService) With(id string, fn func(*view.State) error) error {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen.Store(s.now().UnixNano())
	return fn(sess.state)
}

// Snapshot returns a render copy of the session's view state
func (s *SessionService) Snapshot(id string) (view.Snapshot, error) {
	var snap view.Snapshot
	err := s.With(id, func(st *view.State) error {
		snap = st.Snapshot()
		return nil
	})
	return snap, err
}

// Count returns the number of live sessions
func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL and returns how many
func (s *SessionService) Sweep() int {
	cutoff := s.now().Add(-s.ttl).UnixNano()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Load() < cutoff {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is cancelled
func (s *SessionService) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Debug("expired page sessions", zap.Int("count", n), zap.Int("live", s.Count()))
			}
		}
	}
}
