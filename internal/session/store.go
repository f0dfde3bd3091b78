package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/skt-storefront/pkg/logger"
	"github.com/angelmondragon/skt-storefront/pkg/metrics"
)

const (
	DefaultTTL           = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// StoreConfig wires a Store. Zero durations fall back to the defaults.
type StoreConfig struct {
	Options       Options
	TTL           time.Duration
	SweepInterval time.Duration
	Logger        *logger.Logger
	Metrics       *metrics.Storefront
	Now           func() time.Time
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// Store keeps sessions in memory until they sit idle past the TTL.
type Store struct {
	opts  Options
	ttl   time.Duration
	sweep time.Duration
	logg  *logger.Logger
	stats *metrics.Storefront
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

func NewStore(cfg StoreConfig) *Store {
	s := &Store{
		opts:     cfg.Options.withDefaults(),
		ttl:      cfg.TTL,
		sweep:    cfg.SweepInterval,
		logg:     cfg.Logger,
		stats:    cfg.Metrics,
		now:      cfg.Now,
		sessions: make(map[string]*entry),
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.sweep <= 0 {
		s.sweep = DefaultSweepInterval
	}
	if s.logg == nil {
		s.logg = logger.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Create issues a session under a fresh uuid.
func (s *Store) Create() *Session {
	sess := New(uuid.NewString(), s.opts)

	s.mu.Lock()
	s.sessions[sess.ID()] = &entry{session: sess, lastSeen: s.now()}
	n := len(s.sessions)
	s.mu.Unlock()

	s.stats.SetSessions(n)
	return sess
}

// Get returns a live session and marks it as seen. Sessions idle past the
// TTL are treated as gone even before the sweeper removes them.
func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		return nil, false
	}
	e.lastSeen = now
	return e.session, true
}

// Resolve returns the session for id, issuing a new one when id is blank,
// unknown or expired. created reports whether a new session was issued.
func (s *Store) Resolve(id string) (sess *Session, created bool) {
	if sess, ok := s.Get(id); ok {
		return sess, false
	}
	return s.Create(), true
}

// Delete ends a session and stops its timers.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return false
	}
	e.session.Close()
	s.stats.SetSessions(n)
	return true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops every session idle past the TTL and returns how many went.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	var expired []*Session
	for id, e := range s.sessions {
		if now.Sub(e.lastSeen) > s.ttl {
			expired = append(expired, e.session)
			delete(s.sessions, id)
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Close()
	}
	if len(expired) > 0 {
		s.stats.SetSessions(n)
	}
	return len(expired)
}

// Run sweeps on every interval until ctx is done. It returns ctx.Err().
func (s *Store) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logCtx := s.logg.WithFields(ctx, map[string]any{
					"expired":  n,
					"sessions": s.Len(),
				})
				s.logg.Info(logCtx, "expired idle sessions")
			}
		}
	}
}

// Close ends every session. The store stays usable.
func (s *Store) Close() {
	s.mu.Lock()
	all := make([]*Session, 0, len(s.sessions))
	for id, e := range s.sessions {
		all = append(all, e.session)
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	for _, sess := range all {
		sess.Close()
	}
	s.stats.SetSessions(0)
}
