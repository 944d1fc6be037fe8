package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zenora/zenora-api/internal/pkg/metrics"
)

// DefaultSessionTTL is how long an untouched session is kept
const DefaultSessionTTL = 30 * time.Minute

// Session is one page visit's dialog
type Session struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	Controller *Controller

	lastSeen time.Time
}

// SessionStore keeps wizard sessions in memory and drops idle ones
type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	factory  func() *Controller
	metrics  *metrics.Metrics
	now      func() time.Time

	stopCh    chan struct{}
	doneCh    chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
	running   bool
}

// NewSessionStore creates a store building controllers with factory
func NewSessionStore(ttl time.Duration, factory func() *Controller, m *metrics.Metrics) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		factory:  factory,
		metrics:  m,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the janitor that sweeps idle sessions
func (s *SessionStore) Start() {
	s.startOnce.Do(func() {
		s.mu.Lock()
		s.running = true
		s.mu.Unlock()
		log.Info().Dur("ttl", s.ttl).Msg("Starting wizard session janitor")
		go s.loop()
	})
}

func (s *SessionStore) loop() {
	defer close(s.doneCh)

	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Debug().Int("expired", n).Msg("Expired idle wizard sessions")
			}
		case <-s.stopCh:
			return
		}
	}
}

// Close stops the janitor and closes every session's dialog
func (s *SessionStore) Close() {
	s.stopOnce.Do(func() {
		close(s.stopCh)

		s.mu.Lock()
		running := s.running
		s.mu.Unlock()
		if running {
			<-s.doneCh
		}

		s.mu.Lock()
		sessions := make([]*Session, 0, len(s.sessions))
		for id, sess := range s.sessions {
			sessions = append(sessions, sess)
			delete(s.sessions, id)
		}
		s.mu.Unlock()

		for _, sess := range sessions {
			sess.Controller.Close()
		}
		s.metrics.SetActiveSessions(0)
	})
}

// Create registers a new closed session
func (s *SessionStore) Create() *Session {
	now := s.now()
	sess := &Session{
		ID:         uuid.New(),
		CreatedAt:  now,
		Controller: s.factory(),
		lastSeen:   now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	n := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(n)
	return sess
}

// Get returns a live session and marks it as used
func (s *SessionStore) Get(id uuid.UUID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return sess, nil
}

// Delete closes the session's dialog and forgets it
func (s *SessionStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	sess.Controller.Close()
	s.metrics.SetActiveSessions(n)
	return nil
}

// Sweep removes sessions idle longer than the TTL and returns how many
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if s.expired(sess) {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Controller.Close()
	}
	s.metrics.SetActiveSessions(n)
	return len(expired)
}

// Len returns the number of stored sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) expired(sess *Session) bool {
	return s.now().Sub(sess.lastSeen) > s.ttl
}
