package web

import (
	"sync"
	"time"

	"github.com/arcanaland/shuffledraw/internal/app"
	"github.com/arcanaland/shuffledraw/internal/draw"
	"github.com/google/uuid"
)

// session is one browser's view controller plus its last form values
type session struct {
	controller *app.Controller

	mu       sync.Mutex
	form     draw.Request
	lastSeen time.Time
}

func (s *session) Form() draw.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *session) SetForm(req draw.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = req
}

// SessionStore keeps sessions in memory and forgets idle ones
type SessionStore struct {
	sessions  map[string]*session
	mu        sync.RWMutex
	maxIdle   time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewSessionStore(maxIdle time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		maxIdle:  maxIdle,
		now:      time.Now,
	}
}

func (s *SessionStore) Get(sessionID string) (*session, bool) {
	s.mu.RLock()
	sess, exists := s.sessions[sessionID]
	s.mu.RUnlock()
	if !exists {
		return nil, false
	}
	sess.mu.Lock()
	sess.lastSeen = s.now()
	sess.mu.Unlock()
	return sess, true
}

// Create starts a session and periodically sweeps out idle ones
func (s *SessionStore) Create(drawer app.Drawer, form draw.Request) (string, *session) {
	sessionID := uuid.NewString()
	sess := &session{
		controller: app.NewController(drawer),
		form:       form,
		lastSeen:   s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.sessions[sessionID] = sess
	return sessionID, sess
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// sweepLocked drops idle sessions, at most once per maxIdle, so a session
// lives between maxIdle and twice that after its last use
func (s *SessionStore) sweepLocked() {
	if s.maxIdle <= 0 {
		return
	}
	now := s.now()
	if now.Sub(s.lastSweep) < s.maxIdle {
		return
	}
	s.lastSweep = now
	cutoff := now.Add(-s.maxIdle)
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
		}
	}
}
