package cart

import (
	"errors"
	"sync"
)

// ErrSubmissionInFlight is returned when an order submission is attempted
// while a previous one for the same session has not finished.
var ErrSubmissionInFlight = errors.New("an order submission is already in progress")

// Session owns one user's cart engine. Cart operations within a session are
// synchronous and non-overlapping; the mutex only guards against concurrent
// HTTP requests hitting the same session.
type Session struct {
	mu       sync.Mutex
	engine   *Engine
	inFlight bool
}

// Do runs fn against the session's engine while holding the session lock.
func (s *Session) Do(fn func(*Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.engine)
}

// DoErr is Do for operations that can fail (AddItem).
func (s *Session) DoErr(fn func(*Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.engine)
}

// BeginSubmission marks the session as having an outstanding order
// submission. At most one submission per cart may be in flight; a second
// attempt is rejected, never interleaved.
func (s *Session) BeginSubmission() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return ErrSubmissionInFlight
	}
	s.inFlight = true
	return nil
}

// EndSubmission releases the in-flight flag regardless of outcome.
func (s *Session) EndSubmission() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}

// Store hands out per-user cart sessions.
type Store struct {
	mu       sync.RWMutex
	pricing  Pricing
	sessions map[string]*Session
}

func NewStore(pricing Pricing) *Store {
	return &Store{
		pricing:  pricing,
		sessions: make(map[string]*Session),
	}
}

// Session returns the cart session for the given user, creating an empty one
// on first use.
func (st *Store) Session(userID string) *Session {
	st.mu.RLock()
	session, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return session
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if session, ok := st.sessions[userID]; ok {
		return session
	}
	session = &Session{engine: NewEngine(st.pricing)}
	st.sessions[userID] = session
	return session
}
