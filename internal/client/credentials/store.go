package credentials

import (
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/gamestack/internal/client/models"
)

var ErrRequiresAuthentication = errors.New("authentication required")

// Snapshot is a consistent copy of the store taken under its read lock.
type Snapshot struct {
	Session     *models.Session
	Token       *models.Token
	TokenExpiry time.Time
	// Generation changes on every login and on Clear.
	Generation uint64
}

// LoggedIn reports whether both the session and the token are valid at now.
func (s Snapshot) LoggedIn(now time.Time) bool {
	if s.Session == nil || s.Token == nil {
		return false
	}
	return !s.Session.Expired(now) && now.Before(s.TokenExpiry)
}

type Option func(*Store)

// WithNowFunc overrides the clock used to compute token expiry.
func WithNowFunc(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is safe for concurrent use.
type Store struct {
	mu          sync.RWMutex
	session     *models.Session
	token       *models.Token
	tokenExpiry time.Time
	generation  uint64
	now         func() time.Time
}

func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) Read() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Write stores token and, when session is non-nil, replaces the session.
// The token expiry is fixed here as now + token.ExpiresIn.
func (s *Store) Write(session *models.Session, token models.Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session != nil {
		cp := *session
		s.session = &cp
		s.generation++
	}
	s.writeTokenLocked(token)
}

// WriteRefreshed behaves like Write but only if the store is still at
// generation gen. It returns false when a login or Clear happened since the
// refresh started.
func (s *Store) WriteRefreshed(gen uint64, session *models.Session, token models.Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen || s.session == nil {
		return false
	}
	if session != nil {
		cp := *session
		s.session = &cp
	}
	s.writeTokenLocked(token)
	return true
}

// Clear drops the session and token together.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	s.token = nil
	s.tokenExpiry = time.Time{}
	s.generation++
}

func (s *Store) writeTokenLocked(token models.Token) {
	s.token = &token
	s.tokenExpiry = s.now().Add(token.Lifetime())
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{TokenExpiry: s.tokenExpiry, Generation: s.generation}
	if s.session != nil {
		cp := *s.session
		snap.Session = &cp
	}
	if s.token != nil {
		cp := *s.token
		snap.Token = &cp
	}
	return snap
}
