package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is an authenticated employee session bound to the IP address that
// created it.
type Session struct {
	EmployeeID   string
	Token        string
	IPAddress    string
	CreatedAt    time.Time
	LastAccessAt time.Time
}

// Store holds employee sessions. Implementations are injected into handlers;
// there is no process-wide singleton.
type Store interface {
	Create(employeeID string, ipAddress string) (token string, err error)
	Validate(token string, ipAddress string) (*Session, bool)
	Remove(token string)
	RemoveEmployee(employeeID string)
	CleanupExpired() int
}

// Config bounds the in-memory store. TTL is an idle timeout refreshed on each
// validated access.
type Config struct {
	TTL         time.Duration
	MaxSessions int
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cfg      Config
	now      func() time.Time
}

func NewMemoryStore(cfg Config) Store {
	if cfg.TTL <= 0 {
		cfg.TTL = 8 * time.Hour
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1000
	}
	return &memoryStore{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		now:      time.Now,
	}
}

// Create registers a new session, replacing any existing sessions for the
// same employee so one employee holds at most one live token.
func (s *memoryStore) Create(employeeID string, ipAddress string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, sess := range s.sessions {
		if sess.EmployeeID == employeeID {
			delete(s.sessions, token)
		}
	}

	if len(s.sessions) >= s.cfg.MaxSessions {
		s.evictOldestLocked()
	}

	token := uuid.NewString()
	now := s.now()
	s.sessions[token] = &Session{
		EmployeeID:   employeeID,
		Token:        token,
		IPAddress:    ipAddress,
		CreatedAt:    now,
		LastAccessAt: now,
	}
	return token, nil
}

// Validate checks the token, enforces the idle timeout and the IP binding,
// and refreshes the last-access time on success. A mismatched IP invalidates
// the session outright.
func (s *memoryStore) Validate(token string, ipAddress string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, false
	}

	now := s.now()
	if now.Sub(sess.LastAccessAt) > s.cfg.TTL {
		delete(s.sessions, token)
		return nil, false
	}

	if sess.IPAddress != ipAddress {
		delete(s.sessions, token)
		return nil, false
	}

	sess.LastAccessAt = now
	copied := *sess
	return &copied, true
}

func (s *memoryStore) Remove(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *memoryStore) RemoveEmployee(employeeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, sess := range s.sessions {
		if sess.EmployeeID == employeeID {
			delete(s.sessions, token)
		}
	}
}

// CleanupExpired drops idle sessions and reports how many were removed.
func (s *memoryStore) CleanupExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for token, sess := range s.sessions {
		if now.Sub(sess.LastAccessAt) > s.cfg.TTL {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

func (s *memoryStore) evictOldestLocked() {
	var oldestToken string
	var oldest time.Time
	for token, sess := range s.sessions {
		if oldestToken == "" || sess.LastAccessAt.Before(oldest) {
			oldestToken = token
			oldest = sess.LastAccessAt
		}
	}
	if oldestToken != "" {
		delete(s.sessions, oldestToken)
	}
}
