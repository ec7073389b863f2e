package repositories

import (
	"sync"
	"time"
)

// ResetCode is a single-recipient password-reset code with an absolute
// expiry instant.
type ResetCode struct {
	Code      string
	ExpiresAt time.Time
}

// ResetCodeStore keeps at most one live code per recipient email. Issuing a
// new code replaces any prior unconsumed one. Deletion is explicit: a code
// survives verification until the password change consumes it.
type ResetCodeStore interface {
	Put(email, code string, expiresAt time.Time)
	Get(email string) (ResetCode, bool)
	Delete(email string)
}

type memoryResetCodeStore struct {
	mu    sync.Mutex
	codes map[string]ResetCode
}

func NewMemoryResetCodeStore() ResetCodeStore {
	return &memoryResetCodeStore{codes: make(map[string]ResetCode)}
}

func (s *memoryResetCodeStore) Put(email, code string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = ResetCode{Code: code, ExpiresAt: expiresAt}
}

func (s *memoryResetCodeStore) Get(email string) (ResetCode, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rc, ok := s.codes[email]
	return rc, ok
}

func (s *memoryResetCodeStore) Delete(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
}
