// Package draft holds the session-scoped quote draft store. The store is an
// explicit dependency rather than process-wide state so it can be swapped
// for a fake in tests.
package draft

import (
	"sync"

	"github.com/vetipro/quoteapi/internal/domain"
)

// Store persists one quote draft per session. There is a single writer per
// session (the owning client), so implementations only need to be safe for
// use across sessions. Drafts do not survive the process; losing unsubmitted
// drafts on restart is an accepted risk for this class of app.
type Store interface {
	Load(sessionID string) (*domain.QuoteDraft, bool)
	Save(sessionID string, draft *domain.QuoteDraft)
	Clear(sessionID string)
}

type memoryStore struct {
	mu     sync.RWMutex
	drafts map[string]*domain.QuoteDraft
}

// NewMemoryStore creates an in-memory draft store.
func NewMemoryStore() Store {
	return &memoryStore{
		drafts: make(map[string]*domain.QuoteDraft),
	}
}

func (s *memoryStore) Load(sessionID string) (*domain.QuoteDraft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[sessionID]
	return draft, ok
}

func (s *memoryStore) Save(sessionID string, draft *domain.QuoteDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = draft
}

func (s *memoryStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}
