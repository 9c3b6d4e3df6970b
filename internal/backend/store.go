package backend

import (
	"sync"
	"time"
)

type sessionRecord struct {
	CreatedAt time.Time
	Queries   []string
}

// MemoryStore keeps session history in memory. State does not survive a
// restart, which is fine for a dev tool.
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string]*sessionRecord
	maxQueries int
}

func NewMemoryStore(maxQueries int) *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string]*sessionRecord),
		maxQueries: maxQueries,
	}
}

func (m *MemoryStore) Create(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = &sessionRecord{CreatedAt: time.Now()}
}

func (m *MemoryStore) Exists(sessionID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[sessionID]
	return ok
}

// Record appends a query to the session's history, creating the session if
// the caller supplied an id the store has never seen.
func (m *MemoryStore) Record(sessionID, query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.sessions[sessionID]
	if !ok {
		rec = &sessionRecord{CreatedAt: time.Now()}
		m.sessions[sessionID] = rec
	}
	rec.Queries = append(rec.Queries, query)
	if m.maxQueries > 0 && len(rec.Queries) > m.maxQueries {
		rec.Queries = rec.Queries[len(rec.Queries)-m.maxQueries:]
	}
}

func (m *MemoryStore) History(sessionID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.sessions[sessionID]
	if !ok {
		return nil
	}
	out := make([]string, len(rec.Queries))
	copy(out, rec.Queries)
	return out
}
