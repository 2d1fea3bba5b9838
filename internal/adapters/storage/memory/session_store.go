// Package memory holds the process-lifetime state of the agent. Nothing here
// survives a restart; durable storage is out of scope for this service.
package memory

import (
	"sync"
	"time"

	"github.com/razeenr05/GenVis/internal/domain"
)

// SessionStore is the in-memory implementation of domain.SessionStore. One
// store exists per process; its id is derived from the start timestamp.
//
// The RWMutex serializes mutations from concurrent HTTP callers. The history
// is append-only and never pruned: unbounded growth over the process
// lifetime is an accepted tradeoff, not a leak to fix here.
type SessionStore struct {
	mu      sync.RWMutex
	id      string
	context map[domain.Workflow]domain.Payload
	history []domain.HistoryEntry
}

func NewSessionStore(startedAt time.Time) *SessionStore {
	return &SessionStore{
		id:      startedAt.Format("20060102_150405"),
		context: make(map[domain.Workflow]domain.Payload),
	}
}

func (s *SessionStore) ID() string {
	return s.id
}

// Record replaces the latest payload for the workflow and appends to the
// history. It is only called after a successful extraction; a failed
// workflow call never reaches this point, so prior state stays intact.
func (s *SessionStore) Record(workflow domain.Workflow, payload domain.Payload, at domain.Timestamp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.context[workflow] = payload
	s.history = append(s.history, domain.HistoryEntry{
		Timestamp: at,
		Workflow:  workflow,
		Data:      payload,
	})
	return nil
}

func (s *SessionStore) Latest(workflow domain.Workflow) (domain.Payload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.context[workflow]
	return payload, ok
}

// History returns a copy of the append-only log in call order.
func (s *SessionStore) History() []domain.HistoryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}
