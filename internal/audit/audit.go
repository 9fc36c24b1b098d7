// Package audit records the case-lifecycle actions this service performs
// against the external store, append-only, so a scanned submission's path
// can be reconstructed later.
package audit

import (
	"context"
	"sync"
	"time"
)

// Actions recorded by the orchestrator.
const (
	ActionCaseCreated    = "case_created"
	ActionDuplicateFound = "duplicate_found"
	ActionCasesLinked    = "cases_linked"
	ActionCaseUpdated    = "case_updated"
)

// Event captures one action taken for an exception record. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	RecordID  string
	CaseID    string
	Action    string
	EventID   string
	Detail    string
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// MemoryStore keeps events in memory; tests and single-node deployments
// use it as the default sink.
type MemoryStore struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a copy of everything appended so far.
func (s *MemoryStore) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
