package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	audit "lastproject/pkg/platform/audit"
)

type InMemoryStore struct {
	mu     sync.RWMutex
	events []audit.Event
	now    func() time.Time
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{now: time.Now}
}

func (s *InMemoryStore) Append(_ context.Context, event audit.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// FindEvents returns matching events ordered by timestamp. Events sharing a
// timestamp keep append order, so the later append counts as more recent.
func (s *InMemoryStore) FindEvents(_ context.Context, query audit.Query) ([]audit.Event, error) {
	s.mu.RLock()
	var matched []audit.Event
	for _, e := range s.events {
		if query.Matches(e) {
			matched = append(matched, e)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.Before(matched[j].Timestamp)
	})
	if query.MostRecentFirst {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	if matched == nil {
		return []audit.Event{}, nil
	}
	return matched, nil
}

// Len returns the number of stored events across all groups.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
