package audit

import "context"

// Finder is the read side of an audit store.
type Finder interface {
	FindEvents(ctx context.Context, query Query) ([]Event, error)
}

// Store is an append-only audit store. Only seeding and tooling append;
// startup resolution depends on Finder alone.
type Store interface {
	Finder
	Append(ctx context.Context, event Event) error
}
