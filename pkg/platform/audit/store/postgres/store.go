package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	audit "lastproject/pkg/platform/audit"
	txcontext "lastproject/pkg/platform/tx"
)

// Store implements audit.Store on a PostgreSQL audit_events table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new PostgreSQL audit store.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

var schema = []string{`
	CREATE TABLE IF NOT EXISTS audit_events (
		id          UUID PRIMARY KEY,
		seq         BIGSERIAL,
		grp         TEXT NOT NULL,
		type        TEXT NOT NULL,
		action      TEXT NOT NULL,
		name        TEXT NOT NULL,
		occurred_at TIMESTAMPTZ NOT NULL
	)`, `
	CREATE INDEX IF NOT EXISTS audit_events_lookup
		ON audit_events (grp, type, action, occurred_at DESC, seq DESC)`,
}

// EnsureSchema creates the audit_events table and its lookup index.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create audit schema: %w", err)
		}
	}
	return nil
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// Append inserts an audit event. A transaction carried in ctx is used when present.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}

	query := `
		INSERT INTO audit_events (id, grp, type, action, name, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.New(),
		event.Group,
		event.Type,
		event.Action,
		event.Name,
		event.Timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// AppendAll inserts a batch of events atomically.
func (s *Store) AppendAll(ctx context.Context, events []audit.Event) error {
	return txcontext.Run(ctx, s.db, func(ctx context.Context) error {
		for i, event := range events {
			if err := s.Append(ctx, event); err != nil {
				return fmt.Errorf("append event %d: %w", i, err)
			}
		}
		return nil
	})
}

// FindEvents returns matching events. Rows sharing a timestamp are ordered by
// insertion sequence, so the later insert counts as more recent.
func (s *Store) FindEvents(ctx context.Context, q audit.Query) ([]audit.Event, error) {
	order := "occurred_at ASC, seq ASC"
	if q.MostRecentFirst {
		order = "occurred_at DESC, seq DESC"
	}
	// LIMIT NULL is LIMIT ALL in PostgreSQL.
	var limit any
	if q.Limit > 0 {
		limit = q.Limit
	}

	query := `
		SELECT grp, type, action, name, occurred_at
		FROM audit_events
		WHERE grp = $1 AND type = $2 AND action = $3
		ORDER BY ` + order + `
		LIMIT $4
	`
	rows, err := s.db.QueryContext(ctx, query, q.Group, q.Type, q.Action, limit)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]audit.Event, error) {
	events := []audit.Event{}
	for rows.Next() {
		var event audit.Event
		if err := rows.Scan(
			&event.Group,
			&event.Type,
			&event.Action,
			&event.Name,
			&event.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
