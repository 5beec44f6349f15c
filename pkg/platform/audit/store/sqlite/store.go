// Package sqlite persists audit events in a local SQLite file, the usual
// backend for a single-user workstation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver

	audit "lastproject/pkg/platform/audit"
)

// Store implements audit.Store on a single audit_events table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates (if needed) and opens the SQLite database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "audit.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer at a time; sqlite serialises anyway.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS audit_events (
		id          TEXT PRIMARY KEY,
		grp         TEXT NOT NULL,
		type        TEXT NOT NULL,
		action      TEXT NOT NULL,
		name        TEXT NOT NULL,
		occurred_at INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create audit_events table: %w", err)
	}
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS audit_events_lookup
		ON audit_events (grp, type, action, occurred_at)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create audit_events index: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append inserts an audit event. Timestamps are stored as unix nanoseconds.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_events (id, grp, type, action, name, occurred_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		event.Group,
		event.Type,
		event.Action,
		event.Name,
		event.Timestamp.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// FindEvents returns matching events. Rows sharing a timestamp are ordered by
// rowid, so the later insert counts as more recent.
func (s *Store) FindEvents(ctx context.Context, q audit.Query) ([]audit.Event, error) {
	order := "occurred_at ASC, rowid ASC"
	if q.MostRecentFirst {
		order = "occurred_at DESC, rowid DESC"
	}
	// A negative LIMIT means no limit in SQLite.
	limit := -1
	if q.Limit > 0 {
		limit = q.Limit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT grp, type, action, name, occurred_at
		FROM audit_events
		WHERE grp = ? AND type = ? AND action = ?
		ORDER BY `+order+`
		LIMIT ?`,
		q.Group, q.Type, q.Action, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query audit events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := []audit.Event{}
	for rows.Next() {
		var (
			event audit.Event
			nanos int64
		)
		if err := rows.Scan(&event.Group, &event.Type, &event.Action, &event.Name, &nanos); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		event.Timestamp = time.Unix(0, nanos).UTC()
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}
