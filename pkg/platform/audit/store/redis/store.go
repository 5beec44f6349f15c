// Package redis keeps audit events in Redis sorted sets, one set per
// (group, type, action) selection, scored by the event time in microseconds.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	audit "lastproject/pkg/platform/audit"
)

const defaultKeyPrefix = "audit"

// Store implements audit.Store on top of a go-redis client.
//
// Members are prefixed with a zero-padded insertion sequence, so events with
// the same score come back in append order like the SQL stores.
type Store struct {
	client redis.Cmdable
	prefix string
	now    func() time.Time
}

// Option configures the Store.
type Option func(*Store)

// WithKeyPrefix namespaces all keys written and read by the store.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// New creates a Redis-backed audit store.
func New(client redis.Cmdable, opts ...Option) *Store {
	s := &Store{client: client, prefix: defaultKeyPrefix, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// seqWidth fits any uint64 sequence.
const seqWidth = 20

type member struct {
	Group     string `json:"group"`
	Type      string `json:"type"`
	Action    string `json:"action"`
	Name      string `json:"name"`
	Timestamp int64  `json:"ts"`
}

func (s *Store) key(group, typ, action string) string {
	return fmt.Sprintf("%s:%s:%s:%s", s.prefix, group, typ, action)
}

func (s *Store) seqKey() string {
	return s.prefix + ":seq"
}

func encodeMember(seq int64, payload []byte) string {
	return fmt.Sprintf("%0*d:%s", seqWidth, seq, payload)
}

func decodeMember(raw string) (member, error) {
	var m member
	seq, payload, ok := strings.Cut(raw, ":")
	if !ok {
		return m, fmt.Errorf("member %q has no sequence", raw)
	}
	if _, err := strconv.ParseInt(seq, 10, 64); err != nil {
		return m, fmt.Errorf("member sequence %q: %w", seq, err)
	}
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		return m, err
	}
	return m, nil
}

// Append adds the event to its selection's sorted set.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	payload, err := json.Marshal(member{
		Group:     event.Group,
		Type:      event.Type,
		Action:    event.Action,
		Name:      event.Name,
		Timestamp: event.Timestamp.UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	seq, err := s.client.Incr(ctx, s.seqKey()).Result()
	if err != nil {
		return fmt.Errorf("next audit sequence: %w", err)
	}
	err = s.client.ZAdd(ctx, s.key(event.Group, event.Type, event.Action), redis.Z{
		Score:  float64(event.Timestamp.UnixMicro()),
		Member: encodeMember(seq, payload),
	}).Err()
	if err != nil {
		return fmt.Errorf("zadd audit event: %w", err)
	}
	return nil
}

// FindEvents reads the selection's sorted set in the requested direction.
func (s *Store) FindEvents(ctx context.Context, q audit.Query) ([]audit.Event, error) {
	stop := int64(-1)
	if q.Limit > 0 {
		stop = int64(q.Limit) - 1
	}
	key := s.key(q.Group, q.Type, q.Action)

	var (
		raw []string
		err error
	)
	if q.MostRecentFirst {
		raw, err = s.client.ZRevRange(ctx, key, 0, stop).Result()
	} else {
		raw, err = s.client.ZRange(ctx, key, 0, stop).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("read audit events: %w", err)
	}

	events := make([]audit.Event, 0, len(raw))
	for _, r := range raw {
		m, err := decodeMember(r)
		if err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, audit.Event{
			Group:     m.Group,
			Type:      m.Type,
			Action:    m.Action,
			Name:      m.Name,
			Timestamp: time.Unix(0, m.Timestamp).UTC(),
		})
	}
	return events, nil
}
