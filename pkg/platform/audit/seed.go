package audit

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Appender accepts new events.
type Appender interface {
	Append(ctx context.Context, event Event) error
}

// BatchAppender stores a list of events all or nothing.
type BatchAppender interface {
	AppendAll(ctx context.Context, events []Event) error
}

type seedEntry struct {
	Group     string    `yaml:"group"`
	Type      string    `yaml:"type"`
	Action    string    `yaml:"action"`
	Name      string    `yaml:"name"`
	Timestamp time.Time `yaml:"timestamp"`
}

// ParseSeed decodes a YAML list of events. Group defaults to the projects
// group and Action to "open"; Type accepts the short forms "project" and
// "environment".
func ParseSeed(data []byte) ([]Event, error) {
	var entries []seedEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode audit seed: %w", err)
	}
	events := make([]Event, 0, len(entries))
	for i, e := range entries {
		ev := Event{
			Group:     e.Group,
			Type:      e.Type,
			Action:    e.Action,
			Name:      e.Name,
			Timestamp: e.Timestamp,
		}
		if ev.Group == "" {
			ev.Group = GroupProjects
		}
		if ev.Action == "" {
			ev.Action = ActionOpen
		}
		switch ev.Type {
		case "project":
			ev.Type = TypeProject
		case "environment":
			ev.Type = TypeEnvironment
		}
		if err := ev.Validate(); err != nil {
			return nil, fmt.Errorf("audit seed entry #%d: %w", i+1, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// SeedFile appends every event from a YAML seed file in file order. Stores
// that implement BatchAppender receive the whole file in one batch.
func SeedFile(ctx context.Context, store Appender, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read audit seed: %w", err)
	}
	events, err := ParseSeed(data)
	if err != nil {
		return 0, err
	}
	if batch, ok := store.(BatchAppender); ok {
		if err := batch.AppendAll(ctx, events); err != nil {
			return 0, fmt.Errorf("append audit seed: %w", err)
		}
		return len(events), nil
	}
	for i, ev := range events {
		if err := store.Append(ctx, ev); err != nil {
			return i, fmt.Errorf("append seed event %q: %w", ev.Name, err)
		}
	}
	return len(events), nil
}
