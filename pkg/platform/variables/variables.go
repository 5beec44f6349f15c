// Package variables holds the name/value space that projects and environments
// are resolved against. References use the ${NAME} form; unknown references
// are left untouched so a later layer can still fill them in.
package variables

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Space is a concurrency-safe set of variables.
type Space struct {
	mu     sync.RWMutex
	values map[string]string
}

// New returns an empty Space.
func New() *Space {
	return &Space{values: make(map[string]string)}
}

// FromEnviron builds a Space from KEY=VALUE pairs such as os.Environ().
func FromEnviron(environ []string) *Space {
	s := New()
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		s.values[name] = value
	}
	return s
}

// LoadFile sets every entry of a flat YAML mapping file on s.
func (s *Space) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read variables file: %w", err)
	}
	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("decode variables file %s: %w", path, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, value := range values {
		if name = strings.TrimSpace(name); name != "" {
			s.values[name] = value
		}
	}
	return nil
}

// Get returns the raw value of name, or "" when unset.
func (s *Space) Get(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[name]
}

// Lookup returns the raw value of name and whether it is set.
func (s *Space) Lookup(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Set assigns value to name.
func (s *Space) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

// names returns the variable names in sorted order.
func (s *Space) names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns a copy of all variables.
func (s *Space) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Clone returns an independent copy of the space.
func (s *Space) Clone() *Space {
	return &Space{values: s.Snapshot()}
}

// Resolve substitutes every ${NAME} reference in text. Values are expanded
// recursively up to a fixed depth to stop self-referencing loops.
func (s *Space) Resolve(text string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(text, 0)
}

const maxDepth = 10

func (s *Space) resolve(text string, depth int) string {
	if depth >= maxDepth || !strings.Contains(text, "${") {
		return text
	}
	var b strings.Builder
	rest := text
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start+2:], '}')
		if end < 0 {
			b.WriteString(rest)
			break
		}
		end += start + 2
		b.WriteString(rest[:start])
		name := rest[start+2 : end]
		if value, ok := s.values[name]; ok {
			b.WriteString(s.resolve(value, depth+1))
		} else {
			b.WriteString(rest[start : end+1])
		}
		rest = rest[end+1:]
	}
	return b.String()
}
