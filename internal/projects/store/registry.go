package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"lastproject/internal/projects/models"
	"lastproject/pkg/platform/sentinel"
	pstrings "lastproject/pkg/platform/strings"
)

// Registry is the read-only view of configured projects and environments.
// It is built once from configuration and never mutated afterwards, so it
// needs no locking.
type Registry struct {
	enabled        bool
	defaultProject string
	projects       []models.ProjectConfig
	environments   []models.LifecycleEnvironment
	projectIndex   map[string]int
	envIndex       map[string]int
}

// LoadFile reads a YAML registry file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("projects config %s: %w", path, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("read projects config: %w", err)
	}
	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("projects config %s: %w", path, err)
	}
	return reg, nil
}

// Parse decodes YAML registry content.
func Parse(data []byte) (*Registry, error) {
	var cfg models.ProjectsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", errors.Join(sentinel.ErrInvalidState, err))
	}
	return New(cfg)
}

// New validates cfg and builds a Registry from it. Environments may name
// projects that are not configured; such references are kept and simply never
// match at resolution time.
func New(cfg models.ProjectsConfig) (*Registry, error) {
	r := &Registry{
		enabled:        cfg.IsEnabled(),
		defaultProject: strings.TrimSpace(cfg.DefaultProject),
		projectIndex:   make(map[string]int, len(cfg.Projects)),
		envIndex:       make(map[string]int, len(cfg.Environments)),
	}

	if dups := duplicateNames(len(cfg.Projects), func(i int) string { return cfg.Projects[i].Name }); len(dups) > 0 {
		return nil, fmt.Errorf("projects defined more than once: %s: %w", strings.Join(dups, ", "), sentinel.ErrConflict)
	}
	if dups := duplicateNames(len(cfg.Environments), func(i int) string { return cfg.Environments[i].Name }); len(dups) > 0 {
		return nil, fmt.Errorf("environments defined more than once: %s: %w", strings.Join(dups, ", "), sentinel.ErrConflict)
	}

	for i, p := range cfg.Projects {
		p.Name = strings.TrimSpace(p.Name)
		p.Home = strings.TrimSpace(p.Home)
		p.ConfigFilename = strings.TrimSpace(p.ConfigFilename)
		if p.Name == "" {
			return nil, fmt.Errorf("project #%d has no name: %w", i+1, sentinel.ErrInvalidState)
		}
		if p.Home == "" {
			return nil, fmt.Errorf("project %q has no home: %w", p.Name, sentinel.ErrInvalidState)
		}
		r.projectIndex[p.Name] = len(r.projects)
		r.projects = append(r.projects, p)
	}

	for i, e := range cfg.Environments {
		e.Name = strings.TrimSpace(e.Name)
		e.ProjectName = strings.TrimSpace(e.ProjectName)
		e.Purpose = strings.TrimSpace(e.Purpose)
		e.ConfigurationFiles = pstrings.DedupeAndTrim(e.ConfigurationFiles)
		if e.Name == "" {
			return nil, fmt.Errorf("environment #%d has no name: %w", i+1, sentinel.ErrInvalidState)
		}
		if e.ProjectName == "" {
			return nil, fmt.Errorf("environment %q has no project: %w", e.Name, sentinel.ErrInvalidState)
		}
		r.envIndex[e.Name] = len(r.environments)
		r.environments = append(r.environments, e)
	}

	return r, nil
}

func duplicateNames(n int, name func(int) string) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if trimmed := strings.TrimSpace(name(i)); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return pstrings.Duplicates(names)
}

// IsEnabled reports whether the projects system is switched on.
func (r *Registry) IsEnabled(_ context.Context) bool {
	return r.enabled
}

// DefaultProject returns the configured default project name, possibly "".
func (r *Registry) DefaultProject(_ context.Context) string {
	return r.defaultProject
}

// FindProjectConfig returns a copy of the named project's config.
func (r *Registry) FindProjectConfig(_ context.Context, name string) (*models.ProjectConfig, error) {
	i, ok := r.projectIndex[name]
	if !ok {
		return nil, fmt.Errorf("project %q: %w", name, sentinel.ErrNotFound)
	}
	p := r.projects[i]
	return &p, nil
}

// FindEnvironment returns a copy of the named environment.
func (r *Registry) FindEnvironment(_ context.Context, name string) (*models.LifecycleEnvironment, error) {
	i, ok := r.envIndex[name]
	if !ok {
		return nil, fmt.Errorf("environment %q: %w", name, sentinel.ErrNotFound)
	}
	e := r.environments[i]
	e.ConfigurationFiles = append([]string(nil), e.ConfigurationFiles...)
	return &e, nil
}

// ListProjects returns all projects in configuration order.
func (r *Registry) ListProjects(_ context.Context) []models.ProjectConfig {
	return append([]models.ProjectConfig(nil), r.projects...)
}

// ListEnvironments returns all environments in configuration order.
func (r *Registry) ListEnvironments(_ context.Context) []models.LifecycleEnvironment {
	out := make([]models.LifecycleEnvironment, len(r.environments))
	for i, e := range r.environments {
		e.ConfigurationFiles = append([]string(nil), e.ConfigurationFiles...)
		out[i] = e
	}
	return out
}
