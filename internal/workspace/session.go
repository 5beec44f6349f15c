// Package workspace holds the host application's runtime state: the active
// project and environment, the published variables and the startup flags.
package workspace

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lastproject/internal/projects/models"
)

// Active is what an activation publishes in one step.
type Active struct {
	Namespace   string
	Project     *models.Project
	Environment *models.LifecycleEnvironment
	Variables   map[string]string
}

// StartupError records the last failure presented to the user. The
// underlying error is only logged.
type StartupError struct {
	Title   string
	Message string
	At      time.Time
}

// Snapshot is a point-in-time copy of the session.
type Snapshot struct {
	Namespace        string
	ProjectName      string
	ProjectHome      string
	EnvironmentName  string
	OpeningLastFiles bool
	ActivatedAt      time.Time
	Variables        map[string]string
	Error            *StartupError
}

// Session is safe for concurrent use. Writes happen on the startup path,
// reads come from the status handler.
type Session struct {
	mu               sync.RWMutex
	openingLastFiles bool
	active           Active
	activatedAt      time.Time
	lastError        *StartupError
	logger           *slog.Logger
	now              func() time.Time
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New returns a session that reopens last files until told otherwise.
func New(opts ...Option) *Session {
	s := &Session{
		openingLastFiles: true,
		logger:           slog.Default(),
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetOpeningLastFiles controls whether the host reopens the files of the
// previous session.
func (s *Session) SetOpeningLastFiles(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openingLastFiles = open
}

func (s *Session) OpeningLastFiles() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.openingLastFiles
}

// Publish replaces the active state and stamps it with the session clock.
func (s *Session) Publish(ctx context.Context, active Active) error {
	vars := make(map[string]string, len(active.Variables))
	for k, v := range active.Variables {
		vars[k] = v
	}
	active.Variables = vars

	s.mu.Lock()
	s.active = active
	s.activatedAt = s.now()
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "namespace switched",
		"namespace", active.Namespace,
		"variables", len(vars),
	)
	return nil
}

// PresentError logs the failure and keeps it for the status endpoint.
func (s *Session) PresentError(ctx context.Context, title, message string, err error) {
	s.mu.Lock()
	s.lastError = &StartupError{
		Title:   title,
		Message: message,
		At:      s.now(),
	}
	s.mu.Unlock()

	s.logger.ErrorContext(ctx, message,
		"title", title,
		"error", err,
	)
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Namespace:        s.active.Namespace,
		OpeningLastFiles: s.openingLastFiles,
		ActivatedAt:      s.activatedAt,
		Variables:        make(map[string]string, len(s.active.Variables)),
	}
	for k, v := range s.active.Variables {
		snap.Variables[k] = v
	}
	if s.active.Project != nil {
		snap.ProjectName = s.active.Project.Name
		snap.ProjectHome = s.active.Project.Home
	}
	if s.active.Environment != nil {
		snap.EnvironmentName = s.active.Environment.Name
	}
	if s.lastError != nil {
		e := *s.lastError
		snap.Error = &e
	}
	return snap
}
