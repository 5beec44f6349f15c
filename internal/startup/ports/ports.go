// Package ports defines the interfaces the startup resolver and launcher
// consume. Concrete implementations live in the projects, activation and
// workspace packages and in pkg/platform/audit/store.
package ports

import (
	"context"

	projectmodels "lastproject/internal/projects/models"
	"lastproject/internal/startup/models"
	"lastproject/pkg/platform/audit"
	"lastproject/pkg/platform/variables"
)

// EventFinder reads audit history. Resolution never writes to it.
type EventFinder interface {
	FindEvents(ctx context.Context, query audit.Query) ([]audit.Event, error)
}

// ProjectRegistry exposes configured projects.
type ProjectRegistry interface {
	// IsEnabled reports whether the projects system is switched on.
	IsEnabled(ctx context.Context) bool

	// DefaultProject returns the configured default project name, possibly "".
	DefaultProject(ctx context.Context) string

	// FindProjectConfig returns sentinel.ErrNotFound (wrapped) for unknown names.
	FindProjectConfig(ctx context.Context, name string) (*projectmodels.ProjectConfig, error)
}

// EnvironmentRegistry exposes configured lifecycle environments.
type EnvironmentRegistry interface {
	// FindEnvironment returns sentinel.ErrNotFound (wrapped) for unknown names.
	FindEnvironment(ctx context.Context, name string) (*projectmodels.LifecycleEnvironment, error)
}

// ProjectLoader materializes a project from its configuration.
type ProjectLoader interface {
	Load(ctx context.Context, cfg *projectmodels.ProjectConfig, vars *variables.Space) (*projectmodels.Project, error)
}

// StartupResolver selects what to restore at startup. A nil resolution with a
// nil error means there is nothing to activate.
type StartupResolver interface {
	Resolve(ctx context.Context, vars *variables.Space) (*models.Resolution, error)
}

// ActivationSink makes a resolution the active runtime context.
type ActivationSink interface {
	Activate(ctx context.Context, resolution *models.Resolution, vars *variables.Space) error
}

// Host is the application shell the launcher reports back to.
type Host interface {
	SetOpeningLastFiles(open bool)
}

// ErrorPresenter shows a startup failure to the user.
type ErrorPresenter interface {
	PresentError(ctx context.Context, title, message string, err error)
}
