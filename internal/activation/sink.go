// Package activation turns a startup resolution into the active runtime
// context: project and environment variables plus the metadata namespace.
package activation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	projectmodels "lastproject/internal/projects/models"
	"lastproject/internal/startup/models"
	"lastproject/internal/workspace"
	"lastproject/pkg/platform/sentinel"
	"lastproject/pkg/platform/variables"
)

// Variables set on activation.
const (
	VarProjectHome     = "PROJECT_HOME"
	VarMetadataFolder  = "HOP_METADATA_FOLDER"
	VarUnitTestsFolder = "HOP_UNIT_TESTS_FOLDER"
	VarDataSetsFolder  = "HOP_DATASETS_FOLDER"
	VarEnvironment     = "HOP_ENVIRONMENT"
)

// Target receives the fully built state.
type Target interface {
	Publish(ctx context.Context, active workspace.Active) error
}

// Sink applies a resolution. Nothing reaches the target unless every step
// succeeded.
type Sink struct {
	target   Target
	logger   *slog.Logger
	readFile func(string) ([]byte, error)
}

type Option func(*Sink)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Sink) {
		s.logger = logger
	}
}

func NewSink(target Target, opts ...Option) (*Sink, error) {
	if target == nil {
		return nil, errors.New("activation target is required")
	}
	s := &Sink{
		target:   target,
		logger:   slog.Default(),
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Activate builds the project scope on a copy of vars and publishes it under
// the project's namespace.
func (s *Sink) Activate(ctx context.Context, resolution *models.Resolution, vars *variables.Space) error {
	if resolution == nil || resolution.Project == nil {
		return fmt.Errorf("activate: empty resolution: %w", sentinel.ErrInvalidState)
	}
	if vars == nil {
		vars = variables.New()
	}
	project := resolution.Project
	scope := vars.Clone()

	scope.Set(VarProjectHome, project.Home)
	scope.Set(VarMetadataFolder, scope.Resolve(project.MetadataBaseFolder))
	scope.Set(VarUnitTestsFolder, scope.Resolve(project.UnitTestsBasePath))
	scope.Set(VarDataSetsFolder, scope.Resolve(project.DataSetsCSVFolder))
	applyVariables(scope, project.Variables)

	if env := resolution.Environment; env != nil {
		scope.Set(VarEnvironment, env.Name)
		for _, file := range env.ConfigurationFiles {
			path := scope.Resolve(file)
			declared, err := s.readConfigurationFile(path)
			if err != nil {
				return fmt.Errorf("environment %q: %w", env.Name, err)
			}
			applyVariables(scope, declared)
			s.logger.DebugContext(ctx, "environment configuration applied",
				"environment", env.Name,
				"file", path,
				"variables", len(declared),
			)
		}
	}

	active := workspace.Active{
		Namespace:   resolution.ProjectName,
		Project:     project,
		Environment: resolution.Environment,
		Variables:   scope.Snapshot(),
	}
	if err := s.target.Publish(ctx, active); err != nil {
		return fmt.Errorf("publish project %q: %w", resolution.ProjectName, err)
	}

	s.logger.InfoContext(ctx, "project activated",
		"project", resolution.ProjectName,
		"environment", resolution.EnvironmentName(),
		"project_home", project.Home,
	)
	return nil
}

type configurationFile struct {
	Variables []projectmodels.DescribedVariable `json:"variables"`
}

func (s *Sink) readConfigurationFile(path string) ([]projectmodels.DescribedVariable, error) {
	data, err := s.readFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file %s: %w", path, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("read configuration file %s: %w", path, err)
	}
	var cf configurationFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("decode configuration file %s: %w", path, err)
	}
	return cf.Variables, nil
}

func applyVariables(scope *variables.Space, declared []projectmodels.DescribedVariable) {
	for _, v := range declared {
		if v.Name == "" {
			continue
		}
		scope.Set(v.Name, v.Value)
	}
}
