package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	projectmodels "lastproject/internal/projects/models"
	"lastproject/internal/startup/metrics"
	"lastproject/internal/startup/models"
	"lastproject/internal/startup/ports"
	"lastproject/pkg/platform/audit"
	"lastproject/pkg/platform/sentinel"
	"lastproject/pkg/platform/variables"
)

// Type aliases for interfaces from ports package.
type (
	EventFinder         = ports.EventFinder
	ProjectRegistry     = ports.ProjectRegistry
	EnvironmentRegistry = ports.EnvironmentRegistry
	ProjectLoader       = ports.ProjectLoader
	ActivationSink      = ports.ActivationSink
	Host                = ports.Host
	ErrorPresenter      = ports.ErrorPresenter
	StartupResolver     = ports.StartupResolver
)

// Query sizes for audit history.
const (
	ProjectHistoryLimit     = 1
	EnvironmentHistoryLimit = 100
)

// Resolver picks the project and environment to restore at startup from the
// "open" audit trail. It only reads history and configuration.
type Resolver struct {
	projects     ProjectRegistry
	environments EnvironmentRegistry
	events       EventFinder
	loader       ProjectLoader
	logger       *slog.Logger
	metrics      *metrics.Metrics
	tracer       trace.Tracer
}

type Option func(*Resolver)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Resolver) {
		r.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(r *Resolver) {
		r.tracer = tracer
	}
}

func NewResolver(
	projects ProjectRegistry,
	environments EnvironmentRegistry,
	events EventFinder,
	loader ProjectLoader,
	opts ...Option,
) (*Resolver, error) {
	if projects == nil {
		return nil, errors.New("project registry is required")
	}
	if environments == nil {
		return nil, errors.New("environment registry is required")
	}
	if events == nil {
		return nil, errors.New("audit event finder is required")
	}
	if loader == nil {
		return nil, errors.New("project loader is required")
	}

	r := &Resolver{
		projects:     projects,
		environments: environments,
		events:       events,
		loader:       loader,
		logger:       slog.Default(),
		tracer:       otel.Tracer("lastproject/startup"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Resolve returns the project to activate, or nil when there is nothing to
// restore: the feature is off, there is no history and no default, or the
// last opened project is no longer configured.
func (r *Resolver) Resolve(ctx context.Context, vars *variables.Space) (*models.Resolution, error) {
	if vars == nil {
		vars = variables.New()
	}
	start := time.Now()
	ctx, span := r.tracer.Start(ctx, "startup.resolve")
	defer span.End()

	res, outcome, err := r.resolve(ctx, vars)
	r.metrics.IncrementOutcome(outcome)
	r.metrics.ObserveResolveLatency(time.Since(start))
	span.SetAttributes(attribute.String("startup.outcome", outcome))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if res != nil {
		span.SetAttributes(
			attribute.String("startup.project", res.ProjectName),
			attribute.String("startup.environment", res.EnvironmentName()),
		)
	}
	return res, nil
}

func (r *Resolver) resolve(ctx context.Context, vars *variables.Space) (*models.Resolution, string, error) {
	if !r.projects.IsEnabled(ctx) {
		return nil, metrics.OutcomeDisabled, nil
	}
	r.logger.InfoContext(ctx, "Projects enabled")

	projectName, outcome, err := r.lastProjectName(ctx)
	if err != nil {
		return nil, metrics.OutcomeFailed, err
	}
	if projectName == "" {
		r.logger.InfoContext(ctx, "no last project history")
		return nil, outcome, nil
	}

	cfg, err := r.projects.FindProjectConfig(ctx, projectName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			r.logger.InfoContext(ctx, "last project no longer configured",
				"project", projectName,
			)
			return nil, metrics.OutcomeProjectVanished, nil
		}
		return nil, metrics.OutcomeFailed, fmt.Errorf("find project config %q: %w", projectName, err)
	}

	project, err := r.loader.Load(ctx, cfg, vars)
	if err != nil {
		return nil, metrics.OutcomeFailed, fmt.Errorf("load project %q: %w", projectName, err)
	}
	r.logger.InfoContext(ctx, "Enabling project",
		"project", projectName,
	)

	env, err := r.lastEnvironment(ctx, projectName)
	if err != nil {
		return nil, metrics.OutcomeFailed, err
	}

	return &models.Resolution{
		ProjectName: projectName,
		Project:     project,
		Environment: env,
	}, metrics.OutcomeActivated, nil
}

// lastProjectName applies the history rule: the newest "open" event wins if
// its project is still configured. Only an empty history falls back to the
// configured default; a stale newest event yields "".
func (r *Resolver) lastProjectName(ctx context.Context) (string, string, error) {
	events, err := r.events.FindEvents(ctx, audit.OpenedProjects(ProjectHistoryLimit))
	if err != nil {
		return "", "", fmt.Errorf("find project audit events: %w", err)
	}
	r.logger.DebugContext(ctx, "project audit events found",
		"count", len(events),
	)

	if len(events) == 0 {
		name := r.projects.DefaultProject(ctx)
		if name == "" {
			return "", metrics.OutcomeNoHistory, nil
		}
		return name, "", nil
	}

	candidate := events[0].Name
	_, err = r.projects.FindProjectConfig(ctx, candidate)
	switch {
	case err == nil:
		return candidate, "", nil
	case errors.Is(err, sentinel.ErrNotFound):
		r.logger.InfoContext(ctx, "last opened project is stale",
			"project", candidate,
		)
		return "", metrics.OutcomeStaleProject, nil
	default:
		return "", "", fmt.Errorf("find project config %q: %w", candidate, err)
	}
}

// lastEnvironment scans recent environment "open" events newest first and
// returns the first one bound to projectName.
func (r *Resolver) lastEnvironment(ctx context.Context, projectName string) (*projectmodels.LifecycleEnvironment, error) {
	events, err := r.events.FindEvents(ctx, audit.OpenedEnvironments(EnvironmentHistoryLimit))
	if err != nil {
		return nil, fmt.Errorf("find environment audit events: %w", err)
	}

	for i, event := range events {
		env, err := r.environments.FindEnvironment(ctx, event.Name)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("find environment %q: %w", event.Name, err)
		}
		if env.BelongsTo(projectName) {
			r.metrics.ObserveEnvironmentScan(i + 1)
			return env, nil
		}
	}
	r.metrics.ObserveEnvironmentScan(len(events))
	return nil, nil
}
