package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"lastproject/pkg/platform/variables"
)

// Title and message shown when startup resolution or activation fails.
const (
	StartupErrorTitle   = "Error"
	StartupErrorMessage = "Error initializing the Projects system"
)

// Launcher runs the startup resolution once and hands the result to the
// activation sink. Failures are presented and never abort startup.
type Launcher struct {
	resolver  StartupResolver
	sink      ActivationSink
	host      Host
	presenter ErrorPresenter
	logger    *slog.Logger

	once      sync.Once
	activated bool
}

type LauncherOption func(*Launcher)

func WithLauncherLogger(logger *slog.Logger) LauncherOption {
	return func(l *Launcher) {
		l.logger = logger
	}
}

func WithErrorPresenter(presenter ErrorPresenter) LauncherOption {
	return func(l *Launcher) {
		l.presenter = presenter
	}
}

func NewLauncher(resolver StartupResolver, sink ActivationSink, host Host, opts ...LauncherOption) (*Launcher, error) {
	if resolver == nil {
		return nil, errors.New("startup resolver is required")
	}
	if sink == nil {
		return nil, errors.New("activation sink is required")
	}
	if host == nil {
		return nil, errors.New("host is required")
	}

	l := &Launcher{
		resolver: resolver,
		sink:     sink,
		host:     host,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.presenter == nil {
		l.presenter = logPresenter{logger: l.logger}
	}
	return l, nil
}

// Start resolves and activates the last project. Only the first call does
// any work; later calls return the first call's result.
func (l *Launcher) Start(ctx context.Context, vars *variables.Space) bool {
	l.once.Do(func() {
		l.activated = l.start(ctx, vars)
	})
	return l.activated
}

func (l *Launcher) start(ctx context.Context, vars *variables.Space) bool {
	resolution, err := l.resolver.Resolve(ctx, vars)
	if err != nil {
		l.presenter.PresentError(ctx, StartupErrorTitle, StartupErrorMessage, err)
		return false
	}
	if resolution == nil {
		return false
	}

	if err := l.sink.Activate(ctx, resolution, vars); err != nil {
		l.presenter.PresentError(ctx, StartupErrorTitle, StartupErrorMessage, err)
		return false
	}
	l.host.SetOpeningLastFiles(false)

	l.logger.InfoContext(ctx, "last project activated",
		"project", resolution.ProjectName,
		"environment", resolution.EnvironmentName(),
	)
	return true
}

type logPresenter struct {
	logger *slog.Logger
}

func (p logPresenter) PresentError(ctx context.Context, title, message string, err error) {
	p.logger.ErrorContext(ctx, message,
		"title", title,
		"error", err,
	)
}
