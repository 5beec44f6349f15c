package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"lastproject/internal/activation"
	"lastproject/internal/platform/config"
	"lastproject/internal/platform/httpserver"
	"lastproject/internal/platform/logger"
	platformmetrics "lastproject/internal/platform/metrics"
	"lastproject/internal/platform/otel"
	"lastproject/internal/platform/postgres"
	platformredis "lastproject/internal/platform/redis"
	"lastproject/internal/projects/loader"
	"lastproject/internal/projects/store"
	"lastproject/internal/startup/handler"
	"lastproject/internal/startup/metrics"
	"lastproject/internal/startup/service"
	"lastproject/internal/workspace"
	"lastproject/pkg/platform/audit"
	auditmemory "lastproject/pkg/platform/audit/store/memory"
	auditpostgres "lastproject/pkg/platform/audit/store/postgres"
	auditredis "lastproject/pkg/platform/audit/store/redis"
	auditsqlite "lastproject/pkg/platform/audit/store/sqlite"
	"lastproject/pkg/platform/variables"
)

const serviceName = "lastproject"

// main wires dependencies, runs the one-shot startup resolution and then
// serves the status endpoints until interrupted.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("lastproject stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	shutdownTracing, err := otel.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	rawEvents, closeEvents, err := openAuditStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	events := platformmetrics.New().Instrument(rawEvents, cfg.Audit.Backend)
	defer func() {
		if err := closeEvents(); err != nil {
			log.Warn("audit store close failed", "error", err)
		}
	}()
	if cfg.Audit.SeedFile != "" {
		n, err := audit.SeedFile(ctx, rawEvents, cfg.Audit.SeedFile)
		if err != nil {
			return err
		}
		log.InfoContext(ctx, "audit history seeded", "events", n, "file", cfg.Audit.SeedFile)
	}

	registry, err := store.LoadFile(cfg.ProjectsConfig)
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "projects registry loaded",
		"projects", len(registry.ListProjects(ctx)),
		"environments", len(registry.ListEnvironments(ctx)),
	)

	vars := variables.FromEnviron(os.Environ())
	if cfg.VariablesFile != "" {
		if err := vars.LoadFile(cfg.VariablesFile); err != nil {
			return err
		}
	}

	session := workspace.New(workspace.WithLogger(log))
	sink, err := activation.NewSink(session, activation.WithLogger(log))
	if err != nil {
		return err
	}
	resolver, err := service.NewResolver(registry, registry, events,
		loader.New(loader.WithLogger(log)),
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
	)
	if err != nil {
		return err
	}
	launcher, err := service.NewLauncher(resolver, sink, session,
		service.WithLauncherLogger(log),
		service.WithErrorPresenter(session),
	)
	if err != nil {
		return err
	}

	activated := launcher.Start(ctx, vars)
	log.InfoContext(ctx, "startup resolution finished",
		"activated", activated,
		"opening_last_files", session.OpeningLastFiles(),
	)

	router := httpserver.NewRouter(handler.New(session, registry, events, log))
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpserver.Serve(gctx, srv, cfg.ShutdownTimeout, log)
	})
	return g.Wait()
}

func openAuditStore(ctx context.Context, cfg config.Server, log *slog.Logger) (audit.Store, func() error, error) {
	noClose := func() error { return nil }

	switch cfg.Audit.Backend {
	case config.AuditBackendSQLite:
		s, err := auditsqlite.Open(cfg.Audit.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.InfoContext(ctx, "audit store ready", "backend", "sqlite", "path", cfg.Audit.SQLitePath)
		return s, s.Close, nil

	case config.AuditBackendPostgres:
		db, err := postgres.Open(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		s := auditpostgres.New(db)
		if err := s.EnsureSchema(ctx); err != nil {
			return nil, nil, errors.Join(err, db.Close())
		}
		log.InfoContext(ctx, "audit store ready", "backend", "postgres")
		return s, db.Close, nil

	case config.AuditBackendRedis:
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		log.InfoContext(ctx, "audit store ready", "backend", "redis")
		return auditredis.New(client, auditredis.WithKeyPrefix(cfg.Redis.KeyPrefix)), client.Close, nil

	default:
		log.InfoContext(ctx, "audit store ready", "backend", "memory")
		return auditmemory.NewInMemoryStore(), noClose, nil
	}
}
