package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"lastproject/internal/projects/models"
	"lastproject/internal/workspace"
	dErrors "lastproject/pkg/domain-errors"
	"lastproject/pkg/platform/audit"
	"lastproject/pkg/platform/httputil"
	"lastproject/pkg/requestcontext"
)

// Event listing bounds for GET /audit/{kind}/events.
const (
	DefaultEventLimit = 20
	MaxEventLimit     = 100
)

// SessionReader exposes the workspace state.
type SessionReader interface {
	Snapshot() workspace.Snapshot
}

// ProjectCatalog lists the configured projects and environments.
type ProjectCatalog interface {
	ListProjects(ctx context.Context) []models.ProjectConfig
	ListEnvironments(ctx context.Context) []models.LifecycleEnvironment
}

// EventFinder reads audit history.
type EventFinder interface {
	FindEvents(ctx context.Context, query audit.Query) ([]audit.Event, error)
}

// Handler serves the read-only startup status endpoints.
type Handler struct {
	session SessionReader
	catalog ProjectCatalog
	events  EventFinder
	logger  *slog.Logger
}

// New constructs a status handler with its dependencies.
func New(session SessionReader, catalog ProjectCatalog, events EventFinder, logger *slog.Logger) *Handler {
	return &Handler{
		session: session,
		catalog: catalog,
		events:  events,
		logger:  logger,
	}
}

// Register mounts status endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.HandleHealth)
	r.Get("/startup", h.HandleStartup)
	r.Get("/projects", h.HandleProjects)
	r.Get("/audit/{kind}/events", h.HandleEvents)
}

// HandleHealth handles GET /healthz requests.
func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleStartup handles GET /startup requests.
func (h *Handler) HandleStartup(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromSnapshot(h.session.Snapshot(), requestcontext.Now(r.Context())))
}

// HandleProjects handles GET /projects requests.
func (h *Handler) HandleProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	httputil.WriteJSON(w, http.StatusOK, FromCatalog(h.catalog.ListProjects(ctx), h.catalog.ListEnvironments(ctx)))
}

// HandleEvents handles GET /audit/{kind}/events requests.
func (h *Handler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	kind := chi.URLParam(r, "kind")
	var query audit.Query
	switch kind {
	case "project":
		query = audit.OpenedProjects(0)
	case "environment":
		query = audit.OpenedEnvironments(0)
	default:
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "unknown audit kind"))
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	query.Limit = limit

	events, err := h.events.FindEvents(ctx, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "audit event listing failed",
			"request_id", requestID,
			"kind", kind,
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}

	h.logger.DebugContext(ctx, "audit events listed",
		"request_id", requestID,
		"kind", kind,
		"count", len(events),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromEvents(kind, events))
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return DefaultEventLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 || limit > MaxEventLimit {
		return 0, dErrors.New(dErrors.CodeBadRequest, "limit must be between 1 and 100")
	}
	return limit, nil
}
