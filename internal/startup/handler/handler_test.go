package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lastproject/internal/projects/models"
	"lastproject/internal/projects/store"
	"lastproject/internal/workspace"
	"lastproject/pkg/platform/audit"
	auditmemory "lastproject/pkg/platform/audit/store/memory"
	"lastproject/pkg/platform/middleware/requestid"
	"lastproject/pkg/platform/middleware/requesttime"
)

var checkedAt = time.Date(2026, 5, 5, 12, 0, 0, 0, time.UTC)

const catalogYAML = `
projects:
  - name: P1
    home: /srv/p1
  - name: P2
    home: /srv/p2
environments:
  - name: dev
    project: P1
  - name: orphan
    project: Gone
  - name: prod
    project: P1
`

type failingFinder struct{}

func (failingFinder) FindEvents(context.Context, audit.Query) ([]audit.Event, error) {
	return nil, errors.New("connection refused")
}

func newRouter(t *testing.T, session SessionReader, events EventFinder) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestid.Middleware)
	r.Use(requesttime.MiddlewareWithClock(func() time.Time { return checkedAt }))
	catalog, err := store.Parse([]byte(catalogYAML))
	require.NoError(t, err)
	New(session, catalog, events, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(r)
	return r
}

func seededStore(t *testing.T) *auditmemory.InMemoryStore {
	t.Helper()
	store := auditmemory.NewInMemoryStore()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"P1", "P2", "P3"} {
		require.NoError(t, store.Append(context.Background(), audit.Event{
			Group: audit.GroupProjects, Type: audit.TypeProject, Action: audit.ActionOpen,
			Name: name, Timestamp: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, store.Append(context.Background(), audit.Event{
		Group: audit.GroupProjects, Type: audit.TypeEnvironment, Action: audit.ActionOpen,
		Name: "dev", Timestamp: base,
	}))
	return store
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, newRouter(t, workspace.New(), auditmemory.NewInMemoryStore()), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
}

func TestStartupStatus(t *testing.T) {
	activatedAt := time.Date(2026, 5, 5, 11, 0, 0, 0, time.UTC)
	session := workspace.New(
		workspace.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		workspace.WithClock(func() time.Time { return activatedAt }),
	)

	t.Run("before activation", func(t *testing.T) {
		rec := get(t, newRouter(t, session, auditmemory.NewInMemoryStore()), "/startup")
		require.Equal(t, http.StatusOK, rec.Code)

		var body StartupResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Empty(t, body.Namespace)
		assert.True(t, body.OpeningLastFiles)
		assert.Nil(t, body.ActivatedAt)
		assert.True(t, checkedAt.Equal(body.CheckedAt))
	})

	t.Run("after activation", func(t *testing.T) {
		require.NoError(t, session.Publish(context.Background(), workspace.Active{
			Namespace:   "P1",
			Project:     &models.Project{Name: "P1", Home: "/srv/p1"},
			Environment: &models.LifecycleEnvironment{Name: "dev", ProjectName: "P1"},
		}))
		session.SetOpeningLastFiles(false)

		rec := get(t, newRouter(t, session, auditmemory.NewInMemoryStore()), "/startup")
		require.Equal(t, http.StatusOK, rec.Code)

		var body StartupResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "P1", body.Namespace)
		assert.Equal(t, "P1", body.Project)
		assert.Equal(t, "/srv/p1", body.ProjectHome)
		assert.Equal(t, "dev", body.Environment)
		assert.False(t, body.OpeningLastFiles)
		require.NotNil(t, body.ActivatedAt)
		assert.True(t, activatedAt.Equal(*body.ActivatedAt))
	})

	t.Run("with presented error", func(t *testing.T) {
		session.PresentError(context.Background(), "Error", "Error initializing the Projects system",
			errors.New("open /srv/p1/dev.json: no such file or directory"))
		rec := get(t, newRouter(t, session, auditmemory.NewInMemoryStore()), "/startup")
		raw := rec.Body.String()

		var body StartupResponse
		require.NoError(t, json.Unmarshal([]byte(raw), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "Error initializing the Projects system", body.Error.Message)
		assert.NotContains(t, raw, "/srv/p1/dev.json")
	})
}

func TestProjects(t *testing.T) {
	rec := get(t, newRouter(t, workspace.New(), auditmemory.NewInMemoryStore()), "/projects")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"projects":[
		{"name":"P1","environments":["dev","prod"]},
		{"name":"P2","environments":[]}
	]}`, rec.Body.String())
}

func TestAuditEvents(t *testing.T) {
	router := newRouter(t, workspace.New(), seededStore(t))

	t.Run("project events newest first", func(t *testing.T) {
		rec := get(t, router, "/audit/project/events?limit=2")
		require.Equal(t, http.StatusOK, rec.Code)

		var body EventsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "project", body.Kind)
		require.Len(t, body.Events, 2)
		assert.Equal(t, "P3", body.Events[0].Name)
		assert.Equal(t, "P2", body.Events[1].Name)
	})

	t.Run("default limit", func(t *testing.T) {
		rec := get(t, router, "/audit/environment/events")
		require.Equal(t, http.StatusOK, rec.Code)

		var body EventsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Len(t, body.Events, 1)
		assert.Equal(t, "dev", body.Events[0].Name)
	})

	t.Run("unknown kind", func(t *testing.T) {
		rec := get(t, router, "/audit/pipeline/events")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	for _, raw := range []string{"0", "101", "abc", "-3"} {
		t.Run("invalid limit "+raw, func(t *testing.T) {
			rec := get(t, router, "/audit/project/events?limit="+raw)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "bad_request")
		})
	}

	t.Run("store failure hides details", func(t *testing.T) {
		rec := get(t, newRouter(t, workspace.New(), failingFinder{}), "/audit/project/events")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}
