package handler

import (
	"time"

	"lastproject/internal/projects/models"
	"lastproject/internal/workspace"
	"lastproject/pkg/platform/audit"
)

// StartupResponse is the HTTP response for GET /startup.
type StartupResponse struct {
	Namespace        string            `json:"namespace"`
	Project          string            `json:"project,omitempty"`
	ProjectHome      string            `json:"project_home,omitempty"`
	Environment      string            `json:"environment,omitempty"`
	OpeningLastFiles bool              `json:"opening_last_files"`
	ActivatedAt      *time.Time        `json:"activated_at,omitempty"`
	Error            *StartupErrorBody `json:"error,omitempty"`
	CheckedAt        time.Time         `json:"checked_at"`
}

// StartupErrorBody is the last presented startup failure.
type StartupErrorBody struct {
	Title   string    `json:"title"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// EventsResponse is the HTTP response for GET /audit/{kind}/events.
type EventsResponse struct {
	Kind   string          `json:"kind"`
	Events []EventResponse `json:"events"`
}

type EventResponse struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}

// FromSnapshot converts a session snapshot to an HTTP response.
func FromSnapshot(snap workspace.Snapshot, now time.Time) *StartupResponse {
	resp := &StartupResponse{
		Namespace:        snap.Namespace,
		Project:          snap.ProjectName,
		ProjectHome:      snap.ProjectHome,
		Environment:      snap.EnvironmentName,
		OpeningLastFiles: snap.OpeningLastFiles,
		CheckedAt:        now,
	}
	if !snap.ActivatedAt.IsZero() {
		at := snap.ActivatedAt
		resp.ActivatedAt = &at
	}
	if snap.Error != nil {
		resp.Error = &StartupErrorBody{
			Title:   snap.Error.Title,
			Message: snap.Error.Message,
			At:      snap.Error.At,
		}
	}
	return resp
}

// ProjectsResponse is the HTTP response for GET /projects.
type ProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type ProjectResponse struct {
	Name         string   `json:"name"`
	Environments []string `json:"environments"`
}

// FromCatalog groups environments under their projects, in configuration
// order. Environments bound to an unknown project are left out.
func FromCatalog(projects []models.ProjectConfig, environments []models.LifecycleEnvironment) *ProjectsResponse {
	resp := &ProjectsResponse{Projects: make([]ProjectResponse, 0, len(projects))}
	index := make(map[string]int, len(projects))
	for i, p := range projects {
		index[p.Name] = i
		resp.Projects = append(resp.Projects, ProjectResponse{Name: p.Name, Environments: []string{}})
	}
	for _, e := range environments {
		if i, ok := index[e.ProjectName]; ok {
			resp.Projects[i].Environments = append(resp.Projects[i].Environments, e.Name)
		}
	}
	return resp
}

// FromEvents converts audit events to an HTTP response.
func FromEvents(kind string, events []audit.Event) *EventsResponse {
	resp := &EventsResponse{Kind: kind, Events: make([]EventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, EventResponse{Name: e.Name, Timestamp: e.Timestamp})
	}
	return resp
}
