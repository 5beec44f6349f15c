package audit

import (
	"fmt"
	"time"
)

// Group, type and action values recorded when a user opens a project or an
// environment. Resolution at startup only ever reads these.
const (
	GroupProjects = "projects-audit-group"

	TypeProject     = "project-audit-type"
	TypeEnvironment = "environment-audit-type"

	ActionOpen = "open"
)

// Event is one historical user action, e.g. "opened project X". Events are
// immutable once appended; stores hand out copies.
type Event struct {
	Group     string
	Type      string
	Action    string
	Name      string
	Timestamp time.Time
}

// Validate checks the fields every store requires before appending.
func (e Event) Validate() error {
	switch {
	case e.Group == "":
		return fmt.Errorf("audit event requires Group")
	case e.Type == "":
		return fmt.Errorf("audit event requires Type")
	case e.Action == "":
		return fmt.Errorf("audit event requires Action")
	case e.Name == "":
		return fmt.Errorf("audit event requires Name")
	}
	return nil
}

// Query selects events by exact group, type and action.
//
// Results are ordered by timestamp, newest first when MostRecentFirst is set
// and oldest first otherwise, and then truncated to Limit. A Limit of zero or
// less means no limit.
type Query struct {
	Group           string
	Type            string
	Action          string
	Limit           int
	MostRecentFirst bool
}

// Matches reports whether the event belongs to the query's selection.
func (q Query) Matches(e Event) bool {
	return e.Group == q.Group && e.Type == q.Type && e.Action == q.Action
}

// OpenedProjects returns the query for the most recently opened projects.
func OpenedProjects(limit int) Query {
	return Query{
		Group:           GroupProjects,
		Type:            TypeProject,
		Action:          ActionOpen,
		Limit:           limit,
		MostRecentFirst: true,
	}
}

// OpenedEnvironments returns the query for the most recently opened environments.
func OpenedEnvironments(limit int) Query {
	return Query{
		Group:           GroupProjects,
		Type:            TypeEnvironment,
		Action:          ActionOpen,
		Limit:           limit,
		MostRecentFirst: true,
	}
}
