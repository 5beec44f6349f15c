package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	audit "lastproject/pkg/platform/audit"
)

type SQLiteStoreSuite struct {
	suite.Suite
	store *Store
	path  string
	ctx   context.Context
	base  time.Time
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreSuite))
}

func (s *SQLiteStoreSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "nested", "audit.db")
	store, err := Open(s.path)
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
	s.base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *SQLiteStoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *SQLiteStoreSuite) open(kind, name string, offset time.Duration) {
	s.Require().NoError(s.store.Append(s.ctx, audit.Event{
		Group:     audit.GroupProjects,
		Type:      kind,
		Action:    audit.ActionOpen,
		Name:      name,
		Timestamp: s.base.Add(offset),
	}))
}

func names(events []audit.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Name)
	}
	return out
}

func (s *SQLiteStoreSuite) TestOrderingAndLimit() {
	s.open(audit.TypeProject, "b", 2*time.Minute)
	s.open(audit.TypeProject, "a", time.Minute)
	s.open(audit.TypeProject, "c", 3*time.Minute)
	s.open(audit.TypeEnvironment, "env", 4*time.Minute)

	events, err := s.store.FindEvents(s.ctx, audit.OpenedProjects(0))
	s.Require().NoError(err)
	s.Equal([]string{"c", "b", "a"}, names(events))
	s.True(events[0].Timestamp.Equal(s.base.Add(3 * time.Minute)))

	events, err = s.store.FindEvents(s.ctx, audit.OpenedProjects(1))
	s.Require().NoError(err)
	s.Equal([]string{"c"}, names(events))

	q := audit.OpenedProjects(2)
	q.MostRecentFirst = false
	events, err = s.store.FindEvents(s.ctx, q)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, names(events))
}

func (s *SQLiteStoreSuite) TestEqualTimestampsPreferLaterInsert() {
	s.open(audit.TypeEnvironment, "first", 0)
	s.open(audit.TypeEnvironment, "second", 0)

	events, err := s.store.FindEvents(s.ctx, audit.OpenedEnvironments(100))
	s.Require().NoError(err)
	s.Equal([]string{"second", "first"}, names(events))
}

func (s *SQLiteStoreSuite) TestEmptyResult() {
	events, err := s.store.FindEvents(s.ctx, audit.OpenedEnvironments(100))
	s.Require().NoError(err)
	s.NotNil(events)
	s.Empty(events)
}

func (s *SQLiteStoreSuite) TestRejectsIncompleteEvent() {
	err := s.store.Append(s.ctx, audit.Event{Type: audit.TypeProject, Action: audit.ActionOpen, Name: "p"})
	s.Require().Error(err)
	s.Contains(err.Error(), "Group")
}

func (s *SQLiteStoreSuite) TestSurvivesReopen() {
	s.open(audit.TypeProject, "persisted", 0)
	s.Require().NoError(s.store.Close())

	reopened, err := Open(s.path)
	s.Require().NoError(err)
	s.store = reopened

	events, err := s.store.FindEvents(s.ctx, audit.OpenedProjects(1))
	s.Require().NoError(err)
	s.Equal([]string{"persisted"}, names(events))
}
