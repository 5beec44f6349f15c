//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	audit "lastproject/pkg/platform/audit"
	auditredis "lastproject/pkg/platform/audit/store/redis"
	"lastproject/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *auditredis.Store
	base  time.Time
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.store = auditredis.New(s.redis.Client, auditredis.WithKeyPrefix("test-audit"))
	s.base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) open(kind, name string, offset time.Duration) {
	s.Require().NoError(s.store.Append(context.Background(), audit.Event{
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

func (s *RedisStoreSuite) TestOrderingAndLimit() {
	ctx := context.Background()
	s.open(audit.TypeEnvironment, "dev", time.Minute)
	s.open(audit.TypeEnvironment, "prod", 3*time.Minute)
	s.open(audit.TypeEnvironment, "test", 2*time.Minute)
	s.open(audit.TypeProject, "p", 5*time.Minute)

	events, err := s.store.FindEvents(ctx, audit.OpenedEnvironments(100))
	s.Require().NoError(err)
	s.Equal([]string{"prod", "test", "dev"}, names(events))
	s.True(events[0].Timestamp.Equal(s.base.Add(3 * time.Minute)))

	events, err = s.store.FindEvents(ctx, audit.OpenedEnvironments(2))
	s.Require().NoError(err)
	s.Equal([]string{"prod", "test"}, names(events))

	q := audit.OpenedEnvironments(1)
	q.MostRecentFirst = false
	events, err = s.store.FindEvents(ctx, q)
	s.Require().NoError(err)
	s.Equal([]string{"dev"}, names(events))
}

func (s *RedisStoreSuite) TestRepeatedOpensAreKept() {
	ctx := context.Background()
	s.open(audit.TypeProject, "p", time.Minute)
	s.open(audit.TypeProject, "p", 2*time.Minute)

	events, err := s.store.FindEvents(ctx, audit.OpenedProjects(0))
	s.Require().NoError(err)
	s.Len(events, 2)
}

func (s *RedisStoreSuite) TestSameMillisecondKeepsAppendOrder() {
	ctx := context.Background()
	s.open(audit.TypeProject, "P1", 0)
	s.open(audit.TypeProject, "P2", 200*time.Microsecond)
	s.open(audit.TypeProject, "P3", 200*time.Microsecond)

	events, err := s.store.FindEvents(ctx, audit.OpenedProjects(0))
	s.Require().NoError(err)
	s.Equal([]string{"P3", "P2", "P1"}, names(events))
	s.True(events[2].Timestamp.Equal(s.base))
}

func (s *RedisStoreSuite) TestSeedWithoutTimestampsKeepsFileOrder() {
	ctx := context.Background()
	for _, name := range []string{"P1", "P2"} {
		s.Require().NoError(s.store.Append(ctx, audit.Event{
			Group: audit.GroupProjects, Type: audit.TypeProject, Action: audit.ActionOpen, Name: name,
		}))
	}

	events, err := s.store.FindEvents(ctx, audit.OpenedProjects(1))
	s.Require().NoError(err)
	s.Equal([]string{"P2"}, names(events))
}

func (s *RedisStoreSuite) TestMissingKeyIsEmpty() {
	events, err := s.store.FindEvents(context.Background(), audit.OpenedProjects(1))
	s.Require().NoError(err)
	s.Empty(events)
}
