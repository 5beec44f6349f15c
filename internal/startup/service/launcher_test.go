package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	projectmodels "lastproject/internal/projects/models"
	"lastproject/internal/startup/models"
	"lastproject/internal/startup/service/mocks"
	"lastproject/pkg/platform/variables"
)

// =============================================================================
// Launcher Test Suite
// =============================================================================
// The launcher is the only caller of the resolver. Tests cover the once-only
// guard, the reopen-last-files handshake and error presentation.

type LauncherSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	resolver  *mocks.MockStartupResolver
	sink      *mocks.MockActivationSink
	host      *mocks.MockHost
	presenter *mocks.MockErrorPresenter
	launcher  *Launcher
	vars      *variables.Space
}

func TestLauncherSuite(t *testing.T) {
	suite.Run(t, new(LauncherSuite))
}

func (s *LauncherSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.resolver = mocks.NewMockStartupResolver(s.ctrl)
	s.sink = mocks.NewMockActivationSink(s.ctrl)
	s.host = mocks.NewMockHost(s.ctrl)
	s.presenter = mocks.NewMockErrorPresenter(s.ctrl)
	s.vars = variables.New()

	var err error
	s.launcher, err = NewLauncher(s.resolver, s.sink, s.host,
		WithLauncherLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithErrorPresenter(s.presenter),
	)
	s.Require().NoError(err)
}

func (s *LauncherSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *LauncherSuite) resolution() *models.Resolution {
	return &models.Resolution{
		ProjectName: "P1",
		Project:     &projectmodels.Project{Name: "P1"},
		Environment: &projectmodels.LifecycleEnvironment{Name: "E1", ProjectName: "P1"},
	}
}

func (s *LauncherSuite) TestNewLauncher() {
	s.Run("nil resolver returns error", func() {
		_, err := NewLauncher(nil, s.sink, s.host)
		s.Require().Error(err)
		s.Contains(err.Error(), "startup resolver is required")
	})

	s.Run("nil sink returns error", func() {
		_, err := NewLauncher(s.resolver, nil, s.host)
		s.Require().Error(err)
		s.Contains(err.Error(), "activation sink is required")
	})

	s.Run("nil host returns error", func() {
		_, err := NewLauncher(s.resolver, s.sink, nil)
		s.Require().Error(err)
		s.Contains(err.Error(), "host is required")
	})

	s.Run("default presenter logs", func() {
		var buf bytes.Buffer
		l, err := NewLauncher(s.resolver, s.sink, s.host,
			WithLauncherLogger(slog.New(slog.NewTextHandler(&buf, nil))),
		)
		s.Require().NoError(err)
		l.presenter.PresentError(s.ctx, StartupErrorTitle, StartupErrorMessage, errors.New("boom"))
		s.Contains(buf.String(), "Error initializing the Projects system")
		s.Contains(buf.String(), "boom")
	})
}

func (s *LauncherSuite) TestActivatesAndSkipsReopeningFiles() {
	res := s.resolution()
	gomock.InOrder(
		s.resolver.EXPECT().Resolve(s.ctx, s.vars).Return(res, nil),
		s.sink.EXPECT().Activate(s.ctx, res, s.vars).Return(nil),
		s.host.EXPECT().SetOpeningLastFiles(false),
	)

	s.True(s.launcher.Start(s.ctx, s.vars))
}

func (s *LauncherSuite) TestNothingToActivateLeavesHostAlone() {
	s.resolver.EXPECT().Resolve(s.ctx, s.vars).Return(nil, nil)

	s.False(s.launcher.Start(s.ctx, s.vars))
}

func (s *LauncherSuite) TestResolveFailureIsPresented() {
	boom := errors.New("audit store unavailable")
	s.resolver.EXPECT().Resolve(s.ctx, s.vars).Return(nil, boom)
	s.presenter.EXPECT().PresentError(s.ctx, "Error", "Error initializing the Projects system", boom)

	s.False(s.launcher.Start(s.ctx, s.vars))
}

func (s *LauncherSuite) TestActivationFailureKeepsReopenFlag() {
	res := s.resolution()
	boom := errors.New("environment file missing")
	s.resolver.EXPECT().Resolve(s.ctx, s.vars).Return(res, nil)
	s.sink.EXPECT().Activate(s.ctx, res, s.vars).Return(boom)
	s.presenter.EXPECT().PresentError(s.ctx, StartupErrorTitle, StartupErrorMessage, boom)

	s.False(s.launcher.Start(s.ctx, s.vars))
}

func (s *LauncherSuite) TestStartRunsOnce() {
	res := s.resolution()
	s.resolver.EXPECT().Resolve(s.ctx, s.vars).Return(res, nil).Times(1)
	s.sink.EXPECT().Activate(s.ctx, res, s.vars).Return(nil).Times(1)
	s.host.EXPECT().SetOpeningLastFiles(false).Times(1)

	s.True(s.launcher.Start(s.ctx, s.vars))
	s.True(s.launcher.Start(s.ctx, s.vars))
}
