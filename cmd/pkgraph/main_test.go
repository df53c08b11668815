package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vito/progrock"
	"go.trai.ch/pkgraph/internal/adapters/metrics"
	"go.trai.ch/pkgraph/internal/adapters/progress"
	"go.trai.ch/pkgraph/internal/app"
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports/mocks"
	"go.trai.ch/pkgraph/internal/engine/cache"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	config   *mocks.MockConfigLoader
	hasher   *mocks.MockGraphHasher
	logger   *mocks.MockLogger
	progress *progress.Recorder
	provider ComponentProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		config:   mocks.NewMockConfigLoader(ctrl),
		hasher:   mocks.NewMockGraphHasher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		progress: progress.NewRecorder(progrock.NewTape(), nil),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	observer := metrics.NewObserver()
	c := cache.New(cache.WithProgress(f.progress), cache.WithObserver(observer))
	application := app.New(f.config, mocks.NewMockLoaderFactory(ctrl), c, f.hasher, observer, f.logger)

	f.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:      application,
			Logger:   f.logger,
			Progress: f.progress,
		}, func() {}, nil
	}
	return f
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, f.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the failure and returns 1.
func TestRun_ExecutionError(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load("/nowhere").Return(nil, domain.ErrConfigNotFound)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	exitCode := run(context.Background(), []string{"stat", "-C", "/nowhere"}, new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_Progress verifies that --progress mirrors load progress to stderr.
func TestRun_Progress(t *testing.T) {
	f := newFixture(t)
	f.config.EXPECT().Load(".").Return(&domain.Workspace{Root: "."}, nil)
	f.hasher.EXPECT().Fingerprint(gomock.Any()).Return("0000000000000000", nil)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--progress", "stat"}, stderr, f.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr.String(), "[0/1] Building cache...\n")
	assert.Contains(t, stderr.String(), "[1/1] Building cache...\n")
}
