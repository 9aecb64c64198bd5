package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bubbles/internal/adapters/rows"
	"go.trai.ch/bubbles/internal/adapters/sink"
	"go.trai.ch/bubbles/internal/adapters/svg"
	"go.trai.ch/bubbles/internal/adapters/telemetry"
	"go.trai.ch/bubbles/internal/app"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testApp struct {
	app    *app.App
	logger *mocks.MockLogger
	loader *mocks.MockConfigLoader
	stdout *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	ta := &testApp{
		logger: mocks.NewMockLogger(ctrl),
		loader: mocks.NewMockConfigLoader(ctrl),
		stdout: new(bytes.Buffer),
	}
	ta.app = app.New(
		ta.loader,
		ta.logger,
		rows.NewSource(),
		&sink.Opener{Stdout: ta.stdout},
		telemetry.NewOTelTracer("test"),
		mocks.NewMockWatcher(ctrl),
		svg.NewSurface(),
	).WithOutput(ta.stdout, new(bytes.Buffer)).WithWorkingDir(t.TempDir())
	return ta
}

func (ta *testApp) provider(_ context.Context) (*app.Components, func(), error) {
	return &app.Components{App: ta.app, Logger: ta.logger}, func() {}, nil
}

func writeRows(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, os.WriteFile(path, []byte("nodeID,parentID,title,weight\ng1,0,first group,0\nl1,g1,alpha,4\n"), domain.FilePerm))
	return path
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ta := newTestApp(t)
	ta.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)

	exitCode := run(context.Background(), []string{"assignments", writeRows(t)}, new(bytes.Buffer), ta.provider)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "g1:0,l1:g1,\n", ta.stdout.String())
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

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ta := newTestApp(t)
	ta.loader.EXPECT().Load(gomock.Any()).Return(domain.Settings{}, domain.ErrInvalidConfig)
	ta.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "failed to load configuration")
	})

	exitCode := run(context.Background(), []string{"render", writeRows(t)}, new(bytes.Buffer), ta.provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_Options verifies that options are applied to the app before the command runs.
func TestRun_Options(t *testing.T) {
	ta := newTestApp(t)
	ta.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	called := false

	exitCode := run(context.Background(), []string{"render", writeRows(t)}, new(bytes.Buffer), ta.provider, func(a *app.App) {
		called = true
		a.WithClock(func() time.Time { return time.Unix(0, 0) })
	})

	assert.Equal(t, 0, exitCode)
	assert.True(t, called)
	assert.Contains(t, ta.stdout.String(), "<svg")
}
