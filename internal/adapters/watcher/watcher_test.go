package watcher_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bubbles/internal/adapters/watcher"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/bubbles/internal/core/ports"
	"go.trai.ch/bubbles/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func nextEvent(t *testing.T, events <-chan ports.WatchEvent) ports.WatchEvent {
	t.Helper()
	select {
	case ev, ok := <-events:
		require.True(t, ok, "events closed")
		return ev
	case <-time.After(5 * time.Second):
		require.FailNow(t, "timed out waiting for a watch event")
		return ports.WatchEvent{}
	}
}

func startWatcher(t *testing.T, files ...string) (*watcher.Watcher, <-chan ports.WatchEvent) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(logger, 20*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, w.Start(t.Context(), files...))
	t.Cleanup(func() { _ = w.Stop() })

	out := make(chan ports.WatchEvent)
	go func() {
		defer close(out)
		for ev := range w.Events() {
			out <- ev
		}
	}()
	return w, out
}

func TestWatcher_ReportsTargetWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "rows.csv")
	require.NoError(t, os.WriteFile(target, []byte("a"), domain.FilePerm))
	_, events := startWatcher(t, target)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), domain.FilePerm))
	require.NoError(t, os.WriteFile(target, []byte("ab"), domain.FilePerm))

	ev := nextEvent(t, events)
	assert.Equal(t, target, ev.Path)
	assert.Equal(t, ports.OpWrite, ev.Operation)
}

func TestWatcher_ReportsReplaceByRename(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "rows.json")
	require.NoError(t, os.WriteFile(target, []byte("[]"), domain.FilePerm))
	_, events := startWatcher(t, target)

	tmp := filepath.Join(dir, "rows.json.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("[ ]"), domain.FilePerm))
	require.NoError(t, os.Rename(tmp, target))

	ev := nextEvent(t, events)
	assert.Equal(t, target, ev.Path)
	assert.Equal(t, ports.OpCreate, ev.Operation)
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	dir := t.TempDir()
	w, events := startWatcher(t, filepath.Join(dir, "rows.csv"))

	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "events did not end after Stop")
	}
}

func TestWatcher_StartMissingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl), time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	err = w.Start(t.Context(), filepath.Join(t.TempDir(), "missing", "rows.csv"))

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to watch directory")
}

func TestWatchOp_String(t *testing.T) {
	assert.Equal(t, "create", ports.OpCreate.String())
	assert.Equal(t, "write", ports.OpWrite.String())
	assert.Equal(t, "remove", ports.OpRemove.String())
	assert.Equal(t, "rename", ports.OpRename.String())
	assert.Equal(t, "unknown", ports.WatchOp(9).String())
}
