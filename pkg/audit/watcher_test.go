package audit

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenWatcher_NotifiesOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	var fired atomic.Int32
	tw, err := NewTokenWatcher(func(string) { fired.Add(1) }, WatchOptions{DebounceMs: 50}, nil)
	require.NoError(t, err)
	defer tw.Stop()

	require.NoError(t, tw.Watch(path))
	tw.Start()

	require.NoError(t, os.WriteFile(path, []byte(`{"Base":{}}`), 0644))

	require.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestTokenWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "tokens.json")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(watched, []byte(`{}`), 0644))

	var fired atomic.Int32
	tw, err := NewTokenWatcher(func(string) { fired.Add(1) }, WatchOptions{DebounceMs: 50}, nil)
	require.NoError(t, err)
	defer tw.Stop()

	require.NoError(t, tw.Watch(watched))
	tw.Start()

	require.NoError(t, os.WriteFile(other, []byte("hello"), 0644))

	time.Sleep(300 * time.Millisecond)
	require.Equal(t, int32(0), fired.Load())
}

func TestTokenWatcher_StopIsIdempotent(t *testing.T) {
	tw, err := NewTokenWatcher(func(string) {}, DefaultWatchOptions(), nil)
	require.NoError(t, err)

	tw.Stop()
	tw.Stop()
}
