package audit

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchOptions controls token-file watching behavior.
type WatchOptions struct {
	// DebounceMs groups rapid successive writes to the same file into one
	// change notification. Defaults to 200ms.
	DebounceMs int
}

// DefaultWatchOptions returns the recommended watch settings.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{DebounceMs: 200}
}

// TokenWatcher watches token definition files and notifies on change, with
// debouncing so editors that write in bursts trigger one reload.
type TokenWatcher struct {
	watcher  *fsnotify.Watcher
	log      *slog.Logger
	options  WatchOptions
	onChange func(path string)

	// Debouncing
	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	// Watched file set: events arrive for whole directories.
	watched map[string]bool

	// Lifecycle
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewTokenWatcher creates a watcher that calls onChange with the path of
// each changed token file.
func NewTokenWatcher(onChange func(path string), options WatchOptions, log *slog.Logger) (*TokenWatcher, error) {
	if log == nil {
		log = slog.Default()
	}
	if options.DebounceMs == 0 {
		options.DebounceMs = 200
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &TokenWatcher{
		watcher:        watcher,
		log:            log,
		options:        options,
		onChange:       onChange,
		debounceTimers: make(map[string]*time.Timer),
		watched:        make(map[string]bool),
		stopChan:       make(chan struct{}),
	}, nil
}

// Watch registers token files to observe. The containing directories are
// watched because editors replace files on save (rename + create), which a
// per-file watch would lose.
func (tw *TokenWatcher) Watch(paths ...string) error {
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %q: %w", path, err)
		}
		tw.watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	for dir := range dirs {
		if err := tw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %q: %w", dir, err)
		}
	}
	return nil
}

// Start begins dispatching change notifications in a background goroutine.
func (tw *TokenWatcher) Start() {
	go tw.loop()
}

func (tw *TokenWatcher) loop() {
	for {
		select {
		case <-tw.stopChan:
			return
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			tw.handleEvent(event)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.log.Warn("watcher error", "error", err)
		}
	}
}

func (tw *TokenWatcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil || !tw.watched[abs] {
		return
	}

	tw.debounceMu.Lock()
	defer tw.debounceMu.Unlock()

	if timer, exists := tw.debounceTimers[abs]; exists {
		timer.Stop()
	}
	debounce := time.Duration(tw.options.DebounceMs) * time.Millisecond
	tw.debounceTimers[abs] = time.AfterFunc(debounce, func() {
		tw.debounceMu.Lock()
		delete(tw.debounceTimers, abs)
		tw.debounceMu.Unlock()

		tw.log.Info("token file changed", "path", abs)
		tw.onChange(abs)
	})
}

// Stop ends watching and releases resources. Safe to call more than once.
func (tw *TokenWatcher) Stop() {
	tw.stopOnce.Do(func() {
		close(tw.stopChan)
		if err := tw.watcher.Close(); err != nil {
			tw.log.Warn("failed to close watcher", "error", err)
		}

		tw.debounceMu.Lock()
		for path, timer := range tw.debounceTimers {
			timer.Stop()
			delete(tw.debounceTimers, path)
		}
		tw.debounceMu.Unlock()
	})
}
