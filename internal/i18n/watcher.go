package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher reloads a Bundle when files in its override directory change
type Watcher struct {
	mu       sync.Mutex
	bundle   *Bundle
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration
	pending  bool
	lastSeen time.Time
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
	// reloaded is signalled after every reload, for tests
	reloaded chan struct{}
}

// NewWatcher creates a watcher for the bundle's override directory
func NewWatcher(bundle *Bundle, logger *zap.Logger) (*Watcher, error) {
	if bundle.OverridesDir() == "" {
		return nil, fmt.Errorf("bundle has no overrides directory")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return &Watcher{
		bundle:   bundle,
		watcher:  w,
		logger:   logger,
		debounce: defaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		reloaded: make(chan struct{}, 1),
	}, nil
}

// Start begins watching. It returns once the directory is registered.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.bundle.OverridesDir()); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("failed to watch %s: %w", w.bundle.OverridesDir(), err)
	}

	w.logger.Info("watching translation overrides", zap.String("dir", w.bundle.OverridesDir()))
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("failed to close translation watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending = true
			w.lastSeen = time.Now()
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("translation watcher error", zap.Error(err))

		case <-ticker.C:
			w.flush()
		}
	}
}

// flush reloads once events have settled for the debounce window
func (w *Watcher) flush() {
	w.mu.Lock()
	ready := w.pending && time.Since(w.lastSeen) >= w.debounce
	if ready {
		w.pending = false
	}
	w.mu.Unlock()

	if !ready {
		return
	}

	if err := w.bundle.Reload(); err != nil {
		w.logger.Error("failed to reload translations", zap.Error(err))
		return
	}
	w.logger.Info("translations reloaded")

	select {
	case w.reloaded <- struct{}{}:
	default:
	}
}
