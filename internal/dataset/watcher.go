package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher refreshes a Cache whenever the dataset file changes on disk
type Watcher struct {
	path     string
	cache    *Cache
	logger   *zap.Logger
	debounce time.Duration
}

// NewWatcher creates a watcher for path
func NewWatcher(path string, cache *Cache, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		cache:    cache,
		logger:   logger,
		debounce: 500 * time.Millisecond,
	}
}

// Run blocks until ctx is cancelled. The parent directory is watched so that
// editors replacing the file through a rename are still noticed.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", zap.Error(err))

		case <-timer.C:
			w.logger.Info("dataset file changed, refreshing", zap.String("path", w.path))
			if _, err := w.cache.Refresh(ctx); err != nil {
				w.logger.Error("dataset refresh after file change failed", zap.Error(err))
			}
		}
	}
}
