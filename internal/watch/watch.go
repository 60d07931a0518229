package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"workoutgen/internal/logging"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

// Func is invoked after the watched file settles.
type Func func(ctx context.Context) error

// Watcher reruns a callback whenever one file changes.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	onChange Func
}

// New returns a Watcher for path. A non-positive debounce uses DefaultDebounce.
func New(path string, debounce time.Duration, logger *slog.Logger, onChange Func) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("watch: path is required")
	}
	if onChange == nil {
		return nil, errors.New("watch: callback is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		path:     abs,
		debounce: debounce,
		logger:   logging.NewComponentLogger(logger, "watch"),
		onChange: onChange,
	}, nil
}

// Run blocks until ctx is done. The parent directory is watched so that
// editors replacing the file by rename are still observed. Callback errors
// are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	w.logger.Info("watching content file",
		logging.String(logging.FieldEventType, "watch_started"),
		logging.String(logging.FieldPath, w.path),
	)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("watch stopped", logging.String(logging.FieldPath, w.path))
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("content file event",
				logging.String(logging.FieldPath, event.Name),
				logging.String("op", event.Op.String()),
			)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logging.WarnWithContext(w.logger, "watcher error", "watch_error",
				logging.Error(err),
				logging.String(logging.FieldImpact, "a content change may be missed"),
			)

		case <-timer.C:
			if err := w.onChange(ctx); err != nil {
				logging.ErrorWithContext(w.logger, "regeneration failed", "regenerate_failed",
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "fix the content file and save again"),
				)
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
