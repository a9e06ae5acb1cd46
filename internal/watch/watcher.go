// Package watch re-runs an action whenever a single file changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/grovetools/gametidy/internal/logging"
	"github.com/sirupsen/logrus"
)

// Watcher invokes OnChange after Path has been quiet for Debounce.
type Watcher struct {
	Path     string
	Debounce time.Duration
	OnChange func(ctx context.Context) error
	Logger   *logrus.Entry
}

// New creates a watcher for path.
func New(path string, debounce time.Duration, onChange func(ctx context.Context) error) *Watcher {
	return &Watcher{
		Path:     path,
		Debounce: debounce,
		OnChange: onChange,
		Logger:   logging.NewLogger("watch"),
	}
}

// Run blocks until ctx is done. The parent directory is watched so that
// editors which replace the file on save are still picked up. Errors from
// OnChange are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	if w.OnChange == nil {
		return errors.New("watch: OnChange is required")
	}
	if w.Debounce <= 0 {
		return fmt.Errorf("watch: debounce must be positive, got %s", w.Debounce)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	target, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", w.Path, err)
	}
	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	w.Logger.WithField("path", target).Info("Watching for changes")

	// fire stays nil until the first relevant event arms the timer.
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(target, ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
				fire = timer.C
			} else {
				timer.Reset(w.Debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.Logger.WithError(err).Warn("Watch error")
		case <-fire:
			if err := w.OnChange(ctx); err != nil {
				w.Logger.WithError(err).Error("Re-run failed")
			}
		}
	}
}

func (w *Watcher) relevant(target string, ev fsnotify.Event) bool {
	name, err := filepath.Abs(ev.Name)
	if err != nil || name != target {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
