package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/appstate/pkg/core"
)

// stopTimeout bounds how long Watch waits for the worker to wind down.
const stopTimeout = 2 * time.Second

// Watch reports changes made to the state file by other processes.
// The returned channel is closed once ctx is cancelled.
// The directory holding the state file must exist.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event, 16)
	w := newWatchWorker(r, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		return w.Stop(stopCtx)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.config.Logger.Error("watcher stop failed", "error", err)
	}))

	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	repo    *Repository
	events  chan<- core.Event
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
}

func newWatchWorker(repo *Repository, events chan<- core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("state-watcher"),
		repo:       repo,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory: the file itself may not exist yet, and editors
	// often replace it by rename.
	dir := filepath.Dir(w.repo.Path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w.watcher = watcher
	w.repo.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
			"path":              w.repo.Path,
		}
	})
}

// mapEventType translates an fsnotify operation into a state file event.
// Chmod-only events are dropped.
func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(w.repo.Path) {
		return false
	}

	eType := mapEventType(event)
	if eType == "" {
		return false
	}
	w.repo.config.Logger.Debug("state file event", "op", event.Op.String(), "path", event.Name)

	select {
	case w.events <- core.Event{Type: eType, Path: w.repo.Path, Timestamp: time.Now().Unix()}:
	case <-ctx.Done():
	}
	return true
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.repo.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", panicErr, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", panicErr)
			}
			err = panicErr
		}
	}()
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("fsnotify error", "error", wErr)
		}
	}
}
