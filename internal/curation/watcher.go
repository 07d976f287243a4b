package curation

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultSettleDelay is how long a file must stay unchanged before a
// reload fires. Editors and sync tools write in bursts.
const defaultSettleDelay = 500 * time.Millisecond

// Watcher reloads the curation file whenever it changes on disk.
// It watches the parent directory because many editors replace files
// by rename, which drops a watch placed on the file itself.
type Watcher struct {
	loader      *Loader
	path        string
	settleDelay time.Duration
	logger      *slog.Logger

	fsw *fsnotify.Watcher

	mu    sync.Mutex
	timer *time.Timer

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for the curation file at path.
func NewWatcher(loader *Loader, path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	path = filepath.Clean(path)
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		loader:      loader,
		path:        path,
		settleDelay: defaultSettleDelay,
		logger:      logger,
		fsw:         fsw,
		done:        make(chan struct{}),
	}, nil
}

// Start begins watching. It returns immediately; reloads happen on a
// background goroutine until Stop is called or ctx is canceled.
func (w *Watcher) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(ctx, event)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("curation watch error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Restart the settle timer on every burst of writes.
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.settleDelay, func() {
		w.reload(ctx)
	})
}

func (w *Watcher) reload(ctx context.Context) {
	select {
	case <-w.done:
		return
	case <-ctx.Done():
		return
	default:
	}

	loaded, err := w.loader.Load(ctx, w.path)
	if err != nil {
		w.logger.Error("curation reload failed", "path", w.path, "error", err)
		return
	}
	w.logger.Info("curation file reloaded", "path", w.path, "photos", loaded)
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)

		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()

		w.fsw.Close()
		w.wg.Wait()
	})
}
