package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/fitfi/fitfi-server/internal/config"
	"github.com/fitfi/fitfi-server/internal/curation"
	"github.com/fitfi/fitfi-server/internal/logger"
)

// CurationHandle wraps the curation loader and optional file watcher
// for lifecycle management.
type CurationHandle struct {
	Loader *curation.Loader

	watcher *curation.Watcher
	cancel  context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *CurationHandle) Shutdown() error {
	if h.cancel != nil {
		h.cancel()
	}
	if h.watcher != nil {
		h.watcher.Stop()
	}
	return nil
}

// ProvideCuration loads the mood-photo curation file and, when enabled,
// starts a watcher that reloads it on change. Without a configured file
// the loader is still provided; photos can be seeded via cmd/seed.
func ProvideCuration(i do.Injector) (*CurationHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	loader := curation.NewLoader(storeHandle.Store, log.Logger)
	handle := &CurationHandle{Loader: loader}

	if cfg.Curation.FilePath == "" {
		log.Info("No curation file configured")
		return handle, nil
	}

	count, err := loader.Load(context.Background(), cfg.Curation.FilePath)
	if err != nil {
		// Not fatal: the store may already hold photos from a previous run.
		log.Warn("Initial curation load failed", "path", cfg.Curation.FilePath, "error", err)
	} else {
		log.Info("Curation file loaded", "path", cfg.Curation.FilePath, "photos", count)
	}

	if cfg.Curation.Watch {
		watcher, err := curation.NewWatcher(loader, cfg.Curation.FilePath, log.Logger)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithCancel(context.Background())
		watcher.Start(ctx)
		handle.watcher = watcher
		handle.cancel = cancel

		log.Info("Curation watcher started", "path", cfg.Curation.FilePath)
	}

	return handle, nil
}
