package providers

import (
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/fitfi/fitfi-server/internal/config"
	"github.com/fitfi/fitfi-server/internal/logger"
	"github.com/fitfi/fitfi-server/internal/store"
	"github.com/fitfi/fitfi-server/internal/store/sqlite"
)

// StoreHandle wraps the preference store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the badger-backed preference store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := filepath.Join(cfg.Store.DataPath, "db")
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Preference store initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// GamificationStoreHandle wraps the gamification store with shutdown capability.
type GamificationStoreHandle struct {
	*sqlite.Store
}

// Shutdown implements do.Shutdownable.
func (h *GamificationStoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideGamificationStore provides the sqlite-backed gamification store.
func ProvideGamificationStore(i do.Injector) (*GamificationStoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	db, err := sqlite.Open(cfg.Gamification.DBPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Gamification store initialized", "path", cfg.Gamification.DBPath)

	return &GamificationStoreHandle{Store: db}, nil
}
