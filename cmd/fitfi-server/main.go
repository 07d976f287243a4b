// Package main provides the entry point for the FitFi style profile server.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/fitfi/fitfi-server/internal/di"
	"github.com/fitfi/fitfi-server/internal/di/providers"
	"github.com/fitfi/fitfi-server/internal/logger"
)

func main() {
	// Create DI container
	injector := di.NewContainer()

	// Bootstrap all services
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap server: %v\n", err)
		os.Exit(1)
	}

	// Get logger for shutdown messages
	log := do.MustInvoke[*logger.Logger](injector)
	log.Info("FitFi style server ready")

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	// Shutdown all services in reverse order
	// The DI container handles shutdown order automatically
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	// Manually shutdown the store handles when the container did not
	// reach them (services that implement do.Shutdownable are handled
	// automatically)
	if storeHandle, err := do.Invoke[*providers.StoreHandle](injector); err == nil {
		log.Info("Closing preference store...")
		if err := storeHandle.Shutdown(); err != nil {
			log.Error("Failed to close preference store", "error", err)
		}
	}

	if gamHandle, err := do.Invoke[*providers.GamificationStoreHandle](injector); err == nil {
		log.Info("Closing gamification store...")
		if err := gamHandle.Shutdown(); err != nil {
			log.Error("Failed to close gamification store", "error", err)
		}
	}

	log.Info("Tot ziens")
}
