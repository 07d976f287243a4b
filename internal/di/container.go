// Package di provides dependency injection configuration for the FitFi server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/fitfi/fitfi-server/internal/config"
	"github.com/fitfi/fitfi-server/internal/di/providers"
	"github.com/fitfi/fitfi-server/internal/logger"
	"github.com/fitfi/fitfi-server/internal/service"
	"github.com/fitfi/fitfi-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideSlogLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideGamificationStore)

	// Reference data
	do.Provide(injector, providers.ProvideCuration)

	// Guards
	do.Provide(injector, providers.ProvideRateLimiter)

	// Inference services
	do.Provide(injector, providers.ProvideArchetypeDetector)
	do.Provide(injector, providers.ProvideSwipeAnalyzer)
	do.Provide(injector, providers.ProvideAdaptiveLoader)
	do.Provide(injector, providers.ProvideStyleProfileGenerator)
	do.Provide(injector, providers.ProvideEmbeddingService)
	do.Provide(injector, providers.ProvideCalibrationService)
	do.Provide(injector, providers.ProvideVisualPreferenceService)
	do.Provide(injector, providers.ProvideGamificationService)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.GamificationStoreHandle](injector)
	_ = do.MustInvoke[*providers.CurationHandle](injector)
	_ = do.MustInvoke[*providers.RateLimiterHandle](injector)

	// Inference services
	_ = do.MustInvoke[*service.ArchetypeDetector](injector)
	_ = do.MustInvoke[*service.SwipeAnalyzer](injector)
	_ = do.MustInvoke[*service.AdaptiveLoader](injector)
	_ = do.MustInvoke[*service.StyleProfileGenerator](injector)
	_ = do.MustInvoke[*service.EmbeddingService](injector)
	_ = do.MustInvoke[*service.CalibrationService](injector)
	_ = do.MustInvoke[*service.VisualPreferenceService](injector)
	_ = do.MustInvoke[*service.GamificationService](injector)

	return nil
}
