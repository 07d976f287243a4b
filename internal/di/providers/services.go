package providers

import (
	"github.com/samber/do/v2"

	"github.com/fitfi/fitfi-server/internal/config"
	"github.com/fitfi/fitfi-server/internal/logger"
	"github.com/fitfi/fitfi-server/internal/ratelimit"
	"github.com/fitfi/fitfi-server/internal/service"
	"github.com/fitfi/fitfi-server/internal/validation"
)

// RateLimiterHandle wraps the swipe rate limiter with shutdown capability.
type RateLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideRateLimiter provides the per-identity swipe rate limiter.
func ProvideRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)

	return &RateLimiterHandle{
		KeyedRateLimiter: ratelimit.New(cfg.Swipes.RateLimit, cfg.Swipes.RateBurst),
	}, nil
}

// ProvideArchetypeDetector provides the archetype detection engine.
func ProvideArchetypeDetector(i do.Injector) (*service.ArchetypeDetector, error) {
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewArchetypeDetector(log.Logger), nil
}

// ProvideSwipeAnalyzer provides the in-memory swipe pattern analyzer.
func ProvideSwipeAnalyzer(i do.Injector) (*service.SwipeAnalyzer, error) {
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSwipeAnalyzer(log.Logger), nil
}

// ProvideAdaptiveLoader provides the adaptive mood-photo batch loader.
// A nil rng gives time-seeded randomness; tests inject their own.
func ProvideAdaptiveLoader(i do.Injector) (*service.AdaptiveLoader, error) {
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAdaptiveLoader(nil, log.Logger), nil
}

// ProvideStyleProfileGenerator provides the style profile generator.
func ProvideStyleProfileGenerator(i do.Injector) (*service.StyleProfileGenerator, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	detector := do.MustInvoke[*service.ArchetypeDetector](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewStyleProfileGenerator(storeHandle.Store, detector, log.Logger), nil
}

// ProvideEmbeddingService provides the embedding aggregation service.
func ProvideEmbeddingService(i do.Injector) (*service.EmbeddingService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewEmbeddingService(storeHandle.Store, log.Logger), nil
}

// ProvideCalibrationService provides the outfit calibration service.
func ProvideCalibrationService(i do.Injector) (*service.CalibrationService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCalibrationService(storeHandle.Store, v, log.Logger), nil
}

// ProvideVisualPreferenceService provides the swipe recording service.
func ProvideVisualPreferenceService(i do.Injector) (*service.VisualPreferenceService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	limiterHandle := do.MustInvoke[*RateLimiterHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewVisualPreferenceService(storeHandle.Store, limiterHandle.KeyedRateLimiter, log.Logger), nil
}

// ProvideGamificationService provides the XP and achievements service.
func ProvideGamificationService(i do.Injector) (*service.GamificationService, error) {
	gamHandle := do.MustInvoke[*GamificationStoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewGamificationService(gamHandle.Store, log.Logger), nil
}
