// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the application configuration.
type Config struct {
	App          AppConfig
	Logger       LoggerConfig
	Store        StoreConfig
	Gamification GamificationConfig
	Curation     CurationConfig
	Swipes       SwipeConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// StoreConfig holds preference-store configuration.
type StoreConfig struct {
	// DataPath is the badger database directory.
	DataPath string
}

// GamificationConfig holds gamification database configuration.
type GamificationConfig struct {
	// DBPath is the sqlite database file (default: {data}/gamification.db).
	DBPath string
}

// CurationConfig holds mood-photo curation configuration.
type CurationConfig struct {
	// FilePath is the JSON curation file to load and watch. Optional.
	FilePath string
	// Watch enables reloading the curation file on change (default: true).
	Watch bool
}

// SwipeConfig holds swipe recording configuration.
type SwipeConfig struct {
	// RateLimit is the sustained swipes-per-second allowed per user (default: 5).
	RateLimit float64
	// RateBurst is the burst size allowed per user (default: 10).
	RateBurst int
	// BatchSize is the default mood-photo batch size (default: 10).
	BatchSize int
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	// Define command-line flags.
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dataPath := flag.String("data-path", "", "Base path for preference store data")
	gamificationDB := flag.String("gamification-db", "", "Path to gamification sqlite database")
	curationFile := flag.String("curation-file", "", "Path to mood-photo curation JSON file")
	curationWatch := flag.String("curation-watch", "", "Watch curation file for changes (default: true)")
	swipeRate := flag.String("swipe-rate", "", "Sustained swipes per second per user (default: 5)")
	swipeBurst := flag.String("swipe-burst", "", "Swipe burst size per user (default: 10)")
	photoBatch := flag.String("photo-batch", "", "Default mood-photo batch size (default: 10)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			DataPath: getConfigValue(*dataPath, "DATA_PATH", ""),
		},
		Gamification: GamificationConfig{
			DBPath: getConfigValue(*gamificationDB, "GAMIFICATION_DB_PATH", ""),
		},
		Curation: CurationConfig{
			FilePath: getConfigValue(*curationFile, "CURATION_FILE", ""),
			Watch:    getBoolConfigValue(*curationWatch, "CURATION_WATCH", true),
		},
		Swipes: SwipeConfig{
			RateLimit: getFloatConfigValue(*swipeRate, "SWIPE_RATE_LIMIT", 5),
			RateBurst: getIntConfigValue(*swipeBurst, "SWIPE_RATE_BURST", 10),
			BatchSize: getIntConfigValue(*photoBatch, "PHOTO_BATCH_SIZE", 10),
		},
	}

	// Expand and validate the data path.
	if err := cfg.expandDataPath(); err != nil {
		return nil, fmt.Errorf("invalid data path: %w", err)
	}

	// Expand the gamification DB path (defaults to {data}/gamification.db).
	if err := cfg.expandGamificationDBPath(); err != nil {
		return nil, fmt.Errorf("invalid gamification db path: %w", err)
	}

	// Expand the curation file path if set.
	if err := cfg.expandCurationFilePath(); err != nil {
		return nil, fmt.Errorf("invalid curation file path: %w", err)
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Store.DataPath == "" {
		return errors.New("data path cannot be empty after expansion")
	}

	if c.Swipes.RateLimit <= 0 {
		return fmt.Errorf("swipe rate limit must be positive, got %v", c.Swipes.RateLimit)
	}
	if c.Swipes.RateBurst <= 0 {
		return fmt.Errorf("swipe burst must be positive, got %d", c.Swipes.RateBurst)
	}
	if c.Swipes.BatchSize <= 0 {
		return fmt.Errorf("photo batch size must be positive, got %d", c.Swipes.BatchSize)
	}

	// CurationFile can be empty - photos can be seeded via cmd/seed.

	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// expandDataPath expands ~ and makes the path absolute.
func (c *Config) expandDataPath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "FitFi", "data")

	expanded, err := expandPath(c.Store.DataPath, defaultPath)
	if err != nil {
		return err
	}
	c.Store.DataPath = expanded
	return nil
}

// expandGamificationDBPath expands ~ and makes the path absolute.
// Defaults to {data}/gamification.db if not specified.
func (c *Config) expandGamificationDBPath() error {
	defaultPath := filepath.Join(c.Store.DataPath, "gamification.db")

	expanded, err := expandPath(c.Gamification.DBPath, defaultPath)
	if err != nil {
		return err
	}
	c.Gamification.DBPath = expanded
	return nil
}

// expandCurationFilePath expands ~ and makes the path absolute.
// If empty, leaves it empty; curation is optional.
func (c *Config) expandCurationFilePath() error {
	if c.Curation.FilePath == "" {
		return nil
	}

	expanded, err := expandPath(c.Curation.FilePath, "")
	if err != nil {
		return err
	}
	c.Curation.FilePath = expanded
	return nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getBoolConfigValue returns a bool from flag, env var, or default.
// Accepts: "true", "1", "yes" (case-insensitive) as true; anything else is false.
func getBoolConfigValue(flagValue, envKey string, defaultValue bool) bool {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	strValue = strings.ToLower(strValue)
	return strValue == "true" || strValue == "1" || strValue == "yes"
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// getFloatConfigValue returns a float64 from flag, env var, or default.
func getFloatConfigValue(flagValue, envKey string, defaultValue float64) float64 {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result float64
	if _, err := fmt.Sscanf(strValue, "%g", &result); err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
