// Package curation loads mood-photo reference data from a curated JSON
// file and keeps the photo store in sync when that file changes.
package curation

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fitfi/fitfi-server/internal/color"
	"github.com/fitfi/fitfi-server/internal/domain"
	"github.com/fitfi/fitfi-server/internal/normalize"
	"github.com/fitfi/fitfi-server/internal/validation"
)

// PhotoStore is the subset of the preference store the loader writes to.
type PhotoStore interface {
	UpsertMoodPhoto(ctx context.Context, photo *domain.MoodPhoto) error
}

// photoRecord is the on-disk shape of one curated photo.
type photoRecord struct {
	ID               string             `json:"id" validate:"required"`
	ImageURL         string             `json:"image_url" validate:"required,url"`
	StyleTags        []string           `json:"style_tags"`
	MoodTags         []string           `json:"mood_tags"`
	ArchetypeWeights map[string]float64 `json:"archetype_weights"`
	DominantColors   []string           `json:"dominant_colors"`
	Occasion         string             `json:"occasion"`
	Season           string             `json:"season"`
	Active           *bool              `json:"active"`
	DisplayOrder     int                `json:"display_order" validate:"gte=0"`
}

// Loader reads a curation file and upserts its photos into the store.
// Records that fail validation are skipped with a warning rather than
// failing the whole load, so one bad entry cannot empty the deck.
type Loader struct {
	store     PhotoStore
	validator *validation.Validator
	logger    *slog.Logger
}

// NewLoader creates a curation loader.
func NewLoader(store PhotoStore, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		store:     store,
		validator: validation.New(),
		logger:    logger,
	}
}

// Load reads the curation file at path and upserts every valid photo.
// Returns the number of photos upserted.
func (l *Loader) Load(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read curation file: %w", err)
	}

	var records []photoRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parse curation file: %w", err)
	}

	loaded := 0
	for i, rec := range records {
		if err := l.validator.Validate(rec); err != nil {
			l.logger.Warn("skipping invalid curation record",
				"index", i,
				"id", rec.ID,
				"error", err)
			continue
		}

		photo := rec.toPhoto()
		if err := l.store.UpsertMoodPhoto(ctx, photo); err != nil {
			return loaded, fmt.Errorf("upsert photo %s: %w", photo.ID, err)
		}
		loaded++
	}

	l.logger.Info("curation file loaded",
		"path", path,
		"total", len(records),
		"loaded", loaded,
		"skipped", len(records)-loaded)

	return loaded, nil
}

// toPhoto converts a validated record to the domain type, normalizing
// tags and color names so downstream analyses see one vocabulary.
func (rec photoRecord) toPhoto() *domain.MoodPhoto {
	active := true
	if rec.Active != nil {
		active = *rec.Active
	}

	colors := make([]string, 0, len(rec.DominantColors))
	for _, c := range rec.DominantColors {
		if name := color.Normalize(c); name != "" {
			colors = append(colors, name)
		}
	}

	return &domain.MoodPhoto{
		ID:               rec.ID,
		ImageURL:         rec.ImageURL,
		StyleTags:        normalize.Tokens(rec.StyleTags),
		MoodTags:         normalize.Tokens(rec.MoodTags),
		ArchetypeWeights: rec.ArchetypeWeights,
		DominantColors:   colors,
		Occasion:         normalize.Token(rec.Occasion),
		Season:           normalize.Token(rec.Season),
		Active:           active,
		DisplayOrder:     rec.DisplayOrder,
		CreatedAt:        time.Now(),
	}
}
