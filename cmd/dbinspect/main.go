// Package main provides a read-only dump of the preference store for
// debugging: photo deck size, swipe counts, profiles and their lock
// state, snapshot and feedback volumes.
//
// Usage:
//
//	DATA_PATH=~/FitFi/data go run ./cmd/dbinspect
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dgraph-io/badger/v4"

	"github.com/fitfi/fitfi-server/internal/domain"
)

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/FitFi/data")
	}
	dbPath := filepath.Join(dataPath, "db")

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Preference Store Inspection ===")
	fmt.Println()

	inspectPhotos(db)
	inspectSwipes(db)
	inspectProfiles(db)

	fmt.Println("=== Volumes ===")
	fmt.Printf("Snapshots: %d\n", countPrefix(db, "snapshot:"))
	fmt.Printf("Calibration feedback: %d\n", countPrefix(db, "feedback:"))
	fmt.Printf("Insights: %d\n", countPrefix(db, "insight:"))
	fmt.Printf("Completed swipe sessions: %d\n", countPrefix(db, "swipesession:"))
}

func inspectPhotos(db *badger.DB) {
	total := 0
	active := 0

	err := scan(db, "photo:", func(val []byte) error {
		var photo domain.MoodPhoto
		if err := json.Unmarshal(val, &photo); err != nil {
			return err
		}
		total++
		if photo.Active {
			active++
		}
		if total <= 3 {
			fmt.Printf("Photo: %s\n", photo.ID)
			fmt.Printf("  Style tags: %v\n", photo.StyleTags)
			fmt.Printf("  Archetype weights: %v\n", photo.ArchetypeWeights)
			fmt.Printf("  Colors: %v\n", photo.DominantColors)
			fmt.Println()
		}
		return nil
	})
	if err != nil {
		log.Printf("Error scanning photos: %v", err)
	}

	fmt.Printf("Mood photos: %d (%d active)\n\n", total, active)
}

func inspectSwipes(db *badger.DB) {
	total := 0
	likes := 0

	err := scan(db, "swipe:", func(val []byte) error {
		var swipe domain.StyleSwipe
		if err := json.Unmarshal(val, &swipe); err != nil {
			return err
		}
		total++
		if swipe.Liked() {
			likes++
		}
		return nil
	})
	if err != nil {
		log.Printf("Error scanning swipes: %v", err)
	}

	fmt.Printf("Swipes: %d (%d likes, %d rejects)\n\n", total, likes, total-likes)
}

func inspectProfiles(db *badger.DB) {
	total := 0
	locked := 0

	err := scan(db, "styleprofile:", func(val []byte) error {
		var profile domain.StyleProfile
		if err := json.Unmarshal(val, &profile); err != nil {
			return err
		}
		total++
		if profile.IsLocked() {
			locked++
		}
		if total <= 3 {
			fmt.Printf("Profile: %s (identity %s)\n", profile.ID, profile.Identity())
			fmt.Printf("  Archetype: %s", profile.Archetype)
			if profile.SecondaryArchetype != "" {
				fmt.Printf(" / %s", profile.SecondaryArchetype)
			}
			fmt.Println()
			fmt.Printf("  Source: %s, confidence %.1f, version %d\n",
				profile.DataSource, profile.Confidence, profile.Version)
			fmt.Printf("  Lock state: %s\n", profile.LockState())
			fmt.Println()
		}
		return nil
	})
	if err != nil {
		log.Printf("Error scanning profiles: %v", err)
	}

	fmt.Printf("Profiles: %d (%d locked)\n\n", total, locked)
}

// scan iterates every value under a key prefix.
func scan(db *badger.DB, prefix string, fn func(val []byte) error) error {
	return db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}

func countPrefix(db *badger.DB, prefix string) int {
	count := 0
	err := scan(db, prefix, func([]byte) error {
		count++
		return nil
	})
	if err != nil {
		log.Printf("Error counting %s keys: %v", prefix, err)
	}
	return count
}
