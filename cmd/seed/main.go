// Package main provides a tool to seed the preference store with mood
// photos from a curation file.
//
// This performs the same validated load the server runs at startup, so a
// deck can be prepared before the server ever starts.
//
// Usage:
//
//	DATA_PATH=~/FitFi/data go run ./cmd/seed --file curation.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fitfi/fitfi-server/internal/curation"
	"github.com/fitfi/fitfi-server/internal/store"
)

var curationFile = flag.String("file", "", "Path to the curation JSON file (required)")

func main() {
	flag.Parse()

	if *curationFile == "" {
		log.Fatal("--file is required")
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/FitFi/data")
	}
	dbPath := filepath.Join(dataPath, "db")

	fmt.Printf("Opening preference store at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	loader := curation.NewLoader(s, nil)
	count, err := loader.Load(context.Background(), *curationFile)
	if err != nil {
		log.Fatalf("Failed to load curation file: %v", err)
	}

	fmt.Printf("Seeded %d mood photos from %s\n", count, *curationFile)
}
