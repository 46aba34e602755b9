package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/castellano-app/castellano-backend/internal/corpus"
	"github.com/castellano-app/castellano-backend/internal/data/db"
	"github.com/castellano-app/castellano-backend/internal/data/repos/practice"
	"github.com/castellano-app/castellano-backend/internal/platform/logger"
)

// loadverbs imports a verb frequency TSV into the verbs table so top<N>
// classes have something to draw from.
func main() {
	_ = godotenv.Load()

	path := flag.String("file", "data/tubelex_verbs.tsv", "path to the verb frequency TSV")
	flag.Parse()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	dbService, err := db.NewService(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err := dbService.AutoMigrateAll(); err != nil {
		log.Error("Database automigrate failed", "error", err)
		os.Exit(1)
	}

	entries, err := corpus.ParseVerbsFile(*path)
	if err != nil {
		log.Error("Parsing verbs file failed", "error", err, "file", *path)
		os.Exit(1)
	}
	if len(entries) == 0 {
		log.Warn("No usable entries in verbs file", "file", *path)
		os.Exit(1)
	}

	verbRepo := practice.NewVerbRepo(dbService.DB(), log)
	stats, err := corpus.Populate(context.Background(), dbService.DB(), verbRepo, entries, log)
	if err != nil {
		log.Error("Populating verbs failed", "error", err)
		os.Exit(1)
	}
	log.Info("Import complete",
		"file", *path, "added", stats.Added, "updated", stats.Updated, "skipped", stats.Skipped)
}
