package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/amconceito/storefront/internal/infrastructure/config"
	"github.com/amconceito/storefront/internal/infrastructure/logger"
	"github.com/amconceito/storefront/internal/infrastructure/persistence"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	log.Info("Running schema migration")
	if err := db.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}
	log.Info("Migration complete")
}
