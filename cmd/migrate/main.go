package main

import (
	"flag"
	"fmt"

	"aya-cleaning-api/internal/config"
	"aya-cleaning-api/internal/database"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		dbPath  = flag.String("db", config.GetEnv("SQLITE_PATH", "./data/service_requests.db"), "Database file path")
		action  = flag.String("action", "up", "Migration action: up, down, status")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.WithFields(logrus.Fields{
		"db_path": *dbPath,
		"action":  *action,
	}).Info("Starting migration tool")

	connCfg := database.DefaultConnectionConfig()
	connCfg.DatabasePath = *dbPath
	connCfg.Logger = logger
	connCfg.RunMigrations = false

	db, err := database.Open(connCfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open database")
	}
	defer db.Close()

	manager := database.NewMigrationManager(db, logger)

	switch *action {
	case "up":
		if err := manager.RunMigrations(); err != nil {
			logger.WithError(err).Fatal("Migration up failed")
		}
	case "down":
		if err := manager.RollbackMigration(); err != nil {
			logger.WithError(err).Fatal("Migration down failed")
		}
	case "status":
		info, err := manager.GetMigrationInfo()
		if err != nil {
			logger.WithError(err).Fatal("Failed to get migration status")
		}
		fmt.Printf("Schema version: %d (dirty: %t)\n", info.Version, info.Dirty)
	default:
		logger.Fatalf("Unknown action: %s", *action)
	}
}
