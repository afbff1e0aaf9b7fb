package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	DatabasePath    string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	RunMigrations   bool
	Logger          *logrus.Logger
}

// DefaultConnectionConfig returns a default configuration
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		DatabasePath:    "./data/service_requests.db",
		MaxOpenConns:    1, // SQLite works best with single connection
		ConnMaxLifetime: time.Hour,
		RunMigrations:   true,
		Logger:          logrus.New(),
	}
}

// Open opens the SQLite database, creating its directory if needed, and
// applies pending migrations when configured to.
func Open(cfg *ConnectionConfig) (*sql.DB, error) {
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	dbPath := cfg.DatabasePath
	if dbPath != ":memory:" {
		abs, err := filepath.Abs(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute database path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dbPath = abs
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if cfg.RunMigrations {
		if err := NewMigrationManager(db, cfg.Logger).RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
	}

	cfg.Logger.WithField("db_path", dbPath).Info("Database connection established")
	return db, nil
}
