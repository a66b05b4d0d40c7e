package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DB is the global database connection
var DB *sqlx.DB

// Connect establishes a connection to the database. By default a SQLite
// file under the data directory is used; PRACTICE_DB_DRIVER and
// PRACTICE_DB_DSN select PostgreSQL instead.
func Connect() error {
	driver := os.Getenv("PRACTICE_DB_DRIVER")
	if driver == "" {
		driver = "sqlite3"
	}

	dsn := os.Getenv("PRACTICE_DB_DSN")
	if dsn == "" {
		if driver != "sqlite3" {
			return fmt.Errorf("PRACTICE_DB_DSN is required for driver %s", driver)
		}
		dataDir := DataDir()
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %v", err)
		}
		dsn = filepath.Join(dataDir, "engpractice.db")
	}

	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %v", err)
	}

	if driver == "sqlite3" {
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to enable foreign keys: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	DB = db

	return initializeSchema()
}

// DataDir returns the directory for local data files.
func DataDir() string {
	if dir := os.Getenv("PRACTICE_DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema() error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if DB.DriverName() == "postgres" {
		idColumn = "SERIAL PRIMARY KEY"
	}

	_, err := DB.Exec(`
		CREATE TABLE IF NOT EXISTS exercise_stats (
			exercise_id TEXT PRIMARY KEY,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			total_correct INTEGER NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create exercise_stats table: %v", err)
	}

	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS results (
			id %s,
			exercise_id TEXT NOT NULL,
			total_items INTEGER NOT NULL,
			attempted INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			duration INTEGER DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, idColumn))
	if err != nil {
		return fmt.Errorf("failed to create results table: %v", err)
	}

	_, err = DB.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS spelling_words (
			id %s,
			word TEXT NOT NULL UNIQUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, idColumn))
	if err != nil {
		return fmt.Errorf("failed to create spelling_words table: %v", err)
	}

	return nil
}
