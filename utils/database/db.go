package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the sqlite database and ensures the schema exists. Window and
// form columns are nullable on purpose: NULL means "not configured", which
// is distinct from configured-but-empty.
func Init(dbPath string) (*sqlx.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS guilds (
	          guild_id INTEGER NOT NULL PRIMARY KEY,
	          form_url TEXT,
	          entry_id TEXT,
	          day INTEGER,
	          start_hour INTEGER,
	          start_minute INTEGER,
	          end_hour INTEGER,
	          end_minute INTEGER
	      );
	      CREATE TABLE IF NOT EXISTS timezones (
	          guild_id INTEGER NOT NULL PRIMARY KEY,
	          offset_minutes INTEGER NOT NULL
	      );
	      CREATE TABLE IF NOT EXISTS attendances (
	          guild_id INTEGER NOT NULL,
	          user_id INTEGER NOT NULL,
	          marked_date TEXT NOT NULL,
	          form_url TEXT,
	          PRIMARY KEY (guild_id, user_id)
	      );`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}
