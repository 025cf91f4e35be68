// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// writeSQLite replaces the sentiment table in the database at path with rows.
func writeSQLite(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DROP TABLE IF EXISTS sentiment`,
		`CREATE TABLE sentiment (
			row INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			sentiment_score REAL NOT NULL
		)`,
		`CREATE INDEX idx_sentiment_date ON sentiment(date)`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("creating sentiment table: %w", err)
		}
	}

	insert, err := tx.Prepare(`INSERT INTO sentiment (date, sentiment_score) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	for _, r := range rows {
		if _, err := insert.Exec(r.Date, r.SentimentScore); err != nil {
			return fmt.Errorf("inserting %s: %w", r.Date, err)
		}
	}
	return tx.Commit()
}
