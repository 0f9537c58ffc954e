package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema is declared explicitly rather than generated from struct tags.
// The uniqueness constraint on username and on (who, whom) is what lets the
// repositories turn concurrent duplicate inserts into reported conflicts
// instead of silent duplicate rows.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id       SERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email    TEXT NOT NULL,
		pw_hash  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS followers (
		who  INTEGER NOT NULL REFERENCES users(id),
		whom INTEGER NOT NULL REFERENCES users(id),
		UNIQUE (who, whom)
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id       SERIAL PRIMARY KEY,
		author   INTEGER NOT NULL REFERENCES users(id),
		text     TEXT NOT NULL,
		pub_date BIGINT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_author_pub_date ON messages (author, pub_date DESC)`,
	`CREATE TABLE IF NOT EXISTS entries (
		id    SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		body  TEXT NOT NULL
	)`,
}

// EnsureSchema creates the tables if they do not exist yet. Safe to run on
// every startup.
func EnsureSchema(db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
