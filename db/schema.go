// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"regexp"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

var placeholder = regexp.MustCompile(`\$\d+`)

// Rebind rewrites $N placeholders to ? for drivers that only understand
// positional question marks. Queries are written postgres-style.
func Rebind(dialect, query string) string {
	if dialect != "sqlite" {
		return query
	}
	return placeholder.ReplaceAllString(query, "?")
}

// The schema is shared by postgres and sqlite, so it sticks to the common
// subset of both dialects.
const schema = `
-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    team TEXT NOT NULL,
    voted_at TIMESTAMP NOT NULL,
    ip_hash TEXT
);

CREATE INDEX IF NOT EXISTS idx_vote_team ON vote(team);
CREATE INDEX IF NOT EXISTS idx_vote_voted_at ON vote(voted_at);
`
