// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same schema runs on PostgreSQL and SQLite.

# Tables

  - vote: one row per accepted vote (id, team, voted_at, ip_hash)

Votes are append-only. Counts are always computed with GROUP BY team, never
stored.

# Placeholders

Queries are written with $N placeholders. Rebind converts them for SQLite:

	q := db.Rebind("sqlite", "SELECT COUNT(*) FROM vote WHERE voted_at >= $1")
	// SELECT COUNT(*) FROM vote WHERE voted_at >= ?
*/
package db
