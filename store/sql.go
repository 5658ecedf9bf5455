// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/gameday/db"
	"github.com/danielhkuo/gameday/models"
)

// SQLStore keeps votes in the vote table of a PostgreSQL or SQLite database.
type SQLStore struct {
	db      *sql.DB
	dialect string
}

// NewSQLStore wraps an open connection. The schema must already exist.
func NewSQLStore(conn *sql.DB, dialect string) *SQLStore {
	return &SQLStore{db: conn, dialect: dialect}
}

// OpenSQL connects, verifies the connection and creates the schema.
// dialect is "postgres" or "sqlite".
func OpenSQL(ctx context.Context, dialect, url string) (*SQLStore, error) {
	conn, err := sql.Open(dialect, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	if dialect == "sqlite" {
		// One writer at a time; also keeps :memory: databases on one connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return NewSQLStore(conn, dialect), nil
}

func (s *SQLStore) q(query string) string {
	return db.Rebind(s.dialect, query)
}

func (s *SQLStore) InsertVote(ctx context.Context, v models.Vote) error {
	_, err := s.db.ExecContext(ctx, s.q(`
		INSERT INTO vote (id, team, voted_at, ip_hash)
		VALUES ($1, $2, $3, $4)
	`), v.ID, v.Team, v.VotedAt.UTC(), v.IPHash)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

func (s *SQLStore) CountByTeam(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT team, COUNT(*) FROM vote GROUP BY team
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var team string
		var n int
		if err := rows.Scan(&team, &n); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[team] = n
	}
	return counts, rows.Err()
}

func (s *SQLStore) RecentVotes(ctx context.Context, limit int) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT id, team, voted_at, ip_hash
		FROM vote
		ORDER BY voted_at DESC
		LIMIT $1
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent votes: %w", err)
	}
	defer rows.Close()

	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		var ipHash sql.NullString
		if err := rows.Scan(&v.ID, &v.Team, &v.VotedAt, &ipHash); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		v.VotedAt = v.VotedAt.UTC()
		if ipHash.Valid {
			v.IPHash = &ipHash.String
		}
		votes = append(votes, v)
	}
	return votes, rows.Err()
}

func (s *SQLStore) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT COUNT(*) FROM vote WHERE voted_at >= $1
	`), since.UTC()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent votes: %w", err)
	}
	return n, nil
}

func (s *SQLStore) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vote`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete votes: %w", err)
	}
	return res.RowsAffected()
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
