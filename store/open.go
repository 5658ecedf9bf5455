// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/danielhkuo/gameday/cliparse"
	"github.com/danielhkuo/gameday/ledger"
)

var (
	_ ledger.Store = (*SQLStore)(nil)
	_ ledger.Store = (*MongoStore)(nil)
)

// Open returns the vote store selected by cfg.DatabaseType.
func Open(ctx context.Context, cfg cliparse.Config) (ledger.Store, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabasePostgres, cliparse.DatabaseSQLite:
		return OpenSQL(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	case cliparse.DatabaseMongo:
		return OpenMongo(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}
}
