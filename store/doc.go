// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements ledger.Store on top of the supported databases.

  - SQLStore: PostgreSQL (lib/pq) or SQLite (modernc.org/sqlite) via database/sql
  - MongoStore: MongoDB, one document per vote in the votes collection

Open picks one from the configuration:

	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()
*/
package store
