// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the key-value persistence service the voting session
writes through to.

# Interface

	type Store interface {
		Get(key string) (value string, ok bool, err error)
		Set(key, value string) error
		Delete(key string) error
	}

# Implementations

  - Memory: map-backed, used in tests and as a throwaway backend
  - SQL: one row per key in the kv table, works with sqlite and postgres

Open a SQL store through the db package:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil { ... }
	if err := db.CreateSchema(conn); err != nil { ... }
	kv := store.NewSQL(conn)
*/
package store
