// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the backing database and creates its schema.

# Drivers

	sqlite   -> modernc.org/sqlite (pure Go, default)
	postgres -> github.com/lib/pq

	conn, err := db.Open(db.TypeSQLite, "file:names.db")

# Schema

	kv (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMP NOT NULL)

CreateSchema is idempotent and is called once at startup.
*/
package db
