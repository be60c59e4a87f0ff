// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite (default) or postgres
  - DatabaseURL: connection string (default for sqlite: file:names.db)
  - NamesFile: dataset file; the embedded list is used when empty
  - LogFormat: auto (default), text, json

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-names       Dataset file
	-log-format  Log format

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	NAMES_FILE    → -names
	LOG_FORMAT    → -log-format

A .env file in the working directory is loaded before flags are read. It never
overrides variables already set. CLI flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - PORT is not a number
  - DATABASE_TYPE is not sqlite or postgres
  - DATABASE_URL is missing for postgres
  - LOG_FORMAT is not auto, text or json
*/
package cliparse
