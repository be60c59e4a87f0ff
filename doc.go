// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the name-picker API server.

name-picker presents baby names one at a time from a fixed dataset. Each
name gets a thumbs-up or thumbs-down, and the session keeps going until
the pool runs out. Votes, the remaining pool and the presented name are
persisted after every change, so a restart picks up where it left off.

# Starting the Server

With no configuration the server uses a local SQLite file and the
embedded dataset:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -names names.yaml

# Configuration

Settings come from flags, then the environment, then a .env file:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:names.db for sqlite)
  - NAMES_FILE (-names): JSON or YAML dataset replacing the embedded one
  - LOG_FORMAT (-log-format): auto, text or json

# Architecture

  - session: Pure session transitions, persistence and the Manager
  - store: Key-value storage (memory and SQL)
  - dataset: Embedded names, file loading and schema validation
  - export: CSV and mail rendering of results
  - handlers: HTTP request handlers (voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request IDs, logging, JSON helpers
  - models: Domain, request and response types
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
