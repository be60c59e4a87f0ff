// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/name-picker/cliparse"
	"github.com/danielhkuo/name-picker/dataset"
	"github.com/danielhkuo/name-picker/db"
	"github.com/danielhkuo/name-picker/middleware"
	"github.com/danielhkuo/name-picker/models"
	"github.com/danielhkuo/name-picker/router"
	"github.com/danielhkuo/name-picker/session"
	"github.com/danielhkuo/name-picker/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg.LogFormat))

	// Connect to the key-value database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	names := loadNames(cfg.NamesFile)
	mgr := session.NewManager(store.NewSQL(dbConn), names, nil)

	// Create router
	mux := router.NewRouter(mgr)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// newLogger picks a text handler for terminals and JSON otherwise,
// unless the format was given explicitly.
func newLogger(format string) *slog.Logger {
	if format == cliparse.LogFormatAuto {
		format = cliparse.LogFormatJSON
		if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			format = cliparse.LogFormatText
		}
	}

	if format == cliparse.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// loadNames reads the configured dataset, falling back to the embedded one.
// A dataset that fails to load leaves the session with nothing to present.
func loadNames(path string) []models.NameRecord {
	var (
		names []models.NameRecord
		err   error
	)
	if path != "" {
		names, err = dataset.LoadFile(path)
	} else {
		names, err = dataset.Default()
	}
	if err != nil {
		slog.Error("failed to load names", "file", path, "error", err)
		return []models.NameRecord{}
	}

	slog.Info("names loaded", "count", len(names), "file", path)
	return names
}
