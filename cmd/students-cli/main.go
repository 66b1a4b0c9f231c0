// main is the entry point of the students-cli application.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file, env vars, or built-in defaults)
//  2. Initialise the logger
//  3. Open the persistence backend (flat text file or SQLite)
//  4. Construct the student service, which loads all records
//  5. Run the interactive menu loop until the user exits
//
// RUNNING THE APPLICATION:
//
//	go run ./cmd/students-cli
//
// or with an explicit config:
//
//	go run ./cmd/students-cli --config=config/local.yaml
//	CONFIG_PATH=config/local.yaml go run ./cmd/students-cli
//
// The menu runs on stdin/stdout; log output goes to stderr so the two
// streams don't interleave on the user's screen.
package main

import (
	"log/slog"
	"os"

	"github.com/aanand-mishra/students-cli/internal/config"
	"github.com/aanand-mishra/students-cli/internal/console"
	"github.com/aanand-mishra/students-cli/internal/service"
	"github.com/aanand-mishra/students-cli/internal/storage"
	"github.com/aanand-mishra/students-cli/internal/storage/flatfile"
	"github.com/aanand-mishra/students-cli/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────
	// MustLoad terminates the process if an explicitly named config
	// file is missing or malformed. If it returns, config is valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────
	// slog is Go's structured logger (stdlib since Go 1.21). Structured
	// key=value output keeps diagnostics grep-able even from a CLI.
	log := setupLogger(cfg.Env)

	log.Info("starting students-cli",
		slog.String("env", cfg.Env),
		slog.String("driver", cfg.StorageDriver),
		slog.String("path", cfg.StoragePath),
	)

	// ── 3. Open Storage Backend ───────────────────────────────────────
	// The variable is typed as the storage.Backend INTERFACE, not as a
	// concrete backend — the service only ever sees the interface, so
	// the driver choice stays contained in this switch.
	var backend storage.Backend
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := sqlite.New(cfg.StoragePath)
		if err != nil {
			log.Error("failed to open sqlite storage",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		backend = db
	case config.DriverFile:
		backend = flatfile.New(cfg.StoragePath, log)
	default:
		log.Error("unknown storage driver",
			slog.String("driver", cfg.StorageDriver))
		os.Exit(1)
	}

	// ── 4. Construct the Service ──────────────────────────────────────
	// service.New loads every persisted record into memory; from here
	// on the in-memory collection is the source of truth and the
	// backend is rewritten after each mutation.
	svc := service.New(backend, log)

	// ── 5. Run the Menu Loop ──────────────────────────────────────────
	// Blocks until the user picks Exit (or stdin closes). There is no
	// teardown beyond the deferred backend close: process exit is the
	// destructor.
	ui := console.New(svc, os.Stdin, os.Stdout, log)
	ui.Run()

	log.Info("students-cli stopped")
}

// setupLogger returns a *slog.Logger configured for the given
// environment: human-readable text in dev, JSON for staging and prod
// (easy to ingest by log aggregators). Logs go to stderr so the
// interactive menu on stdout stays clean.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
