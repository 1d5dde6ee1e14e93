package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"ledger-analytics/internal/app"
	"ledger-analytics/internal/config"
	"ledger-analytics/internal/database"
)

var envFile = flag.String("env-file", ".env", "Path to an optional .env file")

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&migrateCmd{}, "database")
	subcommands.Register(&seedCmd{}, "database")

	subcommands.Register(&refreshCmd{}, "analytics")
	subcommands.Register(&forecastCmd{}, "analytics")
	subcommands.Register(&insightsCmd{}, "analytics")

	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *envFile, err)
		os.Exit(int(subcommands.ExitFailure))
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}

// loadConfig reads the environment shared with the API server.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// openApp connects without running migrations and wires the analytics services.
func openApp(ctx context.Context) (*app.App, *database.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	a, err := app.New(ctx, cfg, db.DB, nil, slog.Default())
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return a, db, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
