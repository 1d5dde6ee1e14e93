package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	_ "github.com/lib/pq"

	"ledger-analytics/internal/app"
	"ledger-analytics/internal/database"
	"ledger-analytics/internal/models"
	"ledger-analytics/internal/services"
)

type migrateCmd struct {
	seed bool
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply pending SQL migrations" }
func (*migrateCmd) Usage() string {
	return `migrate [-seed]

  Applies the migrations found in MIGRATIONS_PATH. With -seed, also runs the
  SQL files of SEEDS_PATH.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.seed, "seed", false, "Load seed data after migrating")
}

func (c *migrateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer sqlDB.Close()

	migrations := cfg.Migrations
	migrations.AutoMigrate = true
	migrations.Seed = c.seed
	if err := database.RunMigrationsIfEnabled(ctx, sqlDB, migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Error migrating: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type seedCmd struct {
	months   int
	currency string
	seed     int64
}

func (*seedCmd) Name() string     { return "seed-ledger" }
func (*seedCmd) Synopsis() string { return "insert synthetic ledger history" }
func (*seedCmd) Usage() string {
	return `seed-ledger [-months <n>] [-currency <code>] [-seed <n>]

  Generates salary, bills and daily purchases over the last n months across
  the leaf categories already in the database. Development databases only.
`
}

func (c *seedCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 24, "Number of months of history to generate")
	f.StringVar(&c.currency, "currency", "USD", "Currency of the generated entries, 3-letter code")
	f.Int64Var(&c.seed, "seed", 0, "Random seed, 0 picks one from the clock")
}

func (c *seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c.currency = strings.ToUpper(c.currency)
	if c.months <= 0 || !models.IsValidCurrencyCode(c.currency) {
		fmt.Fprintln(os.Stderr, "Error: -months must be positive and -currency a 3-letter code.")
		return subcommands.ExitUsageError
	}

	a, db, err := openApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	categories, err := a.Categories.GetAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading categories: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(categories) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no categories found, run 'migrate -seed' first.")
		return subcommands.ExitFailure
	}

	end := time.Now().UTC()
	start := end.AddDate(0, -c.months, 0)
	entries := services.NewLedgerGenerator(c.seed).Generate(categories, start, end, c.currency)
	if err := a.LedgerWriter.CreateBatch(ctx, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error inserting entries: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("inserted %d ledger entries from %s to %s\n", len(entries), start.Format("2006-01-02"), end.Format("2006-01-02"))
	return subcommands.ExitSuccess
}

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "rebuild every aggregate view from the ledger" }
func (*refreshCmd) Usage() string {
	return `refresh

  Rebuilds the aggregate views once and prints the refresh report. The new
  generation is persisted when ANALYTICS_PERSIST_SNAPSHOTS is enabled.
`
}

func (*refreshCmd) SetFlags(*flag.FlagSet) {}

func (*refreshCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, db, err := openApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	report, err := a.Store.Refresh(ctx, time.Now().UTC())
	if report != nil {
		_ = printJSON(report)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error refreshing: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type forecastCmd struct {
	model    string
	stream   string
	currency string
	horizon  int
	all      bool
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "forecast a monthly stream" }
func (*forecastCmd) Usage() string {
	return `forecast [-model <kind>] [-stream <income|expenses|net>] [-currency <code>] [-horizon <n>] | -all

  Prints one model's forecast, or every model's forecast with -all.
  Models: linear, exponential, seasonal, category.
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "linear", "Forecast model")
	f.StringVar(&c.stream, "stream", "", "Stream to forecast, defaults per model")
	f.StringVar(&c.currency, "currency", "", "Currency, defaults to ANALYTICS_DEFAULT_CURRENCY")
	f.IntVar(&c.horizon, "horizon", 0, "Months to forecast, defaults to ANALYTICS_DEFAULT_HORIZON")
	f.BoolVar(&c.all, "all", false, "Run every model")
}

func (c *forecastCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind := models.ModelKind(strings.ToLower(c.model))
	if !c.all && !kind.IsValid() {
		fmt.Fprintf(os.Stderr, "Error: unknown model %q\n", c.model)
		return subcommands.ExitUsageError
	}

	a, db, err := openApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if err := ensureAggregates(ctx, a); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.all {
		results, errs := a.Forecasts.ForecastAll(ctx, c.currency, c.horizon)
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, "Unavailable:", err)
		}
		if err := printJSON(results); err != nil {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	result, err := a.Forecasts.Forecast(ctx, services.ForecastRequest{
		Model:    kind,
		Stream:   models.Stream(strings.ToLower(c.stream)),
		Currency: c.currency,
		Horizon:  c.horizon,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error forecasting: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printJSON(result); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type insightsCmd struct {
	currency  string
	narrative bool
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "print the structured insight payload" }
func (*insightsCmd) Usage() string {
	return `insights [-currency <code>] [-narrative]

  Prints aggregates, forecasts, risk, goals and scenarios as one JSON
  document. -narrative asks the configured model for a written summary.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "Currency, defaults to ANALYTICS_DEFAULT_CURRENCY")
	f.BoolVar(&c.narrative, "narrative", false, "Include a generated narrative")
}

func (c *insightsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, db, err := openApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if err := ensureAggregates(ctx, a); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	payload, err := a.Insights.Generate(ctx, strings.ToUpper(c.currency), c.narrative)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating insights: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printJSON(payload); err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// ensureAggregates refreshes once when no snapshot was restored.
func ensureAggregates(ctx context.Context, a *app.App) error {
	if a.Store.Version() > 0 {
		return nil
	}
	if _, err := a.Store.Refresh(ctx, time.Now().UTC()); err != nil {
		var refreshErr *services.RefreshError
		if errors.As(err, &refreshErr) {
			return fmt.Errorf("building view %s: %w", refreshErr.View, refreshErr.Err)
		}
		return err
	}
	return nil
}
