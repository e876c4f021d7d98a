package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/zjtippetts/NBA-Database/internal/bref"
	"github.com/zjtippetts/NBA-Database/internal/category"
	"github.com/zjtippetts/NBA-Database/internal/ingest"
	"github.com/zjtippetts/NBA-Database/internal/logger"
	"github.com/zjtippetts/NBA-Database/internal/store"
)

const (
	ExitSuccess = 0
	ExitError   = 1
	ExitPartial = 2
)

// The BAA's first season finished in 1947, published under the year 1946;
// the upper bound is a sanity cap on mistyped years.
const (
	MinYear = 1946
	MaxYear = 2100
)

var (
	flagDataDir    string
	flagCategories string
	flagFormat     string
	flagVerbose    bool
	flagTimeout    time.Duration
	flagRate       int
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nba-database",
		Short: "Build per-season NBA player stat tables from Basketball-Reference",
		Long: `A CLI tool that scrapes per-season NBA player statistics from
Basketball-Reference, normalizes the eight league stat tables into one
record per player per season, and maintains cumulative all-years CSV
tables that stay consistent across repeated and out-of-order runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Flags shared by every subcommand
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", defaultDataDir(), "Data directory for season snapshots and cumulative tables")
	cmd.PersistentFlags().StringVar(&flagCategories, "categories", "", "Comma-separated stat categories (default all: "+strings.Join(category.Keys(), ",")+")")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newRebuildCmd())
	cmd.AddCommand(newSeasonsCmd())

	return cmd
}

// defaultDataDir resolves the data directory from the environment, falling
// back to ./data.
func defaultDataDir() string {
	if dir := os.Getenv("NBA_DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape <year> [<year>...]",
		Short: "Fetch, normalize and merge one or more seasons",
		Long: `Fetches the selected stat categories for each given season, normalizes
them into per-player-season records, and merges them into the cumulative
tables. Years name the season's final calendar year (2025 means 2024-25)
and may be single values or inclusive ranges like 2020-2024.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScrape,
	}

	cmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Abort the run after this duration (0 means no limit)")
	cmd.Flags().IntVar(&flagRate, "rate", bref.DefaultRequestsPerMinute, "Fetch budget in requests per minute")

	return cmd
}

// runScrape is the main ingestion command logic
func runScrape(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}
	configureLogging()

	seasons, err := ParseSeasons(args)
	if err != nil {
		return err
	}

	categories, err := category.Parse(flagCategories)
	if err != nil {
		return err
	}

	st, err := store.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	// Interrupt cancels between units; snapshots already merged stay merged.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if flagTimeout > 0 {
		var timeoutCancel context.CancelFunc
		ctx, timeoutCancel = context.WithTimeout(ctx, flagTimeout)
		defer timeoutCancel()
	}

	runner := ingest.NewRunner(bref.NewClient(flagRate), st)
	result, runErr := runner.Run(ctx, seasons, categories)

	if err := WriteOutput(os.Stdout, summarize(OperationScrape, seasons, categories, result), format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if flagVerbose {
		logger.Debug("run metrics", logger.GetMetricsSnapshot())
	}

	if runErr != nil {
		return fmt.Errorf("scrape aborted: %w", runErr)
	}
	if result.Partial() {
		os.Exit(ExitPartial)
	}
	return nil
}

func newRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Reconstruct cumulative tables from stored season snapshots",
		Long: `Rebuilds the cumulative all-years table for each selected category by
merging the stored season snapshots in ascending season order. No network
access; the result is identical to re-scraping the same seasons.`,
		Args: cobra.NoArgs,
		RunE: runRebuild,
	}
}

func runRebuild(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}
	configureLogging()

	categories, err := category.Parse(flagCategories)
	if err != nil {
		return err
	}

	st, err := store.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	seasons, err := st.Seasons()
	if err != nil {
		return fmt.Errorf("listing seasons: %w", err)
	}

	result, rebuildErr := ingest.Rebuild(st, categories)

	if err := WriteOutput(os.Stdout, summarize(OperationRebuild, seasons, categories, result), format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if rebuildErr != nil {
		return fmt.Errorf("rebuild failed: %w", rebuildErr)
	}
	return nil
}

func newSeasonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seasons",
		Short: "List the seasons stored per category",
		Args:  cobra.NoArgs,
		RunE:  runSeasons,
	}
}

func runSeasons(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}
	configureLogging()

	categories, err := category.Parse(flagCategories)
	if err != nil {
		return err
	}

	st, err := store.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}

	inv := &Inventory{DataDir: flagDataDir}
	for _, c := range categories {
		seasons, err := st.CategorySeasons(c)
		if err != nil {
			return fmt.Errorf("listing %s seasons: %w", c.Key, err)
		}
		inv.Categories = append(inv.Categories, CategorySeasons{Category: c.Key, Seasons: seasons})
	}

	if err := WriteInventory(os.Stdout, inv, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// ParseSeasons expands and validates the season arguments. Single years and
// inclusive ranges like 2020-2024 are accepted; duplicates collapse to the
// first occurrence, and years outside [MinYear, MaxYear] are skipped with a
// warning. At least one valid season must remain.
func ParseSeasons(args []string) ([]int, error) {
	var seasons []int
	seen := make(map[int]bool)

	add := func(year int) {
		if year < MinYear || year > MaxYear {
			logger.Warn("skipping out-of-range year", logger.Fields{
				"year": year,
				"min":  MinYear,
				"max":  MaxYear,
			}, nil)
			return
		}
		if !seen[year] {
			seen[year] = true
			seasons = append(seasons, year)
		}
	}

	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if from, to, ok := strings.Cut(arg, "-"); ok {
			start, err := strconv.Atoi(from)
			if err != nil {
				return nil, fmt.Errorf("invalid year range %q", arg)
			}
			end, err := strconv.Atoi(to)
			if err != nil {
				return nil, fmt.Errorf("invalid year range %q", arg)
			}
			if end < start {
				return nil, fmt.Errorf("invalid year range %q: end before start", arg)
			}
			for year := start; year <= end; year++ {
				add(year)
			}
			continue
		}

		year, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q", arg)
		}
		add(year)
	}

	if len(seasons) == 0 {
		return nil, fmt.Errorf("no valid seasons given (years must be %d-%d)", MinYear, MaxYear)
	}
	return seasons, nil
}

func parseFormat(value string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(value)))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", value)
	}
	return format, nil
}

// configureLogging switches the default logger to debug level for
// --verbose runs.
func configureLogging() {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}
}

// summarize converts a run result into the output shape.
func summarize(operation string, seasons []int, categories []category.Category, result ingest.Result) *OutputResult {
	keys := make([]string, len(categories))
	for i, c := range categories {
		keys[i] = c.Key
	}
	return &OutputResult{
		Operation:   operation,
		CompletedAt: time.Now().UTC(),
		Seasons:     seasons,
		Categories:  keys,
		Ingested:    result.Categories,
		Skipped:     result.Skipped,
		RowsMerged:  result.RowsMerged,
		RowsDropped: result.RowsDropped,
		Errors:      result.Errors,
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
