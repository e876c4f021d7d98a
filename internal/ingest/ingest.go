package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/zjtippetts/NBA-Database/internal/category"
	"github.com/zjtippetts/NBA-Database/internal/logger"
	"github.com/zjtippetts/NBA-Database/internal/normalize"
	"github.com/zjtippetts/NBA-Database/internal/store"
	"github.com/zjtippetts/NBA-Database/internal/table"
)

// Fetcher retrieves one (season, category) stats table.
type Fetcher interface {
	FetchTable(ctx context.Context, year int, cat category.Category) (*table.Raw, error)
}

// Runner ingests seasons into a store.
type Runner struct {
	fetcher Fetcher
	store   *store.Store
}

// NewRunner creates a Runner over the given fetcher and store.
func NewRunner(fetcher Fetcher, st *store.Store) *Runner {
	return &Runner{
		fetcher: fetcher,
		store:   st,
	}
}

// Run ingests every (season, category) pair in order. Fetch and parse
// failures skip the category and continue; cancellation and storage failures
// abort, returning the partial result alongside the error. Each merge is
// persisted as a complete unit, so an aborted run corrupts nothing already
// merged.
func (r *Runner) Run(ctx context.Context, seasons []int, categories []category.Category) (Result, error) {
	var result Result
	result.Seasons = len(seasons)

	for _, season := range seasons {
		logger.Info("ingesting season", logger.Fields{
			"season":     season,
			"categories": len(categories),
		})
		for _, c := range categories {
			if err := ctx.Err(); err != nil {
				result.AddErrorf("run canceled: %v", err)
				return result, err
			}
			if err := r.ingestOne(ctx, season, c, &result); err != nil {
				return result, err
			}
		}
	}

	logger.Info("run complete", logger.Fields{"summary": result.Summary()})
	return result, nil
}

// ingestOne processes a single (season, category) unit. A nil return means
// the unit was merged or skipped; an error is fatal to the run.
func (r *Runner) ingestOne(ctx context.Context, season int, c category.Category, result *Result) error {
	start := time.Now()
	raw, err := r.fetcher.FetchTable(ctx, season, c)
	if err != nil {
		if ctx.Err() != nil {
			result.AddErrorf("run canceled: %v", ctx.Err())
			return ctx.Err()
		}
		logger.Warn("skipping category", logger.Fields{
			"season":   season,
			"category": c.Key,
		}, err)
		logger.IncrCounter("categories.skipped")
		result.Skipped++
		result.AddErrorf("season %d %s: %v", season, c.Key, err)
		return nil
	}
	logger.RecordTiming("fetch."+c.Key, time.Since(start))

	tbl, stats := normalize.Apply(c, raw, season)
	if stats.NameFallback {
		logger.Debug("aligned rows by player name", logger.Fields{
			"season":   season,
			"category": c.Key,
		})
	}
	if stats.RowsDropped > 0 {
		logger.Warn("dropped rows without identity", logger.Fields{
			"season":   season,
			"category": c.Key,
			"rows":     stats.RowsDropped,
		}, nil)
	}

	merged, err := r.store.MergeSeason(season, c, tbl)
	if err != nil {
		return fmt.Errorf("merging season %d %s: %w", season, c.Key, err)
	}

	logger.Info("merged season", logger.Fields{
		"season":          season,
		"category":        c.Key,
		"rows":            stats.RowsOut,
		"cumulative_rows": len(merged.Rows),
	})
	logger.AddCounter("rows.merged", int64(stats.RowsOut))
	logger.AddCounter("rows.dropped", int64(stats.RowsDropped))
	logger.SetGauge("rows.cumulative."+c.Key, float64(len(merged.Rows)))

	result.Categories++
	result.RowsMerged += stats.RowsOut
	result.RowsDropped += stats.RowsDropped
	return nil
}

// Rebuild reconstructs every cumulative table from the stored season
// snapshots, without touching the network.
func Rebuild(st *store.Store, categories []category.Category) (Result, error) {
	var result Result
	seen := make(map[int]bool)

	for _, c := range categories {
		seasons, rows, err := st.RebuildCategory(c)
		if err != nil {
			result.AddErrorf("rebuilding %s: %v", c.Key, err)
			return result, fmt.Errorf("rebuilding %s: %w", c.Key, err)
		}
		if len(seasons) == 0 {
			logger.Debug("no snapshots for category", logger.Fields{"category": c.Key})
			continue
		}

		logger.Info("rebuilt category", logger.Fields{
			"category": c.Key,
			"seasons":  len(seasons),
			"rows":     rows,
		})
		result.Categories++
		result.RowsMerged += rows
		for _, season := range seasons {
			seen[season] = true
		}
	}

	result.Seasons = len(seen)
	return result, nil
}
