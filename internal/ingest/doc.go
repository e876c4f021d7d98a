// Package ingest drives the scrape flow: fetch, normalize, merge, persist.
//
// The runner is deliberately sequential. One category is fully processed
// before the next and one season before the next, keeping the fetch cadence
// inside the site's request budget. A category that fails to fetch or parse
// is skipped with a warning; the run aborts only on cancellation or a
// storage failure.
package ingest
