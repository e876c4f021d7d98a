// Package store persists normalized stat tables as CSV under a data
// directory.
//
// Each ingested season leaves two artifacts per category: a per-season
// snapshot under <data-dir>/<year>/ and an updated cumulative table under
// <data-dir>/all_years/. Merging is idempotent: re-ingesting a season
// replaces that season's rows in the cumulative table and leaves every other
// season untouched, so the cumulative tables can also be rebuilt from the
// snapshots alone.
package store
