package ingest

import "fmt"

// Result tracks counts and errors from one run.
type Result struct {
	Seasons     int
	Categories  int
	Skipped     int
	RowsMerged  int
	RowsDropped int
	Errors      []string
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Partial reports whether the run completed with skipped categories.
func (r *Result) Partial() bool {
	return r.Skipped > 0
}

// Summary returns a one-line human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"seasons=%d categories=%d skipped=%d rows_merged=%d rows_dropped=%d errors=%d",
		r.Seasons, r.Categories, r.Skipped,
		r.RowsMerged, r.RowsDropped, len(r.Errors),
	)
}
