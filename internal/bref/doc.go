// Package bref provides HTTP fetching and HTML table extraction for
// Basketball-Reference league stat pages.
//
// The bref package fetches one public league page per (season, category) pair
// and extracts its stats table in raw form: header labels (one or two
// levels), data rows, and the per-row player identifiers embedded in profile
// links. Requests share a rate limiter sized to the site's documented
// 20-requests-per-minute ban threshold, and transient failures retry with
// exponential backoff.
package bref
