// Package table defines the tabular record sets passed between pipeline
// stages: Raw for freshly-extracted tables and Table for normalized,
// column-keyed rows.
package table
