package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

const (
	OperationScrape  = "scrape"
	OperationRebuild = "rebuild"
)

// OutputResult contains the run summary written to stdout
type OutputResult struct {
	Operation   string    `json:"operation"`
	CompletedAt time.Time `json:"completed_at"`
	Seasons     []int     `json:"seasons,omitempty"`
	Categories  []string  `json:"categories"`
	Ingested    int       `json:"ingested"`
	Skipped     int       `json:"skipped"`
	RowsMerged  int       `json:"rows_merged"`
	RowsDropped int       `json:"rows_dropped"`
	Errors      []string  `json:"errors,omitempty"`
}

// CategorySeasons is one category's stored season inventory.
type CategorySeasons struct {
	Category string `json:"category"`
	Seasons  []int  `json:"seasons"`
}

// Inventory lists, per category, the seasons with a stored snapshot.
type Inventory struct {
	DataDir    string            `json:"data_dir"`
	Categories []CategorySeasons `json:"categories"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteInventory writes the season inventory in the specified format
func WriteInventory(w io.Writer, inv *Inventory, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, inv)
	case FormatText:
		return writeInventoryText(w, inv)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	switch result.Operation {
	case OperationRebuild:
		fmt.Fprintln(w, "Rebuild complete.")
	default:
		fmt.Fprintln(w, "Scrape complete.")
	}

	if len(result.Seasons) > 0 {
		fmt.Fprintf(w, "Seasons:    %s\n", formatSeasonList(result.Seasons))
	}
	fmt.Fprintf(w, "Categories: %d merged", result.Ingested)
	if result.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped", result.Skipped)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Rows:       %d merged", result.RowsMerged)
	if result.RowsDropped > 0 {
		fmt.Fprintf(w, ", %d dropped without a player id", result.RowsDropped)
	}
	fmt.Fprintln(w)

	if len(result.Errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Problems:")
		for _, problem := range result.Errors {
			fmt.Fprintf(w, "  %s\n", problem)
		}
	}

	return nil
}

// writeInventoryText outputs the season inventory as an aligned listing.
// Categories without snapshots show a dash.
func writeInventoryText(w io.Writer, inv *Inventory) error {
	fmt.Fprintf(w, "Data directory: %s\n", inv.DataDir)
	for _, cs := range inv.Categories {
		if len(cs.Seasons) == 0 {
			fmt.Fprintf(w, "  %-13s -\n", cs.Category)
			continue
		}
		fmt.Fprintf(w, "  %-13s %s\n", cs.Category, formatSeasonList(cs.Seasons))
	}
	return nil
}

// formatSeasonList renders sorted years compactly, collapsing runs of three
// or more consecutive years into ranges: "2019, 2021-2023, 2025".
func formatSeasonList(seasons []int) string {
	var parts []string
	for i := 0; i < len(seasons); {
		j := i
		for j+1 < len(seasons) && seasons[j+1] == seasons[j]+1 {
			j++
		}
		switch {
		case j > i+1:
			parts = append(parts, fmt.Sprintf("%d-%d", seasons[i], seasons[j]))
		case j == i+1:
			parts = append(parts, strconv.Itoa(seasons[i]), strconv.Itoa(seasons[j]))
		default:
			parts = append(parts, strconv.Itoa(seasons[i]))
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}
