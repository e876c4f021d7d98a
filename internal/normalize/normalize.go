package normalize

import (
	"strconv"

	"github.com/zjtippetts/NBA-Database/internal/category"
	"github.com/zjtippetts/NBA-Database/internal/table"
)

// Stats summarizes one table's trip through the pipeline, for run logging.
type Stats struct {
	RowsExtracted int
	RowsDropped   int
	RowsOut       int
	NameFallback  bool
	AwardColumns  int
}

// Apply runs the full normalization pipeline for one (season, category)
// table: header flattening, column canonicalization, identity alignment,
// traded-row consolidation, award decomposition, and the category's schema
// rules. The result is ready for the merge store.
func Apply(c category.Category, raw *table.Raw, season int) (*table.Table, Stats) {
	names := headerNames(c, raw)
	tbl, alignRes := Align(raw, names)

	tbl.AddColumn(SeasonColumn)
	seasonValue := strconv.Itoa(season)
	for _, row := range tbl.Rows {
		row[SeasonColumn] = seasonValue
	}

	Consolidate(tbl)
	awardColumns := DecomposeAwards(tbl)
	ApplySchema(c, tbl, awardColumns)

	return tbl, Stats{
		RowsExtracted: len(raw.Rows),
		RowsDropped:   alignRes.Dropped,
		RowsOut:       len(tbl.Rows),
		NameFallback:  alignRes.Fallback,
		AwardColumns:  len(awardColumns),
	}
}

// headerNames resolves the final canonical column name per position:
// flatten when the table carried two header levels, substitute positional
// placeholders for blank labels, canonicalize, and de-duplicate repeats so
// the column-keyed rows cannot silently overwrite each other.
func headerNames(c category.Category, raw *table.Raw) []string {
	width := len(raw.Header)
	var names []string
	if raw.MultiLevel() {
		names = FlattenHeader(c, raw.Top, raw.Header, width)
	} else {
		names = make([]string, width)
		for i := 0; i < width; i++ {
			if i == 0 {
				names[0] = PlayerColumn
				continue
			}
			names[i] = labelAt(raw.Header, i)
		}
	}

	seen := make(map[string]int, width)
	for i, name := range names {
		if isPlaceholderLabel(name) {
			name = PlaceholderName(i)
		}
		name = CanonicalizeColumn(name)
		if name == "" {
			name = PlaceholderName(i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = name + "_" + strconv.Itoa(n+1)
		}
		seen[name] = 1
		names[i] = name
	}
	return names
}
