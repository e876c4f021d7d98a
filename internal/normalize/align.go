package normalize

import (
	"strings"

	"github.com/zjtippetts/NBA-Database/internal/table"
)

// AlignResult reports how alignment went, for run logging.
type AlignResult struct {
	// Fallback is true when positional identifiers could not be trusted and
	// every row was re-resolved through the name map.
	Fallback bool

	// Dropped counts rows excluded because no identifier could be resolved.
	Dropped int
}

// Align builds a column-keyed table from a raw table, resolving each row's
// player identity. The primary strategy assigns identifiers positionally
// from the extraction side-channel. When the positional count mismatches the
// row count, or any positional identifier is absent, every row is instead
// resolved by looking up its player-name cell in the raw table's name map.
// Rows that still resolve to no identifier are dropped: identity is a hard
// precondition for inclusion, never defaulted.
func Align(raw *table.Raw, names []string) (*table.Table, AlignResult) {
	positional := len(raw.RowIDs) == len(raw.Rows)
	if positional {
		for _, id := range raw.RowIDs {
			if id == "" {
				positional = false
				break
			}
		}
	}

	nameIdx := -1
	for i, n := range names {
		if n == PlayerColumn {
			nameIdx = i
			break
		}
	}

	res := AlignResult{Fallback: !positional}
	tbl := table.New(names...)
	tbl.AddColumn(IDColumn)

	for i, cells := range raw.Rows {
		var id string
		if positional {
			id = raw.RowIDs[i]
		} else if nameIdx >= 0 && nameIdx < len(cells) {
			id = raw.IDByName[strings.TrimSpace(cells[nameIdx])]
		}
		if id == "" {
			res.Dropped++
			continue
		}

		row := make(table.Row, len(names)+2)
		for j, name := range names {
			if j < len(cells) {
				row[name] = strings.TrimSpace(cells[j])
			} else {
				row[name] = ""
			}
		}
		row[IDColumn] = id
		tbl.Append(row)
	}
	return tbl, res
}
