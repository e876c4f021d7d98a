package normalize

import (
	"strings"

	"github.com/zjtippetts/NBA-Database/internal/category"
	"github.com/zjtippetts/NBA-Database/internal/table"
)

// Column groups shared across categories. Retention keeps each group in the
// categories that own it so the eight tables merge without collisions.
var (
	biographicalColumns = []string{PlayerColumn, "Age", "Team", "Tm", "Pos"}
	gamesColumns        = []string{"G", "GS"}
	shootingPctColumns  = []string{"FG_pct", "_2P_pct", "_3P_pct", "eFG_pct", "FT_pct", "TS_pct"}

	// Counting stats renamed with the category suffix. MP is listed last and
	// handled against the minutes retention flag separately since totals and
	// per-game keep it in different units.
	countingStatColumns = []string{
		"FG", "FGA", "_3P", "_3PA", "_2P", "_2PA", "FT", "FTA",
		"ORB", "DRB", "TRB", "AST", "STL", "BLK", "TOV", "PF", "PTS", "MP",
	}
)

// ApplySchema applies the category's fixed retention and rename policy:
// biographical, award, shooting-percentage, games and minutes columns are
// dropped unless the category keeps them, counting stats gain the category
// suffix, and all-empty placeholder columns (separator artifacts in the
// source markup) are removed. The identifier and season columns always
// survive and are moved to the front.
func ApplySchema(c category.Category, tbl *table.Table, awardColumns []string) {
	for _, col := range append([]string(nil), tbl.Columns...) {
		if IsPlaceholderName(col) && allEmpty(tbl.Values(col)) {
			tbl.DropColumn(col)
		}
	}

	if !c.Keep.Biographical {
		dropAll(tbl, biographicalColumns)
	}
	if !c.Keep.Awards {
		dropAll(tbl, awardColumns)
	}
	if !c.Keep.ShootingPct {
		dropAll(tbl, shootingPctColumns)
	}
	if !c.Keep.Games {
		dropAll(tbl, gamesColumns)
	}
	if !c.Keep.Minutes {
		tbl.DropColumn("MP")
	}

	if c.StatSuffix != "" {
		for _, col := range countingStatColumns {
			if tbl.HasColumn(col) {
				tbl.RenameColumn(col, col+c.StatSuffix)
			}
		}
	}

	tbl.Lead(IDColumn, SeasonColumn)
}

func dropAll(tbl *table.Table, columns []string) {
	for _, col := range columns {
		tbl.DropColumn(col)
	}
}

func allEmpty(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
