package normalize

import (
	"regexp"
	"strings"

	"github.com/zjtippetts/NBA-Database/internal/table"
)

// Multi-team season totals are marked "2TM".."9TM" in current markup and
// "TOT" historically.
var aggregateTeamPattern = regexp.MustCompile(`^([2-9]TM|TOT)$`)

func isAggregateTeam(team string) bool {
	return aggregateTeamPattern.MatchString(strings.TrimSpace(team))
}

// Consolidate collapses each traded player's per-team rows into their
// aggregate row. The aggregate row's team field becomes the player's real
// team codes in table order, joined ", "; the per-team rows are removed.
// An aggregate row with no matching per-team rows is left unchanged. Tables
// without a team or identifier column pass through untouched.
//
// After this stage a category table has exactly one row per (player, season).
func Consolidate(tbl *table.Table) {
	teamCol := ""
	for _, c := range teamColumns {
		if tbl.HasColumn(c) {
			teamCol = c
			break
		}
	}
	if teamCol == "" || !tbl.HasColumn(IDColumn) {
		return
	}

	rowsByID := make(map[string][]int)
	for i, row := range tbl.Rows {
		id := row[IDColumn]
		rowsByID[id] = append(rowsByID[id], i)
	}

	remove := make(map[int]bool)
	for i, row := range tbl.Rows {
		if !isAggregateTeam(row[teamCol]) {
			continue
		}

		var teams []string
		for _, j := range rowsByID[row[IDColumn]] {
			if j == i || remove[j] || isAggregateTeam(tbl.Rows[j][teamCol]) {
				continue
			}
			remove[j] = true
			if team := strings.TrimSpace(tbl.Rows[j][teamCol]); team != "" {
				teams = append(teams, team)
			}
		}
		if len(teams) > 0 {
			row[teamCol] = strings.Join(teams, ", ")
		}
	}

	if len(remove) == 0 {
		return
	}
	kept := make([]table.Row, 0, len(tbl.Rows)-len(remove))
	for i, row := range tbl.Rows {
		if !remove[i] {
			kept = append(kept, row)
		}
	}
	tbl.Rows = kept
}
