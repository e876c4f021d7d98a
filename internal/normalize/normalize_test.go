package normalize

import (
	"testing"

	"github.com/zjtippetts/NBA-Database/internal/table"
)

// Apply on a totals-shaped raw table: flatten/canonicalize headers, stamp
// the season, consolidate the traded player, decompose awards, apply
// retention, and lead with player_id/season.
func TestApplyTotals(t *testing.T) {
	raw := &table.Raw{
		Header: []string{"Player", "Age", "Team", "Pos", "G", "GS", "MP", "FG", "FG%", "3P", "PTS", "Awards"},
		Rows: [][]string{
			{"Alpha Ade", "28", "2TM", "C", "70", "70", "2400", "500", ".512", "40", "1300", "MVP-1, AS"},
			{"Alpha Ade", "28", "BOS", "C", "40", "40", "1400", "300", ".520", "25", "800", ""},
			{"Alpha Ade", "28", "NYK", "C", "30", "30", "1000", "200", ".500", "15", "500", ""},
			{"Beta Bol", "24", "LAL", "PG", "82", "80", "2900", "600", ".470", "120", "1600", "AS"},
		},
		RowIDs:   []string{"adealp01", "adealp01", "adealp01", "bolbet01"},
		IDByName: map[string]string{"Alpha Ade": "adealp01", "Beta Bol": "bolbet01"},
	}

	c := mustCategory(t, "totals")
	tbl, stats := Apply(c, raw, 2025)

	if stats.RowsExtracted != 4 || stats.RowsDropped != 0 {
		t.Errorf("stats = %+v, want 4 extracted, 0 dropped", stats)
	}
	if stats.NameFallback {
		t.Error("positional alignment should not have fallen back")
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("row count = %d, want 2 after consolidation", len(tbl.Rows))
	}

	if got := tbl.Columns[0]; got != IDColumn {
		t.Errorf("leading column = %s, want %s", got, IDColumn)
	}
	if got := tbl.Columns[1]; got != SeasonColumn {
		t.Errorf("second column = %s, want %s", got, SeasonColumn)
	}

	traded := tbl.Rows[0]
	if traded[IDColumn] != "adealp01" {
		t.Fatalf("first row id = %q, want adealp01", traded[IDColumn])
	}
	if traded["Team"] != "BOS, NYK" {
		t.Errorf("traded team = %q, want %q", traded["Team"], "BOS, NYK")
	}
	if traded[SeasonColumn] != "2025" {
		t.Errorf("season = %q, want 2025", traded[SeasonColumn])
	}
	if traded["PTS_total"] != "1300" {
		t.Errorf("PTS_total = %q, want aggregate 1300", traded["PTS_total"])
	}
	if traded["_3P_total"] != "40" {
		t.Errorf("_3P_total = %q, want 40", traded["_3P_total"])
	}
	if traded["FG_pct"] != ".512" {
		t.Errorf("FG_pct = %q, want .512", traded["FG_pct"])
	}
	if traded["MVP"] != "1" || traded["AS"] != "1" {
		t.Errorf("award columns = MVP %q AS %q, want 1 and 1", traded["MVP"], traded["AS"])
	}

	ordinary := tbl.Rows[1]
	if ordinary["MVP"] != "0" || ordinary["AS"] != "1" {
		t.Errorf("award columns = MVP %q AS %q, want 0 and 1", ordinary["MVP"], ordinary["AS"])
	}
	if tbl.HasColumn("Awards") {
		t.Error("free-text Awards column should be gone")
	}
}

// Apply on a shooting-shaped raw table with a two-level header.
func TestApplyShooting(t *testing.T) {
	raw := &table.Raw{
		Top: []string{"", "", "", "", "% of FGA by Distance", "% of FGA by Distance",
			"FG% by Distance", "Corner 3s", ""},
		Header: []string{"Player", "Age", "Team", "FG%", "2P", "0-3", "0-3", "3P%", "Awards"},
		Rows: [][]string{
			{"Alpha Ade", "28", "BOS", ".512", ".620", ".310", ".680", ".410", "MVP-1"},
		},
		RowIDs:   []string{"adealp01"},
		IDByName: map[string]string{"Alpha Ade": "adealp01"},
	}

	c := mustCategory(t, "shooting")
	tbl, stats := Apply(c, raw, 2024)

	if stats.RowsOut != 1 {
		t.Fatalf("rows out = %d, want 1", stats.RowsOut)
	}

	row := tbl.Rows[0]
	if row["_2P_pct_fga"] != ".620" {
		t.Errorf("_2P_pct_fga = %q, want .620", row["_2P_pct_fga"])
	}
	if row["dist_0_3_pct_fga"] != ".310" {
		t.Errorf("dist_0_3_pct_fga = %q, want .310", row["dist_0_3_pct_fga"])
	}
	if row["dist_0_3_fg_pct"] != ".680" {
		t.Errorf("dist_0_3_fg_pct = %q, want .680", row["dist_0_3_fg_pct"])
	}
	if row["_3P_pct_corner3"] != ".410" {
		t.Errorf("_3P_pct_corner3 = %q, want .410", row["_3P_pct_corner3"])
	}

	// Shared percentage and biographical columns belong to other categories
	if tbl.HasColumn("FG_pct") {
		t.Errorf("shooting should drop FG_pct; columns = %v", tbl.Columns)
	}
	if tbl.HasColumn("Team") || tbl.HasColumn("Age") {
		t.Errorf("shooting should drop biographical columns; columns = %v", tbl.Columns)
	}
	// Award columns are kept only in totals
	if tbl.HasColumn("MVP") {
		t.Errorf("shooting should drop award columns; columns = %v", tbl.Columns)
	}
}

func TestHeaderNamesDeduplicates(t *testing.T) {
	raw := &table.Raw{
		Header: []string{"Player", "MP", "MP"},
	}
	c := mustCategory(t, "totals")

	names := headerNames(c, raw)
	want := []string{"Player", "MP", "MP_2"}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("names[%d] = %q, want %q", i, names[i], w)
		}
	}
}
