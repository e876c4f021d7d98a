package normalize

import (
	"reflect"
	"testing"

	"github.com/zjtippetts/NBA-Database/internal/table"
)

func schemaInput(columns ...string) *table.Table {
	tbl := table.New(columns...)
	row := make(table.Row, len(columns))
	for i, c := range columns {
		row[c] = "v" + string(rune('0'+i%10))
	}
	row[IDColumn] = "adealp01"
	row[SeasonColumn] = "2025"
	tbl.Append(row)
	return tbl
}

func TestApplySchemaTotals(t *testing.T) {
	tbl := schemaInput("Player", "Age", "Team", "Pos", "G", "GS", "MP",
		"FG", "FG_pct", "PTS", "Trp_Dbl", "AS", "MVP", IDColumn, SeasonColumn)

	c := mustCategory(t, "totals")
	ApplySchema(c, tbl, []string{"AS", "MVP"})

	for _, want := range []string{"Player", "Age", "Team", "Pos", "G", "GS",
		"MP_total", "FG_total", "FG_pct", "PTS_total", "Trp_Dbl", "AS", "MVP"} {
		if !tbl.HasColumn(want) {
			t.Errorf("totals should keep %s; columns = %v", want, tbl.Columns)
		}
	}

	if got := tbl.Columns[0]; got != IDColumn {
		t.Errorf("leading column = %s, want %s", got, IDColumn)
	}
	if got := tbl.Columns[1]; got != SeasonColumn {
		t.Errorf("second column = %s, want %s", got, SeasonColumn)
	}
}

func TestApplySchemaPerGame(t *testing.T) {
	tbl := schemaInput("Player", "Age", "Team", "Pos", "G", "GS", "MP",
		"FG", "FGA", "FG_pct", "eFG_pct", "TRB", "PTS", "AS", IDColumn, SeasonColumn)

	c := mustCategory(t, "per_game")
	ApplySchema(c, tbl, []string{"AS"})

	want := []string{IDColumn, SeasonColumn, "MP_pGame", "FG_pGame", "FGA_pGame", "TRB_pGame", "PTS_pGame"}
	if !reflect.DeepEqual(tbl.Columns, want) {
		t.Errorf("per_game columns = %v, want %v", tbl.Columns, want)
	}

	if got := tbl.Rows[0]["MP_pGame"]; got == "" {
		t.Error("MP value should survive the rename")
	}
}

func TestApplySchemaPer36DropsMinutes(t *testing.T) {
	tbl := schemaInput("Player", "MP", "PTS", IDColumn, SeasonColumn)

	c := mustCategory(t, "per_36")
	ApplySchema(c, tbl, nil)

	if tbl.HasColumn("MP") || tbl.HasColumn("MP_p36") {
		t.Errorf("per_36 should drop minutes; columns = %v", tbl.Columns)
	}
	if !tbl.HasColumn("PTS_p36") {
		t.Errorf("PTS should gain _p36 suffix; columns = %v", tbl.Columns)
	}
}

func TestApplySchemaAdvanced(t *testing.T) {
	tbl := schemaInput("Player", "Age", "Team", "Pos", "G", "MP",
		"PER", "TS_pct", "_3PAr", "FTr", "WS_per_48", "VORP", IDColumn, SeasonColumn)

	c := mustCategory(t, "advanced")
	ApplySchema(c, tbl, nil)

	want := []string{IDColumn, SeasonColumn, "PER", "_3PAr", "FTr", "WS_per_48", "VORP"}
	if !reflect.DeepEqual(tbl.Columns, want) {
		t.Errorf("advanced columns = %v, want %v", tbl.Columns, want)
	}
}

func TestApplySchemaAdjShooting(t *testing.T) {
	tbl := schemaInput("Player", "Age", "Team", "G", "MP",
		"FG_pct", "TS_pct", "FG_adj", "TS_adj", "AS", IDColumn, SeasonColumn)

	c := mustCategory(t, "adj_shooting")
	ApplySchema(c, tbl, []string{"AS"})

	want := []string{IDColumn, SeasonColumn, "FG_pct", "TS_pct", "FG_adj", "TS_adj"}
	if !reflect.DeepEqual(tbl.Columns, want) {
		t.Errorf("adj_shooting columns = %v, want %v", tbl.Columns, want)
	}
}

func TestApplySchemaPlaceholders(t *testing.T) {
	tbl := table.New("Player", "Column_24", "Column_25", "PTS", IDColumn, SeasonColumn)
	tbl.Append(table.Row{
		"Player": "Alpha Ade", "Column_24": "", "Column_25": "4.2",
		"PTS": "100", IDColumn: "adealp01", SeasonColumn: "2025",
	})

	c := mustCategory(t, "totals")
	ApplySchema(c, tbl, nil)

	if tbl.HasColumn("Column_24") {
		t.Error("all-empty placeholder should be dropped")
	}
	if !tbl.HasColumn("Column_25") {
		t.Error("placeholder with data should survive")
	}
}
