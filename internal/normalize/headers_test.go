package normalize

import (
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/zjtippetts/NBA-Database/internal/category"
	"github.com/zjtippetts/NBA-Database/internal/logger"
)

func mustCategory(t *testing.T, key string) category.Category {
	t.Helper()
	c, ok := category.ByKey(key)
	if !ok {
		t.Fatalf("category %q not registered", key)
	}
	return c
}

// captureLogs points the default logger at a temp file for one test and
// returns a function reading back everything logged so far.
func captureLogs(t *testing.T, level logger.Level) func() string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "normalize-log-*")
	if err != nil {
		t.Fatal(err)
	}
	logger.SetDefault(logger.New(level, tmpFile))
	t.Cleanup(func() {
		logger.SetDefault(logger.New(logger.LevelInfo, os.Stderr))
		tmpFile.Close()           // nolint:errcheck
		os.Remove(tmpFile.Name()) // nolint:errcheck
	})
	return func() string {
		data, err := os.ReadFile(tmpFile.Name())
		if err != nil {
			t.Fatalf("reading captured log: %v", err)
		}
		return string(data)
	}
}

func TestFlattenHeader(t *testing.T) {
	tests := []struct {
		name     string
		category string
		top      []string
		bottom   []string
		width    int
		want     []string
	}{
		{
			name:     "adjusted shooting suffix rules",
			category: "adj_shooting",
			top:      []string{"", "", "Shooting %", "Shooting %", "League-Adjusted", ""},
			bottom:   []string{"Player", "Age", "FG", "TS", "FG+", "FG Add"},
			width:    6,
			want:     []string{"Player", "Age", "FG_pct", "TS_pct", "FG+_adj", "FG Add"},
		},
		{
			name:     "play-by-play fouls collision",
			category: "play_by_play",
			top:      []string{"", "+/- Per 100 Poss.", "+/- Per 100 Poss.", "Fouls Committed", "Fouls Drawn"},
			bottom:   []string{"Player", "OnCourt", "On-Off", "Shoot", "Shoot"},
			width:    5,
			want:     []string{"Player", "OnCourt_pm100", "On-Off_pm100", "Shoot_committed", "Shoot_drawn"},
		},
		{
			name:     "shooting parenthetical qualifiers",
			category: "shooting",
			top:      []string{"", "% of FGA by Distance", "FG% by Distance", "Corner 3s", "Dunks"},
			bottom:   []string{"Player", "0-3", "0-3", "3P%", "%FGA"},
			width:    5,
			want: []string{
				"Player",
				"0-3 (% of FGA by Distance)",
				"0-3 (FG% by Distance)",
				"3P% (Corner 3s)",
				"%FGA (Dunks)",
			},
		},
		{
			name:     "position zero always player",
			category: "shooting",
			top:      []string{"Something"},
			bottom:   []string{"Rk"},
			width:    1,
			want:     []string{"Player"},
		},
		{
			name:     "empty bottom falls back to top",
			category: "shooting",
			top:      []string{"", "Games", ""},
			bottom:   []string{"Player", "", ""},
			width:    3,
			want:     []string{"Player", "Games", "Column_2"},
		},
		{
			name:     "unnamed marker treated as placeholder",
			category: "shooting",
			top:      []string{"Unnamed: 0_level_0", "Unnamed: 5_level_0"},
			bottom:   []string{"Player", "MP"},
			width:    2,
			want:     []string{"Player", "MP"},
		},
		{
			name:     "short sequences pad to width",
			category: "play_by_play",
			top:      []string{""},
			bottom:   []string{"Player", "G"},
			width:    4,
			want:     []string{"Player", "G", "Column_2", "Column_3"},
		},
		{
			name:     "no rule matched keeps bottom",
			category: "play_by_play",
			top:      []string{"", "Position Estimate", "Turnovers"},
			bottom:   []string{"Player", "PG%", "BadPass"},
			width:    3,
			want:     []string{"Player", "PG%", "BadPass"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustCategory(t, tt.category)
			got := FlattenHeader(c, tt.top, tt.bottom, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FlattenHeader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlattenHeaderLogsWidthMismatch(t *testing.T) {
	readLog := captureLogs(t, logger.LevelInfo)

	c := mustCategory(t, "play_by_play")
	got := FlattenHeader(c, []string{""}, []string{"Player", "G"}, 4)
	want := []string{"Player", "G", "Column_2", "Column_3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FlattenHeader() = %v, want %v", got, want)
	}

	log := readLog()
	if !strings.Contains(log, `"header width differs from row width"`) {
		t.Errorf("missing width-mismatch warning; log:\n%s", log)
	}
	if !strings.Contains(log, `"bottom":2,"category":"play_by_play","top":1,"width":4`) {
		t.Errorf("warning lacks the level widths; log:\n%s", log)
	}
}

func TestPlaceholderNames(t *testing.T) {
	if got := PlaceholderName(7); got != "Column_7" {
		t.Errorf("PlaceholderName(7) = %q, want Column_7", got)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"Column_0", true},
		{"Column_32", true},
		{"Column_", false},
		{"column_3", false},
		{"Awards", false},
	}
	for _, tt := range tests {
		if got := IsPlaceholderName(tt.name); got != tt.want {
			t.Errorf("IsPlaceholderName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
