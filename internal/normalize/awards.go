package normalize

import (
	"sort"
	"strconv"
	"strings"

	"github.com/zjtippetts/NBA-Database/internal/table"
)

// Values sampled when sniffing a mislabeled awards column.
const awardSampleLimit = 25

// DecomposeAwards expands the free-text awards column into one count column
// per award code discovered across the table's rows, and returns the emitted
// column names. Mentions are comma-separated codes, each optionally carrying
// a hyphenated vote rank ("MVP-1, AS"). A row's value for a code is the
// parsed rank, 1 for an unranked mention, or 0 when absent. The free-text
// column (and any placeholder column it was detected under) is removed.
// Tables without an awards column pass through untouched.
func DecomposeAwards(tbl *table.Table) []string {
	col := findAwardsColumn(tbl)
	if col == "" {
		return nil
	}
	if col != AwardsColumn {
		tbl.RenameColumn(col, AwardsColumn)
	}

	mentions := make([]map[string]int, len(tbl.Rows))
	codes := make(map[string]bool)
	for i, row := range tbl.Rows {
		m := parseAwardMentions(row[AwardsColumn])
		mentions[i] = m
		for code := range m {
			codes[code] = true
		}
	}

	// Emission order is deterministic: sorted codes, one pre-pass over the
	// full row set before any column is written.
	sorted := make([]string, 0, len(codes))
	for code := range codes {
		sorted = append(sorted, code)
	}
	sort.Strings(sorted)

	emitted := make([]string, 0, len(sorted))
	for _, code := range sorted {
		name := CanonicalizeColumn(code)
		if name == "" || tbl.HasColumn(name) {
			continue
		}
		tbl.AddColumn(name)
		emitted = append(emitted, name)
		for i, row := range tbl.Rows {
			row[name] = strconv.Itoa(mentions[i][code])
		}
	}

	tbl.DropColumn(AwardsColumn)
	return emitted
}

// findAwardsColumn returns the canonical awards column if present, otherwise
// the first placeholder-named column whose sampled values look like award
// text: comma-bearing, or hyphen-bearing and not a plain number (stat
// columns can hold negative values).
func findAwardsColumn(tbl *table.Table) string {
	if tbl.HasColumn(AwardsColumn) {
		return AwardsColumn
	}
	for _, col := range tbl.Columns {
		if !IsPlaceholderName(col) {
			continue
		}
		if looksLikeAwards(tbl.Values(col)) {
			return col
		}
	}
	return ""
}

func looksLikeAwards(values []string) bool {
	sampled := 0
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.Contains(v, ",") {
			return true
		}
		if strings.Contains(v, "-") {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return true
			}
		}
		sampled++
		if sampled >= awardSampleLimit {
			break
		}
	}
	return false
}

func parseAwardMentions(text string) map[string]int {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	mentions := make(map[string]int)
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		code := part
		value := 1
		if idx := strings.Index(part, "-"); idx > 0 {
			code = strings.TrimSpace(part[:idx])
			if n, err := strconv.Atoi(strings.TrimSpace(part[idx+1:])); err == nil {
				value = n
			}
		}
		if code == "" {
			continue
		}
		// First mention wins if a code repeats within one row.
		if _, ok := mentions[code]; !ok {
			mentions[code] = value
		}
	}
	return mentions
}
