package category

import (
	"fmt"
	"strings"
)

// HeaderRule disambiguates a column whose over-header matches TopContains.
// Either Suffix is appended to the base name directly, or the over-header
// itself is attached as a parenthetical qualifier for the canonicalizer's
// substitution table to unwrap.
type HeaderRule struct {
	TopContains  string
	Suffix       string
	Parenthesize bool
}

// Retention marks the column groups a category keeps. Groups absent from a
// category are dropped during schema normalization so the eight categories
// merge on (player_id, season) without duplicated columns.
type Retention struct {
	Biographical bool // player name, age, team, position
	Awards       bool // decomposed award indicator columns
	ShootingPct  bool // FG_pct family
	Games        bool // G, GS
	Minutes      bool // MP
}

// Category describes one of the eight season stat tables.
type Category struct {
	// Key is the canonical short name, used as the on-disk file stem and in
	// --categories selections.
	Key string

	// Slug is the source-table identifier: the page URL segment and the
	// primary HTML table id.
	Slug string

	// MultiHeader marks tables published with a two-level column header.
	MultiHeader bool

	// HeaderRules lists this category's disambiguation rules, tried in order
	// against each column's over-header.
	HeaderRules []HeaderRule

	// StatSuffix is appended to counting-stat column names so categories do
	// not collide when merged. Empty means stat columns pass unsuffixed.
	StatSuffix string

	// Keep is the retention policy applied during schema normalization.
	Keep Retention
}

func (c Category) String() string { return c.Key }

// All lists every category in ingestion order.
var All = []Category{
	{
		Key:        "totals",
		Slug:       "totals",
		StatSuffix: "_total",
		Keep:       Retention{Biographical: true, Awards: true, ShootingPct: true, Games: true, Minutes: true},
	},
	{
		Key:        "per_game",
		Slug:       "per_game",
		StatSuffix: "_pGame",
		Keep:       Retention{Minutes: true},
	},
	{
		Key:        "per_36",
		Slug:       "per_minute",
		StatSuffix: "_p36",
	},
	{
		Key:        "per_100_poss",
		Slug:       "per_poss",
		StatSuffix: "_p100",
	},
	{
		Key:  "advanced",
		Slug: "advanced",
	},
	{
		Key:         "play_by_play",
		Slug:        "play-by-play",
		MultiHeader: true,
		HeaderRules: []HeaderRule{
			{TopContains: "+/- Per 100 Poss", Suffix: "_pm100"},
			{TopContains: "Fouls Committed", Suffix: "_committed"},
			{TopContains: "Fouls Drawn", Suffix: "_drawn"},
		},
	},
	{
		Key:         "shooting",
		Slug:        "shooting",
		MultiHeader: true,
		HeaderRules: []HeaderRule{
			{TopContains: "% of FGA by Distance", Parenthesize: true},
			{TopContains: "FG% by Distance", Parenthesize: true},
			{TopContains: "% of FG Ast'd", Parenthesize: true},
			{TopContains: "Corner 3s", Parenthesize: true},
			{TopContains: "Dunks", Parenthesize: true},
			{TopContains: "Heaves", Parenthesize: true},
		},
	},
	{
		Key:         "adj_shooting",
		Slug:        "adj_shooting",
		MultiHeader: true,
		HeaderRules: []HeaderRule{
			{TopContains: "Shooting %", Suffix: "_pct"},
			{TopContains: "League-Adjusted", Suffix: "_adj"},
		},
		Keep: Retention{ShootingPct: true},
	},
}

var byKey = func() map[string]Category {
	m := make(map[string]Category, len(All))
	for _, c := range All {
		m[c.Key] = c
	}
	return m
}()

// ByKey looks up a category by its canonical short name.
func ByKey(key string) (Category, bool) {
	c, ok := byKey[key]
	return c, ok
}

// Keys returns the canonical short names in ingestion order.
func Keys() []string {
	keys := make([]string, len(All))
	for i, c := range All {
		keys[i] = c.Key
	}
	return keys
}

// Parse resolves a comma-separated selection of category keys, preserving
// ingestion order and ignoring duplicates. An empty selection means all
// categories.
func Parse(selection string) ([]Category, error) {
	selection = strings.TrimSpace(selection)
	if selection == "" {
		return append([]Category(nil), All...), nil
	}

	wanted := make(map[string]bool)
	for _, part := range strings.Split(selection, ",") {
		key := strings.TrimSpace(part)
		if key == "" {
			continue
		}
		if _, ok := byKey[key]; !ok {
			return nil, fmt.Errorf("unknown category %q (valid: %s)", key, strings.Join(Keys(), ", "))
		}
		wanted[key] = true
	}
	if len(wanted) == 0 {
		return append([]Category(nil), All...), nil
	}

	out := make([]Category, 0, len(wanted))
	for _, c := range All {
		if wanted[c.Key] {
			out = append(out, c)
		}
	}
	return out, nil
}
