package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zjtippetts/NBA-Database/internal/category"
	"github.com/zjtippetts/NBA-Database/internal/logger"
)

// Canonical column names shared across the pipeline.
const (
	PlayerColumn = "Player"
	IDColumn     = "player_id"
	SeasonColumn = "season"
	AwardsColumn = "Awards"
)

// Team column candidates, current markup first.
var teamColumns = []string{"Team", "Tm"}

var placeholderPattern = regexp.MustCompile(`^Column_\d+$`)

// PlaceholderName returns the positional fallback name for column i.
func PlaceholderName(i int) string {
	return "Column_" + strconv.Itoa(i)
}

// IsPlaceholderName reports whether a canonical name is a positional
// fallback produced by PlaceholderName.
func IsPlaceholderName(name string) bool {
	return placeholderPattern.MatchString(name)
}

// placeholder labels appear as empty header cells or as auto-generated
// "Unnamed" markers in tables that passed through other tooling
func isPlaceholderLabel(label string) bool {
	label = strings.TrimSpace(label)
	return label == "" || strings.HasPrefix(label, "Unnamed")
}

// FlattenHeader collapses a two-level header into one semantic name per
// column position, width wide. Position 0 is always the player-identity
// column. For later positions the bottom label is the base name, falling
// back to the top label and then to a positional placeholder. The category's
// disambiguation rules fire on over-header matches, either appending a
// suffix or attaching the matched qualifier parenthetically for the
// canonicalizer to unwrap. Sequences shorter than width pad with
// placeholders rather than failing; the mismatch is logged.
//
// Output names are not yet canonical; CanonicalizeColumn runs next.
func FlattenHeader(c category.Category, top, bottom []string, width int) []string {
	if len(top) != width || len(bottom) != width {
		logger.Warn("header width differs from row width", logger.Fields{
			"category": c.Key,
			"top":      len(top),
			"bottom":   len(bottom),
			"width":    width,
		}, nil)
	}

	names := make([]string, width)
	for i := 0; i < width; i++ {
		if i == 0 {
			names[0] = PlayerColumn
			continue
		}

		t := labelAt(top, i)
		b := labelAt(bottom, i)

		if isPlaceholderLabel(b) {
			if isPlaceholderLabel(t) {
				names[i] = PlaceholderName(i)
			} else {
				names[i] = t
			}
			continue
		}

		name := b
		if !isPlaceholderLabel(t) {
			for _, rule := range c.HeaderRules {
				if !strings.Contains(t, rule.TopContains) {
					continue
				}
				if rule.Parenthesize {
					name = b + " (" + rule.TopContains + ")"
				} else {
					name = b + rule.Suffix
				}
				break
			}
		}
		names[i] = name
	}
	return names
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return strings.TrimSpace(labels[i])
	}
	return ""
}
