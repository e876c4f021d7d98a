package normalize

import "strings"

// Shot-distance bucket labels from the shooting table. Matched as a leading
// token only; the remainder of the name is processed by the later rules.
var rangeTokens = []struct {
	label string
	token string
}{
	{"16-3P", "dist_16_3p"},
	{"10-16", "dist_10_16"},
	{"3-10", "dist_3_10"},
	{"0-3", "dist_0_3"},
}

// Digit-leading shot-type codes. These are recognized labels, not accidents,
// but they still need the leading-underscore escape to be legal identifiers.
var shotCodePrefixes = []string{"2P", "3P"}

// Parenthetical qualifiers attached by the header flattener, unwrapped into
// fixed suffix tokens. Unlisted content is inlined verbatim.
var parenSubstitutions = map[string]string{
	"% of FGA by Distance": "pct_fga",
	"FG% by Distance":      "fg_pct",
	"% of FG Ast'd":        "pct_astd",
	"Corner 3s":            "corner3",
}

// CanonicalizeColumn rewrites a raw or flattened column label into a legal
// bare identifier: no whitespace, no punctuation beyond underscores, no
// leading digit. The function is idempotent, so already-canonical names pass
// through unchanged.
func CanonicalizeColumn(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	// Known numeric ranges become verbose tokens. Anything else that leads
	// with a digit gets the underscore escape, re-applied at the end so the
	// cleanup pass cannot strip it. A name already carrying the escape is
	// recognized as such, which keeps the function idempotent.
	escaped := false
	matched := false
	for _, r := range rangeTokens {
		if name == r.label || (strings.HasPrefix(name, r.label) && !isWordByte(name[len(r.label)])) {
			name = r.token + name[len(r.label):]
			matched = true
			break
		}
	}
	if !matched {
		switch {
		case len(name) > 1 && name[0] == '_' && isDigit(name[1]):
			escaped = true
			name = name[1:]
		case hasShotCodePrefix(name):
			escaped = true
		case isDigit(name[0]):
			escaped = true
		}
	}

	// Unwrap parenthetical qualifiers into suffixes.
	for {
		open := strings.Index(name, "(")
		if open < 0 {
			break
		}
		rel := strings.Index(name[open:], ")")
		if rel < 0 {
			break
		}
		content := strings.TrimSpace(name[open+1 : open+rel])
		name = strings.TrimRight(name[:open], " ") + name[open+rel+1:]
		if sub, ok := parenSubstitutions[content]; ok {
			name += "_" + sub
		} else if content != "" {
			name += "_" + content
		}
	}

	// Symbol substitution. Hyphens, spaces, periods and any other stray
	// bytes fall through to the final sweep, which maps them to underscores.
	name = strings.ReplaceAll(name, "%", "_pct_")
	name = strings.ReplaceAll(name, "+", "")
	name = strings.ReplaceAll(name, "/", "_per_")
	name = strings.ReplaceAll(name, "#", "_ct_")
	name = strings.ReplaceAll(name, "'", "")
	name = strings.Map(func(r rune) rune {
		switch {
		case r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)

	// Underscore cleanup. Leading underscores are stripped unless they carry
	// the numeric escape.
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	name = strings.Trim(name, "_")
	if escaped && name != "" {
		name = "_" + name
	}
	return name
}

func hasShotCodePrefix(name string) bool {
	for _, p := range shotCodePrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
