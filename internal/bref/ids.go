package bref

import "regexp"

// playerProfilePattern matches player profile hrefs such as
// /players/g/gilgesh01.html and captures the stable identifier.
var playerProfilePattern = regexp.MustCompile(`/players/[a-z]/([a-z0-9]+)\.html`)

// ExtractPlayerID returns the stable player identifier embedded in a profile
// href, or "" when the href carries no recognizable profile reference.
// Malformed and empty hrefs are not errors: identity resolution falls back to
// name matching downstream.
func ExtractPlayerID(href string) string {
	m := playerProfilePattern.FindStringSubmatch(href)
	if m == nil {
		return ""
	}
	return m[1]
}
