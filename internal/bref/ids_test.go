package bref

import "testing"

func TestExtractPlayerID(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"/players/g/gilgesh01.html", "gilgesh01"},
		{"/players/b/battsar01.html", "battsar01"},
		{"https://www.basketball-reference.com/players/j/jokicni01.html", "jokicni01"},
		{"/players/w/wemba01.html?utm=x", "wemba01"},
		{"/teams/BOS/2025.html", ""},
		{"/players/gilgesh01.html", ""},
		{"/players/G/Gilgesh01.html", ""},
		{"/players/g/.html", ""},
		{"/leagues/NBA_2025_totals.html", ""},
		{"", ""},
		{"not a url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			if got := ExtractPlayerID(tt.href); got != tt.want {
				t.Errorf("ExtractPlayerID(%q) = %q, want %q", tt.href, got, tt.want)
			}
		})
	}
}
