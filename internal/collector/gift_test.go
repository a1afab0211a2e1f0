package collector

import "testing"

func TestParseIndexValue(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"comma-grouped index", "GIFT NIFTY | 25,950.50 | +0.42%", 25950.50, true},
		{"plain integer level", "last traded 24810 at close", 24810, true},
		{"small prices only", "up 12.50 from 950.25", 0, false},
		{"no numbers", "quote unavailable", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseIndexValue(tt.text)
			if ok != tt.ok || got != tt.want {
				t.Errorf("parseIndexValue(%q) = %v,%v; want %v,%v", tt.text, got, ok, tt.want, tt.ok)
			}
		})
	}
}
