package cashbook

import "testing"

func TestNewRangeNormalizes(t *testing.T) {
	a := MustParseDate("2026-03-05")
	b := MustParseDate("2026-03-02")
	r := NewRange(a, b)
	if r.From != b || r.To != a {
		t.Errorf("got %v", r)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParseDate("2026-03-02"), MustParseDate("2026-03-04"))
	tests := []struct {
		day  string
		want bool
	}{
		{"2026-03-01", false},
		{"2026-03-02", true}, // inclusive start
		{"2026-03-03", true},
		{"2026-03-04", true}, // inclusive end
		{"2026-03-05", false},
	}
	for _, tt := range tests {
		if got := r.Contains(MustParseDate(tt.day)); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestRangeDays(t *testing.T) {
	r := NewRange(MustParseDate("2026-03-02"), MustParseDate("2026-03-04"))
	var days []string
	for d := range r.Days() {
		days = append(days, d.String())
	}
	want := []string{"2026-03-02", "2026-03-03", "2026-03-04"}
	if len(days) != len(want) {
		t.Fatalf("got %d days", len(days))
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("day %d = %s, want %s", i, days[i], want[i])
		}
	}
}

func TestRangeLabel(t *testing.T) {
	day := Day(MustParseDate("2026-03-02"))
	if got := day.Label(); got != "2026-03-02" {
		t.Errorf("single day label = %q", got)
	}
	r := NewRange(MustParseDate("2026-03-02"), MustParseDate("2026-03-04"))
	if got := r.Label(); got != "2026-03-02 to 2026-03-04" {
		t.Errorf("range label = %q", got)
	}
}
