package cashbook

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2026-03-02", "2026-03-02", false},
		{"2026-3-2", "2026-03-02", false},
		{"2026-03-02T23:15:00Z", "2026-03-02", false},
		{"02/03/2026", "", true},
		{"not a date", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("got %v, want ErrInvalidDate", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDateOfUsesLocation(t *testing.T) {
	kinshasa := time.FixedZone("WAT", 1*3600)
	// 23:30 in Kinshasa is 22:30 UTC the same day; the day is taken in the
	// timestamp's own location.
	d := DateOf(time.Date(2026, 3, 2, 23, 30, 0, 0, kinshasa))
	if d.String() != "2026-03-02" {
		t.Errorf("got %s", d)
	}
	// 00:30 in Kinshasa is still the previous day in UTC; the local day wins.
	d = DateOf(time.Date(2026, 3, 3, 0, 30, 0, 0, kinshasa))
	if d.String() != "2026-03-03" {
		t.Errorf("got %s", d)
	}
}

func TestDateOrdering(t *testing.T) {
	a := MustParseDate("2026-03-02")
	b := MustParseDate("2026-03-03")
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Error("Before is not a strict order")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After is not the mirror of Before")
	}
}

func TestDateAdd(t *testing.T) {
	tests := []struct {
		in   string
		days int
		want string
	}{
		{"2026-03-02", 1, "2026-03-03"},
		{"2026-03-31", 1, "2026-04-01"},
		{"2026-02-28", 1, "2026-03-01"}, // not a leap year
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2026-03-02", -2, "2026-02-28"},
	}
	for _, tt := range tests {
		if got := MustParseDate(tt.in).Add(tt.days).String(); got != tt.want {
			t.Errorf("%s + %d = %s, want %s", tt.in, tt.days, got, tt.want)
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustParseDate("2026-03-02")
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2026-03-02"` {
		t.Errorf("marshaled %s", data)
	}
	var got Date
	if err := got.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("got %s, want %s", got, d)
	}
}
