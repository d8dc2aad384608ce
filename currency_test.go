package cashbook

import (
	"errors"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value string
		cur   string
		want  string
	}{
		{"1234.56", USD, "$1,234.56"},
		{"0", USD, "$0.00"},
		{"7", USD, "$7.00"},
		{"-30", USD, "-$30.00"},
		{"1234567.8", USD, "$1,234,567.80"},
		{"28500", CDF, "28,500 FC"},
		{"0", CDF, "0 FC"},
		{"-500", CDF, "-500 FC"},
		{"2850000", CDF, "2,850,000 FC"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatCurrency(dec(tt.value), tt.cur); got != tt.want {
				t.Errorf("FormatCurrency(%s, %s) = %q, want %q", tt.value, tt.cur, got, tt.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value string
		cur   string
		want  string
	}{
		{"1234.56", USD, "1,234.56"},
		{"-30", USD, "-30.00"},
		{"28500", CDF, "28,500"},
	}
	for _, tt := range tests {
		if got := FormatAmount(dec(tt.value), tt.cur); got != tt.want {
			t.Errorf("FormatAmount(%s, %s) = %q, want %q", tt.value, tt.cur, got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.56", "1234.56"},
		{"$1,234.56", "1234.56"},
		{"28,500 FC", "28500"},
		{"  42  ", "42"},
		{"-30", "-30"},
		{"abc", "0"},
		{"", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseAmount(tt.in); !got.Equal(dec(tt.want)) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormatIdempotence(t *testing.T) {
	// parsing a formatted amount and formatting it again is stable.
	for _, tt := range []struct {
		value string
		cur   string
	}{
		{"1234.56", USD}, {"0.05", USD}, {"-875.2", USD},
		{"28500", CDF}, {"1", CDF}, {"-42000", CDF},
	} {
		first := FormatCurrency(dec(tt.value), tt.cur)
		second := FormatCurrency(ParseAmount(first), tt.cur)
		if first != second {
			t.Errorf("%s %s: %q reformats to %q", tt.value, tt.cur, first, second)
		}
	}
}

func TestValidateCurrency(t *testing.T) {
	if err := ValidateCurrency(USD); err != nil {
		t.Errorf("USD: %v", err)
	}
	if err := ValidateCurrency(CDF); err != nil {
		t.Errorf("CDF: %v", err)
	}
	for _, bad := range []string{"EUR", "usd", ""} {
		if err := ValidateCurrency(bad); !errors.Is(err, ErrUnknownCurrency) {
			t.Errorf("%q: got %v, want ErrUnknownCurrency", bad, err)
		}
	}
}

func TestOther(t *testing.T) {
	if Other(USD) != CDF || Other(CDF) != USD {
		t.Error("Other should swap the two currencies")
	}
}
