package cashbook

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USDm(1234.56), "$1,234.56"},
		{USDm(-30), "-$30.00"},
		{CDFm(28500), "28,500 FC"},
		{CDFm(0), "0 FC"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := USDm(100)
	b := USDm(40)

	if got := a.Sub(b); !got.Equal(USDm(60)) {
		t.Errorf("Sub = %s", got)
	}
	if got := a.Add(b); !got.Equal(USDm(140)) {
		t.Errorf("Add = %s", got)
	}
	if got := b.Neg(); !got.Equal(USDm(-40)) {
		t.Errorf("Neg = %s", got)
	}
	if !b.LessThan(a) || a.LessThan(b) {
		t.Error("LessThan broken")
	}
}

func TestMoneyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD and CDF should panic")
		}
	}()
	_ = USDm(1).Add(CDFm(1))
}

func TestCategoriesFor(t *testing.T) {
	if got := len(CategoriesFor(KindExpense)); got != 11 {
		t.Errorf("expense categories = %d, want 11", got)
	}
	if got := len(CategoriesFor(KindIncome)); got != 4 {
		t.Errorf("income categories = %d, want 4", got)
	}
	if got := len(CategoriesFor(KindTransfer)); got != 1 {
		t.Errorf("transfer categories = %d, want 1", got)
	}
}

func TestCategoryLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"rent", "Rent/Lease"},
		{"sales", "Sales"},
		{"", "Other"},
		{"other", "Other"},
		{"custom_thing", "custom_thing"},
	}
	for _, tt := range tests {
		if got := CategoryLabel(tt.in); got != tt.want {
			t.Errorf("CategoryLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
