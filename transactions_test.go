package cashbook

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseKind(t *testing.T) {
	for _, good := range []string{"income", "expense", "transfer"} {
		if _, err := ParseKind(good); err != nil {
			t.Errorf("ParseKind(%q): %v", good, err)
		}
	}
	if _, err := ParseKind("dividend"); err == nil {
		t.Error("ParseKind should reject unknown kinds")
	}
}

func TestDayBucketing(t *testing.T) {
	// the calendar day comes from the timestamp's own location.
	kinshasa := time.FixedZone("WAT", 1*3600)
	late := time.Date(2026, 3, 2, 23, 30, 0, 0, kinshasa)

	tx := NewIncome("", late, USDm(10), Details{})
	if got := tx.Day().String(); got != "2026-03-02" {
		t.Errorf("Day = %s, want 2026-03-02", got)
	}
}

func TestIncomeValidate(t *testing.T) {
	tests := []struct {
		name    string
		amount  Money
		wantErr error
	}{
		{"positive usd", USDm(10), nil},
		{"positive cdf", CDFm(5000), nil},
		{"zero amount", USDm(0), ErrNegativeAmount},
		{"negative amount", USDm(-3), ErrNegativeAmount},
		{"unknown currency", M(10, "EUR"), ErrUnknownCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewIncome("", at("2026-03-02", 10), tt.amount, Details{})
			_, err := Validate(in)
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpenseValidateRejectsNegative(t *testing.T) {
	ex := NewExpense("", at("2026-03-02", 10), CDFm(-100), Details{})
	if _, err := Validate(ex); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("got %v, want ErrNegativeAmount", err)
	}
}

func TestTransferValidate(t *testing.T) {
	day := at("2026-03-02", 10)

	t.Run("complete transfer passes unchanged", func(t *testing.T) {
		in := NewTransfer("", day, USDm(100), CDFm(285000), dec("2850"), Details{})
		out, err := Validate(in)
		if err != nil {
			t.Fatal(err)
		}
		tr := out.(Transfer)
		if !tr.To.Equal(CDFm(285000)) || !tr.Rate.Equal(dec("2850")) {
			t.Errorf("got %+v", tr)
		}
	})

	t.Run("missing destination currency resolves to the other currency", func(t *testing.T) {
		in := NewTransfer("", day, USDm(100), M(285000, ""), decimal.Zero, Details{})
		out, err := Validate(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := out.(Transfer).ToCurrency(); got != CDF {
			t.Errorf("ToCurrency = %s, want CDF", got)
		}
	})

	t.Run("missing destination amount derives from rate, usd source", func(t *testing.T) {
		in := NewTransfer("", day, USDm(100), Money{}, dec("2850"), Details{})
		out, err := Validate(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := out.(Transfer).To; !got.Equal(CDFm(285000)) {
			t.Errorf("To = %s", got)
		}
	})

	t.Run("missing destination amount derives from rate, cdf source", func(t *testing.T) {
		in := NewTransfer("", day, CDFm(285000), Money{}, dec("2850"), Details{})
		out, err := Validate(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := out.(Transfer).To; !got.Equal(USDm(100)) {
			t.Errorf("To = %s", got)
		}
	})

	t.Run("missing rate derives from amounts as cdf per usd", func(t *testing.T) {
		in := NewTransfer("", day, USDm(100), CDFm(290000), decimal.Zero, Details{})
		out, err := Validate(in)
		if err != nil {
			t.Fatal(err)
		}
		if got := out.(Transfer).Rate; !got.Equal(dec("2900")) {
			t.Errorf("Rate = %s, want 2900", got)
		}
	})

	t.Run("same currency on both sides is rejected", func(t *testing.T) {
		in := NewTransfer("", day, USDm(100), USDm(100), decimal.Zero, Details{})
		if _, err := Validate(in); !errors.Is(err, ErrCurrencyMismatch) {
			t.Errorf("got %v, want ErrCurrencyMismatch", err)
		}
	})

	t.Run("no destination and no rate is rejected", func(t *testing.T) {
		in := NewTransfer("", day, USDm(100), Money{}, decimal.Zero, Details{})
		if _, err := Validate(in); !errors.Is(err, ErrMissingDestination) {
			t.Errorf("got %v, want ErrMissingDestination", err)
		}
	})

	t.Run("negative source is rejected", func(t *testing.T) {
		in := NewTransfer("", day, USDm(-100), CDFm(285000), decimal.Zero, Details{})
		if _, err := Validate(in); !errors.Is(err, ErrNegativeAmount) {
			t.Errorf("got %v, want ErrNegativeAmount", err)
		}
	})
}

func TestValidateSetsZeroTimestamp(t *testing.T) {
	in := NewIncome("", time.Time{}, USDm(10), Details{})
	out, err := Validate(in)
	if err != nil {
		t.Fatal(err)
	}
	if out.When().IsZero() {
		t.Error("zero timestamp should be set to now")
	}
}

func TestTransactionEqual(t *testing.T) {
	day := at("2026-03-02", 10)
	a := NewIncome("id1", day, USDm(10), Details{Category: "sales"})
	b := NewIncome("id1", day, USDm(10), Details{Category: "sales"})
	c := NewIncome("id1", day, USDm(11), Details{Category: "sales"})
	d := NewExpense("id1", day, USDm(10), Details{Category: "sales"})

	if !a.Equal(b) {
		t.Error("identical incomes should be equal")
	}
	if a.Equal(c) {
		t.Error("different amounts should not be equal")
	}
	if a.Equal(d) {
		t.Error("different kinds should not be equal")
	}

	tr1 := NewTransfer("t", day, USDm(10), CDFm(28500), dec("2850"), Details{})
	tr2 := NewTransfer("t", day, USDm(10), CDFm(28500), dec("2850"), Details{})
	if !tr1.Equal(tr2) {
		t.Error("identical transfers should be equal")
	}
}
