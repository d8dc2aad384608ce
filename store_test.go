package cashbook

import (
	"errors"
	"testing"
)

func TestStoreMissingFilesReadEmpty(t *testing.T) {
	s := DefaultStore(t.TempDir())

	ledger, err := s.LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 0 {
		t.Errorf("got %d transactions", ledger.Len())
	}

	settings, err := s.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(settings) != 0 {
		t.Errorf("got %v", settings)
	}

	closes, err := s.LoadDailyCloses()
	if err != nil {
		t.Fatal(err)
	}
	if closes != nil {
		t.Errorf("got %v", closes)
	}
}

func TestStoreAppendAndLoad(t *testing.T) {
	s := DefaultStore(t.TempDir())

	if _, err := s.AppendTransaction(income("2026-03-02", USDm(150), "sales")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AppendTransaction(income("2026-03-01", CDFm(30000), "services")); err != nil {
		t.Fatal(err)
	}

	ledger, err := s.LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 2 {
		t.Fatalf("got %d transactions", ledger.Len())
	}
	// chronological on load, regardless of append order
	if got := ledger.Select()[0].Day().String(); got != "2026-03-01" {
		t.Errorf("first transaction on %s", got)
	}
}

func TestStoreAppendRejectsInvalid(t *testing.T) {
	s := DefaultStore(t.TempDir())
	_, err := s.AppendTransaction(income("2026-03-02", USDm(-5), "sales"))
	if !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("got %v", err)
	}
	// nothing must have been written
	ledger, err := s.LoadLedger()
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 0 {
		t.Errorf("invalid transaction was persisted")
	}
}

func TestStoreSettingsRoundTrip(t *testing.T) {
	s := DefaultStore(t.TempDir())

	settings := NewSettings()
	settings.SetBalances(BalanceSettings{InitialUSD: dec("1000")})
	if err := s.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Balances().InitialUSD.Equal(dec("1000")) {
		t.Errorf("got %v", got)
	}
}

func TestStoreDailyCloseHistory(t *testing.T) {
	dir := t.TempDir()
	s := DefaultStore(dir)

	settings := BalanceSettings{InitialUSD: dec("100")}
	for _, day := range []string{"2026-03-01", "2026-03-02"} {
		c := NewDailyClose(NewSummary(settings, nil, MustParseDate(day)))
		if err := s.AppendDailyClose(c); err != nil {
			t.Fatal(err)
		}
	}

	closes, err := s.LoadDailyCloses()
	if err != nil {
		t.Fatal(err)
	}
	if len(closes) != 2 {
		t.Fatalf("got %d records", len(closes))
	}
	if closes[1].Date.String() != "2026-03-02" {
		t.Errorf("got %s", closes[1].Date)
	}
}
