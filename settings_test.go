package cashbook

import (
	"bytes"
	"strings"
	"testing"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings()
	b := s.Balances()
	if !b.InitialUSD.IsZero() || !b.InitialCDF.IsZero() {
		t.Errorf("empty settings should default to zero balances, got %+v", b)
	}
	if !s.ExchangeRate().IsZero() {
		t.Error("empty settings should have zero rate")
	}
	if s.SetupComplete() {
		t.Error("empty settings should not be setup complete")
	}
}

func TestSettingsUnparsableValueDefaultsToZero(t *testing.T) {
	s := NewSettings()
	s.Set(SettingInitialUSD, "a lot")
	if !s.Balances().InitialUSD.IsZero() {
		t.Error("unparsable value should read as zero")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := NewSettings()
	s.SetBalances(BalanceSettings{InitialUSD: dec("1000"), InitialCDF: dec("2500000")})
	s.SetExchangeRate(dec("2850"))
	s.MarkSetupComplete()

	var buf bytes.Buffer
	if err := EncodeSettings(&buf, s); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeSettings(&buf)
	if err != nil {
		t.Fatal(err)
	}

	b := got.Balances()
	if !b.InitialUSD.Equal(dec("1000")) || !b.InitialCDF.Equal(dec("2500000")) {
		t.Errorf("balances = %+v", b)
	}
	if !got.ExchangeRate().Equal(dec("2850")) {
		t.Errorf("rate = %s", got.ExchangeRate())
	}
	if !got.SetupComplete() {
		t.Error("setup flag lost")
	}
}

func TestDecodeSettingsEmpty(t *testing.T) {
	s, err := DecodeSettings(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 0 {
		t.Errorf("got %v", s)
	}
}
