package cashbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Settings holds the cash book's persisted preferences as loose string
// key/values. Typed accessors default sensibly when a key is absent or
// unparsable, so a partial or hand-edited file never blocks a computation.
type Settings map[string]string

// Well-known settings keys.
const (
	SettingInitialUSD    = "initialBalanceUSD"
	SettingInitialCDF    = "initialBalanceCDF"
	SettingExchangeRate  = "exchangeRate"
	SettingSetupComplete = "setupComplete"
)

// NewSettings returns an empty settings map.
func NewSettings() Settings { return make(Settings) }

// Get returns the raw value of a key, or "" if absent.
func (s Settings) Get(key string) string { return s[key] }

// Set records the raw value of a key.
func (s Settings) Set(key, value string) { s[key] = value }

func (s Settings) decimal(key string) decimal.Decimal {
	v, err := decimal.NewFromString(s[key])
	if err != nil {
		return decimal.Zero
	}
	return v
}

// Balances returns the initial balances, zero for any unset currency.
func (s Settings) Balances() BalanceSettings {
	return BalanceSettings{
		InitialUSD: s.decimal(SettingInitialUSD),
		InitialCDF: s.decimal(SettingInitialCDF),
	}
}

// SetBalances stores the initial balances.
func (s Settings) SetBalances(b BalanceSettings) {
	s[SettingInitialUSD] = b.InitialUSD.String()
	s[SettingInitialCDF] = b.InitialCDF.String()
}

// ExchangeRate returns the default CDF-per-USD rate used to pre-fill
// transfers, zero when unset.
func (s Settings) ExchangeRate() decimal.Decimal {
	return s.decimal(SettingExchangeRate)
}

// SetExchangeRate stores the default CDF-per-USD rate.
func (s Settings) SetExchangeRate(rate decimal.Decimal) {
	s[SettingExchangeRate] = rate.String()
}

// SetupComplete reports whether initial setup was recorded as done.
func (s Settings) SetupComplete() bool { return s[SettingSetupComplete] == "true" }

// MarkSetupComplete records initial setup as done.
func (s Settings) MarkSetupComplete() { s[SettingSetupComplete] = "true" }

// DecodeSettings reads settings as a single JSON object. An empty reader
// yields empty settings.
func DecodeSettings(r io.Reader) (Settings, error) {
	s := NewSettings()
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return s, nil
		}
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// EncodeSettings writes settings as an indented JSON object.
func EncodeSettings(w io.Writer, s Settings) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
