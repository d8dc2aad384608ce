package cashbook

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// The two currencies of the cash book. USD amounts are displayed with two
// decimals and a leading dollar sign, CDF amounts as whole francs with a
// trailing "FC". Those precisions are a firm display contract.
const (
	USD = "USD"
	CDF = "CDF"
)

func init() {
	// go-money ships CDF with 2 fractional digits and a leading symbol;
	// the cash book contract is 0 digits and "1,234 FC".
	money.AddCurrency(CDF, "FC", "1 $", ".", ",", 0)
}

// Currencies returns the two supported currency codes, USD first.
func Currencies() []string { return []string{USD, CDF} }

// CurrencyName returns the human readable name of a currency code.
func CurrencyName(cur string) string {
	switch cur {
	case USD:
		return "US Dollar"
	case CDF:
		return "Congolese Franc"
	default:
		return cur
	}
}

// ValidateCurrency returns an error if cur is not one of the two supported
// currency codes.
func ValidateCurrency(cur string) error {
	if cur != USD && cur != CDF {
		return fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownCurrency, cur, USD, CDF)
	}
	return nil
}

// Other returns the opposite currency in the two-currency system.
func Other(cur string) string {
	if cur == USD {
		return CDF
	}
	return USD
}

// FormatCurrency renders an amount with its currency symbol: "$1,234.56" for
// USD, "28,500 FC" for CDF. Negative values carry the sign before the whole
// rendering ("-$30.00", "-500 FC").
func FormatCurrency(v decimal.Decimal, cur string) string {
	return M(v, cur).String()
}

// FormatAmount renders an amount without its currency symbol, keeping the
// currency's fraction and grouping rules.
func FormatAmount(v decimal.Decimal, cur string) string {
	s := FormatCurrency(v, cur)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "FC", "")
	return strings.TrimSpace(s)
}

// ParseAmount parses a user-entered amount, ignoring every character except
// digits, the decimal point and the minus sign. It never fails: anything
// unparsable is zero.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}
