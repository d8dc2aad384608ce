package cashbook

import (
	"time"

	"github.com/shopspring/decimal"
)

// USDm is a helper for tests to create dollar money from const.
func USDm(v float64) Money { return M(v, USD) }

// CDFm is a helper for tests to create franc money from const.
func CDFm(v float64) Money { return M(v, CDF) }

// at builds a timestamp within the given day, in UTC.
func at(day string, hour int) time.Time {
	d := MustParseDate(day)
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), hour, 0, 0, 0, time.UTC)
}

func income(day string, amount Money, category string) Income {
	return NewIncome("", at(day, 10), amount, Details{Category: category})
}

func expense(day string, amount Money, category string) Expense {
	return NewExpense("", at(day, 11), amount, Details{Category: category})
}

func transfer(day string, from, to Money) Transfer {
	return NewTransfer("", at(day, 12), from, to, decimal.Zero, Details{Category: "currency_exchange"})
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
