package finplan

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to display amounts. The engine is
// single-currency.
const DefaultCurrency = "USD"

// dec converts a float amount into an exact decimal.
//
// Amounts come in as float64 from the aggregator and the snapshot file;
// decimal.NewFromFloat keeps the shortest representation so 0.1 stays 0.1.
func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// fl converts back an exact decimal to the float amount of the data model.
func fl(d decimal.Decimal) float64 { return d.InexactFloat64() }

// currency returns the go-money currency for a code, never nil.
func currency(code string) money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, code).Currency()
}

// FormatAmount formats an amount in the given currency, like "$1,234.56".
// An empty code means DefaultCurrency.
func FormatAmount(amount float64, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	cur := currency(code)
	minor := dec(amount).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatSignedAmount is like FormatAmount but always shows the sign, and
// returns "-" for zero.
func FormatSignedAmount(amount float64, code string) string {
	if amount == 0 {
		return "-"
	}
	if amount > 0 {
		return "+" + FormatAmount(amount, code)
	}
	return FormatAmount(amount, code)
}
