package cgt

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value paired with its currency, for display only.
// Computation stays on float64; Amount exists so reports print amounts with
// the currency's symbol, separators and fraction digits.
type Amount struct {
	value decimal.Decimal
	cur   string
}

// Amt returns a displayable Amount for a major-unit value, e.g.
// Amt(909.0909, "EUR").String() == "€909,09".
func Amt(value float64, currency string) Amount {
	return Amount{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns a never-nil currency for the amount.
func (a Amount) currency() money.Currency {
	return *money.New(0, a.cur).Currency()
}

// String formats the amount with the currency formatter, rounded to the
// currency's fraction digits.
func (a Amount) String() string {
	cur := a.currency()
	minor := a.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
