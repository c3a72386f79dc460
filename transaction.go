package cgt

import "github.com/ohehir/cgt/date"

// FromCurrency and ToCurrency are the only currency pair the report handles.
const (
	FromCurrency = "USD"
	ToCurrency   = "EUR"
)

// Transaction is a single completed sale, normalized from a worksheet row.
// It is fixed at normalization time and never mutated afterwards.
//
// USDGain and USDLoss are the positive and negative split of the sheet's
// signed gain-or-loss figure: both are non-negative and at most one is
// nonzero. The EUR figures are the USD figures divided by Rate, the USD in
// EUR exchange rate resolved for SellDate (kept for the detail output).
type Transaction struct {
	SellDate    date.Date
	USDGain     float64
	USDLoss     float64
	EURGain     float64
	EURLoss     float64
	Rate        float64
	USDProceeds float64
	EURProceeds float64
}
