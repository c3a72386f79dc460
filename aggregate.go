package cgt

import "github.com/ohehir/cgt/date"

// PeriodTaxReport sums transaction figures over a date interval. A fresh
// value is produced per aggregation; an empty interval yields all zeros.
type PeriodTaxReport struct {
	USDGain     float64
	USDLoss     float64
	USDNetGain  float64
	EURGain     float64
	EURLoss     float64
	EURNetGain  float64
	USDProceeds float64
	EURProceeds float64
}

// Aggregate sums the transactions whose sell date falls within the period,
// boundaries included. A nil period aggregates all transactions. The result
// does not depend on transaction order.
func Aggregate(txs []Transaction, period *date.Range) PeriodTaxReport {
	var r PeriodTaxReport
	for _, t := range txs {
		if period != nil && !period.Contains(t.SellDate) {
			continue
		}
		r.USDGain += t.USDGain
		r.USDLoss += t.USDLoss
		r.EURGain += t.EURGain
		r.EURLoss += t.EURLoss
		r.USDProceeds += t.USDProceeds
		r.EURProceeds += t.EURProceeds
	}
	r.USDNetGain = r.USDGain - r.USDLoss
	r.EURNetGain = r.EURGain - r.EURLoss
	return r
}
