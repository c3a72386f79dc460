package cgt

import (
	"time"

	"github.com/ohehir/cgt/date"
)

// TaxParams are the jurisdiction constants of the computation. They are
// configuration, never derived from the data.
type TaxParams struct {
	// ExemptionEUR is the annual personal exemption, applied exactly once
	// against the full-year net gain.
	ExemptionEUR float64
	// TaxRate is the rate applied to the taxable gain.
	TaxRate float64
}

// DefaultTaxParams returns the current Irish CGT parameters: 33% rate and
// the €1270 annual personal exemption.
func DefaultTaxParams() TaxParams {
	return TaxParams{ExemptionEUR: 1270, TaxRate: 0.33}
}

// TaxReport is the full-year tax position derived from one run's
// transactions.
type TaxReport struct {
	// FiscalYear is the year of the first transaction, zero when the run
	// had no qualifying sale.
	FiscalYear int
	Year       PeriodTaxReport
	Params     TaxParams
	// EURTaxableGain is the full-year net gain above the exemption, floored
	// at zero.
	EURTaxableGain float64
	EURTax         float64
}

// BuildReport computes the full-year tax report. An empty transaction list
// is legal and yields all-zero totals.
//
// The exemption is applied once, to the full-year net gain only. The
// statutory sub-periods never enter this arithmetic, they are reported for
// presentation via Aggregate with InitialPeriod and LaterPeriod bounds.
func BuildReport(txs []Transaction, params TaxParams) TaxReport {
	fiscalYear := 0
	if len(txs) > 0 {
		fiscalYear = txs[0].SellDate.Year()
	}
	year := Aggregate(txs, nil)
	taxable := max(year.EURNetGain-params.ExemptionEUR, 0)
	return TaxReport{
		FiscalYear:     fiscalYear,
		Year:           year,
		Params:         params,
		EURTaxableGain: taxable,
		EURTax:         taxable * params.TaxRate,
	}
}

// The two statutory payment windows of the Irish CGT calendar. Together they
// partition the fiscal year exactly: no overlap, no gap.

// InitialPeriod is the Jan 1 to Nov 30 window of the fiscal year.
func InitialPeriod(year int) date.Range {
	return date.Range{
		From: date.New(year, time.January, 1),
		To:   date.New(year, time.November, 30),
	}
}

// LaterPeriod is the Dec 1 to Dec 31 window of the fiscal year.
func LaterPeriod(year int) date.Range {
	return date.Range{
		From: date.New(year, time.December, 1),
		To:   date.New(year, time.December, 31),
	}
}
