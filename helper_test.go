package cgt

import (
	"math"
	"testing"

	"github.com/ohehir/cgt/date"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) <= tolerance }

// fakeRater resolves from a fixed table and counts resolutions, so tests can
// assert on the number of external calls.
type fakeRater struct {
	rates map[string]float64
	calls int
}

func (r *fakeRater) Rate(on date.Date) (float64, error) {
	r.calls++
	if v, ok := r.rates[on.String()]; ok {
		return v, nil
	}
	return 0, &RateUnavailableError{Date: on, Err: errNoRate}
}

var errNoRate = errTest("no rate in table")

type errTest string

func (e errTest) Error() string { return string(e) }

// gainsHeader deliberately orders columns differently from the normalizer's
// declaration order, with padding the lookup must ignore.
var gainsHeader = []string{"Symbol", "Record Type ", " Date Sold", "Qty", "Adjusted Gain/Loss", "Total Proceeds"}

// sellRow builds a data row matching gainsHeader.
func sellRow(recordType, dateSold string, gainLoss, proceeds float64) Row {
	return Row{
		StringCell("ZZZZ"),
		StringCell(recordType),
		StringCell(dateSold),
		NumberCell(10),
		NumberCell(gainLoss),
		NumberCell(proceeds),
	}
}

func mustNormalize(t *testing.T, rows []Row, rates map[string]float64) []Transaction {
	t.Helper()
	txs, err := Normalize(gainsHeader, rows, NewRateCache(&fakeRater{rates: rates}))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	return txs
}
