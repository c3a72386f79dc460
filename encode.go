package cgt

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// detailHeader is the fixed column order of the detail file.
var detailHeader = []string{
	"Sell Date",
	"USD Gain",
	"USD Loss",
	"EUR Gain",
	"EUR Loss",
	"EXR",
	"USD Proceeds",
	"EUR Proceeds",
}

// EncodeDetail writes the per-transaction detail as CSV: a header row, then
// one row per transaction in list order, dates as YYYY-MM-DD.
func EncodeDetail(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(detailHeader); err != nil {
		return fmt.Errorf("cannot write detail header: %w", err)
	}
	for _, t := range txs {
		record := []string{
			t.SellDate.String(),
			formatFloat(t.USDGain),
			formatFloat(t.USDLoss),
			formatFloat(t.EURGain),
			formatFloat(t.EURLoss),
			formatFloat(t.Rate),
			formatFloat(t.USDProceeds),
			formatFloat(t.EURProceeds),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write detail row for %s: %w", t.SellDate, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDetail writes the detail CSV to a file.
func WriteDetail(path string, txs []Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create detail file %q: %w", path, err)
	}
	if err := EncodeDetail(f, txs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
