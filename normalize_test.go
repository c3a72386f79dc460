package cgt

import (
	"errors"
	"testing"
)

func TestNormalize_worksheetScenario(t *testing.T) {
	rows := []Row{
		sellRow("Sell", "3/1/2023", 1000, 5000),
		sellRow("Sell", "3/1/2023", -200, 800),
	}
	source := &fakeRater{rates: map[string]float64{"2023-03-01": 1.10}}
	txs, err := Normalize(gainsHeader, rows, NewRateCache(source))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("Normalize() returned %d transactions, want 2", len(txs))
	}
	if source.calls != 1 {
		t.Errorf("rate service resolved %d times, want 1 for a shared sale date", source.calls)
	}

	gain, loss := txs[0], txs[1]
	if gain.USDGain != 1000 || gain.USDLoss != 0 {
		t.Errorf("gain row split = (%v, %v), want (1000, 0)", gain.USDGain, gain.USDLoss)
	}
	if loss.USDGain != 0 || loss.USDLoss != 200 {
		t.Errorf("loss row split = (%v, %v), want (0, 200)", loss.USDGain, loss.USDLoss)
	}
	if !almostEqual(gain.EURGain, 1000/1.10) {
		t.Errorf("EURGain = %v, want %v", gain.EURGain, 1000/1.10)
	}
	if !almostEqual(loss.EURLoss, 200/1.10) {
		t.Errorf("EURLoss = %v, want %v", loss.EURLoss, 200/1.10)
	}
	if !almostEqual(gain.EURProceeds, 5000/1.10) {
		t.Errorf("EURProceeds = %v, want %v", gain.EURProceeds, 5000/1.10)
	}
	if gain.Rate != 1.10 || loss.Rate != 1.10 {
		t.Errorf("applied rates = (%v, %v), want 1.10 for both", gain.Rate, loss.Rate)
	}
}

// Every produced transaction carries non-negative figures and at most one of
// gain/loss nonzero.
func TestNormalize_signSplitInvariant(t *testing.T) {
	rows := []Row{
		sellRow("Sell", "1/5/2023", 42.5, 100),
		sellRow("Sell", "2/6/2023", -13.25, 50),
		sellRow("Sell", "3/7/2023", 0, 10),
	}
	rates := map[string]float64{"2023-01-05": 1.1, "2023-02-06": 1.2, "2023-03-07": 0.9}
	for _, tx := range mustNormalize(t, rows, rates) {
		if tx.USDGain < 0 || tx.USDLoss < 0 {
			t.Errorf("%s: negative gain/loss split (%v, %v)", tx.SellDate, tx.USDGain, tx.USDLoss)
		}
		if tx.USDGain != 0 && tx.USDLoss != 0 {
			t.Errorf("%s: both gain and loss nonzero (%v, %v)", tx.SellDate, tx.USDGain, tx.USDLoss)
		}
		if !almostEqual(tx.EURGain, tx.USDGain/tx.Rate) || !almostEqual(tx.EURLoss, tx.USDLoss/tx.Rate) {
			t.Errorf("%s: EUR figures not USD/rate", tx.SellDate)
		}
	}
}

func TestNormalize_skipsOtherRecordTypes(t *testing.T) {
	rows := []Row{
		sellRow("Buy", "3/1/2023", 999, 999),
		sellRow("Sell", "3/1/2023", 100, 500),
		sellRow("Dividend", "3/1/2023", 1, 1),
	}
	txs := mustNormalize(t, rows, map[string]float64{"2023-03-01": 1.0})
	if len(txs) != 1 {
		t.Fatalf("Normalize() returned %d transactions, want 1 (only the Sell row)", len(txs))
	}
	if txs[0].USDGain != 100 {
		t.Errorf("kept the wrong row: USDGain = %v, want 100", txs[0].USDGain)
	}
}

func TestNormalize_preservesRowOrder(t *testing.T) {
	rows := []Row{
		sellRow("Sell", "6/15/2023", 3, 3),
		sellRow("Sell", "1/2/2023", 1, 1),
		sellRow("Sell", "12/31/2023", 2, 2),
	}
	rates := map[string]float64{"2023-06-15": 1, "2023-01-02": 1, "2023-12-31": 1}
	txs := mustNormalize(t, rows, rates)
	want := []string{"2023-06-15", "2023-01-02", "2023-12-31"}
	for i, w := range want {
		if txs[i].SellDate.String() != w {
			t.Errorf("txs[%d].SellDate = %s, want %s (input order must be preserved)", i, txs[i].SellDate, w)
		}
	}
}

func TestNormalize_crossYearFails(t *testing.T) {
	rows := []Row{
		sellRow("Sell", "3/1/2023", 100, 100),
		sellRow("Sell", "3/1/2024", 100, 100),
	}
	rates := map[string]float64{"2023-03-01": 1, "2024-03-01": 1}
	txs, err := Normalize(gainsHeader, rows, NewRateCache(&fakeRater{rates: rates}))
	var cye *CrossYearError
	if !errors.As(err, &cye) {
		t.Fatalf("Normalize() error = %v, want CrossYearError", err)
	}
	if cye.FiscalYear != 2023 || cye.Date.Year() != 2024 {
		t.Errorf("CrossYearError = %+v, want fiscal year 2023 and date in 2024", cye)
	}
	if txs != nil {
		t.Error("Normalize() must not return a partial transaction list on failure")
	}
}

func TestNormalize_missingColumn(t *testing.T) {
	header := []string{"Record Type", "Date Sold", "Total Proceeds"} // no gain/loss
	_, err := Normalize(header, nil, NewRateCache(&fakeRater{}))
	var mce *MissingColumnError
	if !errors.As(err, &mce) {
		t.Fatalf("Normalize() error = %v, want MissingColumnError", err)
	}
	if mce.Column != ColumnGainLoss {
		t.Errorf("MissingColumnError.Column = %q, want %q", mce.Column, ColumnGainLoss)
	}
}

func TestNormalize_malformedFields(t *testing.T) {
	rates := map[string]float64{"2023-03-01": 1}

	cases := []struct {
		name   string
		row    Row
		column string
	}{
		{"bad date", sellRow("Sell", "not a date", 1, 1), ColumnDateSold},
		{"text gain/loss", Row{StringCell(""), StringCell("Sell"), StringCell("3/1/2023"), NumberCell(1), StringCell("n/a"), NumberCell(1)}, ColumnGainLoss},
		{"text proceeds", Row{StringCell(""), StringCell("Sell"), StringCell("3/1/2023"), NumberCell(1), NumberCell(1), StringCell("n/a")}, ColumnTotalProceeds},
		{"negative proceeds", sellRow("Sell", "3/1/2023", 1, -5), ColumnTotalProceeds},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Normalize(gainsHeader, []Row{c.row}, NewRateCache(&fakeRater{rates: rates}))
			var mfe *MalformedFieldError
			if !errors.As(err, &mfe) {
				t.Fatalf("Normalize() error = %v, want MalformedFieldError", err)
			}
			if mfe.Column != c.column {
				t.Errorf("MalformedFieldError.Column = %q, want %q", mfe.Column, c.column)
			}
			if mfe.Row != 2 {
				t.Errorf("MalformedFieldError.Row = %d, want 2 (first data row)", mfe.Row)
			}
		})
	}
}

func TestNormalize_rateFailureAborts(t *testing.T) {
	rows := []Row{
		sellRow("Sell", "3/1/2023", 100, 100), // resolvable
		sellRow("Sell", "3/2/2023", 100, 100), // not in the table
	}
	txs, err := Normalize(gainsHeader, rows, NewRateCache(&fakeRater{rates: map[string]float64{"2023-03-01": 1.1}}))
	var rue *RateUnavailableError
	if !errors.As(err, &rue) {
		t.Fatalf("Normalize() error = %v, want RateUnavailableError", err)
	}
	if rue.Date.String() != "2023-03-02" {
		t.Errorf("RateUnavailableError.Date = %s, want 2023-03-02", rue.Date)
	}
	if txs != nil {
		t.Error("Normalize() must not return a partial transaction list on failure")
	}
}

func TestNormalize_emptyInput(t *testing.T) {
	txs := mustNormalize(t, nil, nil)
	if len(txs) != 0 {
		t.Errorf("Normalize() returned %d transactions for empty input, want 0", len(txs))
	}
	// Rows of foreign record types only are also a legal empty result.
	txs = mustNormalize(t, []Row{sellRow("Buy", "3/1/2023", 1, 1)}, nil)
	if len(txs) != 0 {
		t.Errorf("Normalize() returned %d transactions, want 0", len(txs))
	}
}

// Short rows happen: xlsx readers drop trailing empty cells. They must not
// panic, and a row whose record-type cell is missing is simply not a sale.
func TestNormalize_shortRow(t *testing.T) {
	txs := mustNormalize(t, []Row{{StringCell("ZZZZ")}}, nil)
	if len(txs) != 0 {
		t.Errorf("Normalize() returned %d transactions for a short row, want 0", len(txs))
	}
}
