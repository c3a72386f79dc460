package cgt

import (
	"errors"
	"fmt"

	"github.com/ohehir/cgt/date"
)

// The four columns Normalize requires from the source sheet, by exact
// (trimmed) header name.
const (
	ColumnDateSold      = "Date Sold"
	ColumnGainLoss      = "Adjusted Gain/Loss"
	ColumnRecordType    = "Record Type"
	ColumnTotalProceeds = "Total Proceeds"
)

// RecordTypeSell marks a completed sale disposal, the only record type that
// contributes to the report. Every other record type is silently dropped.
const RecordTypeSell = "Sell"

// columns holds the resolved position of each required column.
type columns struct {
	dateSold, gainLoss, recordType, totalProceeds int
}

func findColumns(header []string) (c columns, err error) {
	if c.dateSold, err = columnIndex(header, ColumnDateSold); err != nil {
		return c, err
	}
	if c.gainLoss, err = columnIndex(header, ColumnGainLoss); err != nil {
		return c, err
	}
	if c.recordType, err = columnIndex(header, ColumnRecordType); err != nil {
		return c, err
	}
	if c.totalProceeds, err = columnIndex(header, ColumnTotalProceeds); err != nil {
		return c, err
	}
	return c, nil
}

// Normalize turns raw sheet rows into validated transactions.
//
// Rows are processed in their given order and the resulting list preserves
// that order. Non-"Sell" rows are skipped. All sales must belong to a single
// fiscal year, fixed by the first sale encountered. Each sale's USD figures
// are converted to EUR with the rate resolved for its sell date; rates are
// resolved in row order, so the rater is consulted once per distinct date
// when it memoizes.
//
// Any failure aborts the whole ingestion: no partial list is ever returned.
func Normalize(header []string, rows []Row, rates Rater) ([]Transaction, error) {
	cols, err := findColumns(header)
	if err != nil {
		return nil, err
	}

	var txs []Transaction
	fiscalYear := 0

	for i, row := range rows {
		// 1-based sheet position, header row included.
		sheetRow := i + 2

		if row.at(cols.recordType).Text() != RecordTypeSell {
			continue
		}

		sellDate, err := date.ParseUS(row.at(cols.dateSold).Text())
		if err != nil {
			return nil, &MalformedFieldError{Column: ColumnDateSold, Row: sheetRow, Err: err}
		}
		if fiscalYear == 0 {
			fiscalYear = sellDate.Year()
		} else if sellDate.Year() != fiscalYear {
			return nil, &CrossYearError{FiscalYear: fiscalYear, Date: sellDate, Row: sheetRow}
		}

		proceeds, ok := row.at(cols.totalProceeds).Float()
		if !ok {
			return nil, &MalformedFieldError{Column: ColumnTotalProceeds, Row: sheetRow,
				Err: fmt.Errorf("%q is not a number", row.at(cols.totalProceeds).Text())}
		}
		if proceeds < 0 {
			return nil, &MalformedFieldError{Column: ColumnTotalProceeds, Row: sheetRow,
				Err: errors.New("proceeds must be non-negative")}
		}

		gainLoss, ok := row.at(cols.gainLoss).Float()
		if !ok {
			return nil, &MalformedFieldError{Column: ColumnGainLoss, Row: sheetRow,
				Err: fmt.Errorf("%q is not a number", row.at(cols.gainLoss).Text())}
		}
		usdGain, usdLoss := splitGainLoss(gainLoss)

		rate, err := rates.Rate(sellDate)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", sheetRow, err)
		}

		txs = append(txs, Transaction{
			SellDate:    sellDate,
			USDGain:     usdGain,
			USDLoss:     usdLoss,
			EURGain:     usdGain / rate,
			EURLoss:     usdLoss / rate,
			Rate:        rate,
			USDProceeds: proceeds,
			EURProceeds: proceeds / rate,
		})
	}
	return txs, nil
}

// splitGainLoss splits a signed gain-or-loss figure into its non-negative
// gain and loss parts. At most one of the two is nonzero.
func splitGainLoss(v float64) (gain, loss float64) {
	if v >= 0 {
		return v, 0
	}
	return 0, -v
}
