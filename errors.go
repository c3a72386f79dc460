package cgt

import (
	"fmt"

	"github.com/ohehir/cgt/date"
)

// The ingestion failure taxonomy. All of them abort the whole run: there is
// no partial-success mode, a report is either complete or absent.

// MissingColumnError reports a required column absent from the header row.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q in header row", e.Column)
}

// MalformedFieldError reports a cell whose value does not match the type the
// column requires. Row is the 1-based position in the source sheet, header
// included, so it matches what the user sees in a spreadsheet application.
type MalformedFieldError struct {
	Column string
	Row    int
	Err    error
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("row %d: malformed %q field: %v", e.Row, e.Column, e.Err)
}

func (e *MalformedFieldError) Unwrap() error { return e.Err }

// CrossYearError reports a sale whose year disagrees with the fiscal year
// established by the first sale of the run.
type CrossYearError struct {
	FiscalYear int
	Date       date.Date
	Row        int
}

func (e *CrossYearError) Error() string {
	return fmt.Sprintf("row %d: sale on %s is outside fiscal year %d: all sales must belong to a single fiscal year",
		e.Row, e.Date, e.FiscalYear)
}

// RateUnavailableError reports that no usable exchange rate could be resolved
// for a sale date. A missing rate is fatal for the run, never substituted.
type RateUnavailableError struct {
	Date date.Date
	Err  error
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("no %s/%s exchange rate for %s: %v", FromCurrency, ToCurrency, e.Date, e.Err)
}

func (e *RateUnavailableError) Unwrap() error { return e.Err }
