// Package etrade reads the expanded gains-and-losses worksheet of an E*TRADE
// "Gains & Losses" workbook and exposes it as the row source the normalizer
// consumes: a header row of column names and data rows of tagged cells.
package etrade

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ohehir/cgt"
)

// SheetName is the worksheet holding one row per gain/loss record.
const SheetName = "G&L_Expanded"

// ReadGains opens the workbook and returns the header row and the data rows
// of the gains worksheet. A workbook without that worksheet is a fatal
// schema mismatch. Cell typing is decided here once, per cell: anything that
// reads as a number (currency symbols, separators and accounting parentheses
// stripped) becomes a number cell, everything else stays text.
func ReadGains(path string) (header []string, rows []cgt.Row, err error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open workbook %q: %w", path, err)
	}
	defer f.Close()

	all, err := f.GetRows(SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read worksheet %q: %w", SheetName, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("worksheet %q has no header row", SheetName)
	}

	header = all[0]
	rows = make([]cgt.Row, 0, len(all)-1)
	for _, raw := range all[1:] {
		row := make(cgt.Row, 0, len(raw))
		for _, cell := range raw {
			row = append(row, parseCell(cell))
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// parseCell tags a raw worksheet value as a number or text cell.
func parseCell(raw string) cgt.Cell {
	s := strings.TrimSpace(raw)
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return cgt.NumberCell(f)
	}
	// Exports format money as e.g. "$1,234.56" and losses as "(200.00)".
	clean := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		clean = "-" + clean[1:len(clean)-1]
	}
	if f, err := strconv.ParseFloat(clean, 64); err == nil && clean != s {
		return cgt.NumberCell(f)
	}
	return cgt.StringCell(s)
}
