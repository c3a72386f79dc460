package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ohehir/cgt"
	"github.com/ohehir/cgt/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	detail    string
	exemption float64
	taxRate   float64
	plain     bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute and print the capital gains tax report" }
func (*reportCmd) Usage() string {
	return `cgt report [-detail <file.csv>] [-exemption <eur>] [-tax-rate <rate>] <gains.xlsx>

  Reads the expanded gains worksheet, converts each sale to EUR with the
  historical rate of its sale date, and prints the tax report for the two
  statutory periods and the full fiscal year.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	defaults := cgt.DefaultTaxParams()
	f.StringVar(&c.detail, "detail", "CGT_transaction_detail.csv", "Also write the per-transaction detail CSV there. Empty disables it.")
	f.Float64Var(&c.exemption, "exemption", defaults.ExemptionEUR, "Annual personal exemption, in EUR")
	f.Float64Var(&c.taxRate, "tax-rate", defaults.TaxRate, "Capital gains tax rate")
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of rendering for the terminal")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one gains workbook path")
		return subcommands.ExitUsageError
	}

	txs, err := loadTransactions(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	report := cgt.BuildReport(txs, cgt.TaxParams{ExemptionEUR: c.exemption, TaxRate: c.taxRate})
	initial := cgt.Aggregate(txs, ptr(cgt.InitialPeriod(report.FiscalYear)))
	later := cgt.Aggregate(txs, ptr(cgt.LaterPeriod(report.FiscalYear)))

	if c.detail != "" {
		if err := cgt.WriteDetail(c.detail, txs); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing detail file: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "The transaction detail was written as CSV to file %s\n", c.detail)
	}

	printMarkdown(renderer.TaxReportMarkdown(&report, initial, later), c.plain)
	return subcommands.ExitSuccess
}

func ptr[T any](v T) *T { return &v }
