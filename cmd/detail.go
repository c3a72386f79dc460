package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ohehir/cgt"
)

// detailCmd holds the flags for the 'detail' subcommand.
type detailCmd struct {
	out string
}

func (*detailCmd) Name() string     { return "detail" }
func (*detailCmd) Synopsis() string { return "write the per-transaction detail CSV" }
func (*detailCmd) Usage() string {
	return `cgt detail [-o <file.csv>] <gains.xlsx>

  Writes one CSV row per sale with its USD and EUR figures and the exchange
  rate that was applied, in worksheet order.
`
}

func (c *detailCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "CGT_transaction_detail.csv", "Destination file")
}

func (c *detailCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one gains workbook path")
		return subcommands.ExitUsageError
	}

	txs, err := loadTransactions(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading transactions: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := cgt.WriteDetail(c.out, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing detail file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("The transaction detail was written as CSV to file %s\n", c.out)
	return subcommands.ExitSuccess
}
