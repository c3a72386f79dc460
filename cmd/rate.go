package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ohehir/cgt/date"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "resolve the USD/EUR rate for given dates" }
func (*rateCmd) Usage() string {
	return `cgt rate <YYYY-MM-DD> [<YYYY-MM-DD>...]

  Resolves and prints the historical USD in EUR reference rate for each
  date. Useful to probe the rate service.
`
}

func (*rateCmd) SetFlags(f *flag.FlagSet) {}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "expected at least one date")
		return subcommands.ExitUsageError
	}

	rater := newRater()
	for _, arg := range f.Args() {
		on, err := date.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		rate, err := rater.Rate(on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("%s %v\n", on, rate)
	}
	return subcommands.ExitSuccess
}
