// Package cmd implements the CLI application to compute the capital gains
// tax report.
package cmd

import (
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/ohehir/cgt"
	"github.com/ohehir/cgt/ecb"
	"github.com/ohehir/cgt/etrade"
)

// Commands are the subcommands of the cgt tool. A main package registers
// them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&detailCmd{},
	&rateCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

var ratesURL = flag.String("rates-url", "", "Base URL of the exchange-rate service (default $CGT_RATES_URL or the ECB data portal)")
var httpTimeout = flag.Duration("http-timeout", 0, "Timeout for a single rate request (default $CGT_HTTP_TIMEOUT or 30s)")

// newRater builds the rate resolver for one run: the ECB client wrapped in
// the per-date memo.
func newRater() *cgt.RateCache {
	client := ecb.New()
	if url := stringOr(*ratesURL, os.Getenv("CGT_RATES_URL")); url != "" {
		client.BaseURL = url
	}
	if *httpTimeout > 0 {
		client.HTTPClient.Timeout = *httpTimeout
	} else if t, err := time.ParseDuration(os.Getenv("CGT_HTTP_TIMEOUT")); err == nil && t > 0 {
		client.HTTPClient.Timeout = t
	}
	return cgt.NewRateCache(client)
}

// loadTransactions is the whole ingestion: worksheet rows in, normalized
// transactions out.
func loadTransactions(path string) ([]cgt.Transaction, error) {
	header, rows, err := etrade.ReadGains(path)
	if err != nil {
		return nil, err
	}
	return cgt.Normalize(header, rows, newRater())
}

func stringOr(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
