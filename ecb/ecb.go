// Package ecb resolves historical USD/EUR reference rates from the ECB data
// portal. It implements cgt.Rater.
package ecb

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ohehir/cgt"
	"github.com/ohehir/cgt/date"
)

// DefaultBaseURL is the EXR dataflow of the ECB data portal.
const DefaultBaseURL = "https://data-api.ecb.europa.eu/service/data/EXR"

// DefaultTimeout bounds a single rate request. The portal has no documented
// latency target; a stalled request must fail, not hang the run.
const DefaultTimeout = 30 * time.Second

// obsValueColumn is the observation-value column of the csvdata response.
const obsValueColumn = "OBS_VALUE"

// Client queries single-day historical rates for one currency pair.
//
// The zero value is not usable, use New. BaseURL and HTTPClient can be
// overridden, for tests or a mirror.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for the public ECB data portal, with a bounded
// timeout and a daily disk cache so reruns on the same day do not re-issue
// identical requests.
func New() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: newCachingClient(DefaultTimeout),
	}
}

// Rate resolves the USD in EUR quote for the given date: the returned rate
// is such that an EUR amount is the USD amount divided by it.
//
// The portal answers a small CSV table; the observation value is located by
// column name, never by position. A response without that column, without a
// data row for the date, or with an unparseable value resolves to a
// cgt.RateUnavailableError. There is no retry and no fallback rate.
func (c *Client) Rate(on date.Date) (float64, error) {
	addr := fmt.Sprintf("%s/D.%s.%s.SP00.A?detail=dataonly&startPeriod=%s&endPeriod=%s&format=csvdata",
		c.BaseURL, cgt.FromCurrency, cgt.ToCurrency, on, on)

	resp, err := c.HTTPClient.Get(addr)
	if err != nil {
		return 0, &cgt.RateUnavailableError{Date: on, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, &cgt.RateUnavailableError{Date: on,
			Err: fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)}
	}

	rate, err := parseObservation(resp.Body)
	if err != nil {
		return 0, &cgt.RateUnavailableError{Date: on, Err: err}
	}
	return rate, nil
}

// parseObservation extracts the first observation value from a csvdata body.
func parseObservation(body io.Reader) (float64, error) {
	r := csv.NewReader(body)
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("cannot read response header: %w", err)
	}
	col := -1
	for i, h := range header {
		if strings.TrimSpace(h) == obsValueColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return 0, fmt.Errorf("response has no %s column", obsValueColumn)
	}

	record, err := r.Read()
	if errors.Is(err, io.EOF) {
		return 0, errors.New("response has no observation for that date")
	}
	if err != nil {
		return 0, fmt.Errorf("cannot read observation row: %w", err)
	}
	if col >= len(record) {
		return 0, fmt.Errorf("observation row has no %s field", obsValueColumn)
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
	if err != nil {
		return 0, fmt.Errorf("observation value %q is not a number: %w", record[col], err)
	}
	return rate, nil
}
