// Package renderer turns tax reports into human-readable markdown.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/ohehir/cgt"
)

// TaxReportMarkdown renders the full-year tax report together with the two
// statutory-period sub-reports. The sub-reports are presentation only; the
// taxable gain and tax lines come from the full-year figures.
func TaxReportMarkdown(r *cgt.TaxReport, initial, later cgt.PeriodTaxReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Capital Gains Tax Report %d", r.FiscalYear))

	doc.H2(fmt.Sprintf("Initial Period (%s)", cgt.InitialPeriod(r.FiscalYear)))
	periodTable(doc, initial)

	doc.H2(fmt.Sprintf("Later Period (%s)", cgt.LaterPeriod(r.FiscalYear)))
	periodTable(doc, later)

	doc.H2("Full Fiscal Year")
	periodTable(doc, r.Year)

	doc.H2("Tax Due")
	doc.PlainText(fmt.Sprintf("Taxable gain (net gain above the %s exemption): %s",
		cgt.Amt(r.Params.ExemptionEUR, cgt.ToCurrency), cgt.Amt(r.EURTaxableGain, cgt.ToCurrency)))
	doc.PlainText(fmt.Sprintf("Tax to pay (%.2f%%): %s",
		r.Params.TaxRate*100, cgt.Amt(r.EURTax, cgt.ToCurrency)))

	return doc.String()
}

// periodTable appends the eight aggregate figures as a two-currency table.
func periodTable(doc *md.Markdown, p cgt.PeriodTaxReport) {
	usd := func(v float64) string { return cgt.Amt(v, cgt.FromCurrency).String() }
	eur := func(v float64) string { return cgt.Amt(v, cgt.ToCurrency).String() }

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", cgt.FromCurrency, cgt.ToCurrency},
		Rows: [][]string{
			{"Total proceeds", usd(p.USDProceeds), eur(p.EURProceeds)},
			{"Total gain", usd(p.USDGain), eur(p.EURGain)},
			{"Total loss", usd(p.USDLoss), eur(p.EURLoss)},
			{md.Bold("Net gain"), md.Bold(usd(p.USDNetGain)), md.Bold(eur(p.EURNetGain))},
		},
	})
}
