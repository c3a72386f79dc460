// Package cgt computes an Irish capital-gains tax report from a brokerage
// gains-and-losses worksheet.
//
// Raw sheet rows are normalized into Transactions (USD figures converted to
// EUR with the historical exchange rate of each sale date), aggregated over
// the statutory payment windows and the full fiscal year, and reduced to a
// taxable gain and tax due after the annual personal exemption.
//
// The package owns the business rules only. Reading the workbook, resolving
// rates over HTTP and rendering reports live in the etrade, ecb and renderer
// subpackages.
package cgt
