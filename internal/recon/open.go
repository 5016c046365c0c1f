package recon

import (
	"time"

	"github.com/finview/receivables/internal/dates"
)

// OpenInvoice is a condensed open item: either an unmatched row with a
// non-zero net, or a residual holder standing in for its whole group. For
// holders the credit is redisplayed as debit - residual so the line reads
// consistently on its own.
type OpenInvoice struct {
	Customer    string
	Number      string
	Date        *time.Time
	DueDate     *time.Time
	DebitMinor  int64
	CreditMinor int64
	AmountMinor int64
	SalesRep    string
	Matching    string
}

// OverdueInvoice is an open invoice annotated with its aging. Difference is
// the amount to report: the group net for residual holders, the row net
// otherwise.
type OverdueInvoice struct {
	OpenInvoice
	DaysOverdue     int
	DifferenceMinor int64
}

// OpenInvoices filters resolved rows down to the ones still carrying value.
func OpenInvoices(rows []Resolved) []OpenInvoice {
	out := make([]OpenInvoice, 0)
	for _, r := range rows {
		if !r.Open() {
			continue
		}
		inv := OpenInvoice{
			Customer:    r.Customer,
			Number:      r.Number,
			Date:        r.Date,
			DueDate:     r.DueDate,
			DebitMinor:  r.DebitMinor,
			CreditMinor: r.CreditMinor,
			AmountMinor: r.OpenAmountMinor(),
			SalesRep:    r.SalesRep,
			Matching:    r.Matching,
		}
		if r.ResidualMinor != nil {
			inv.CreditMinor = r.DebitMinor - *r.ResidualMinor
		}
		out = append(out, inv)
	}
	return out
}

// Overdue annotates every open invoice with its days overdue. Items not yet
// past their target date come through with zero or negative days so the
// annotated list buckets identically to the raw open items; listings that
// only want late items filter on DaysOverdue > 0.
func Overdue(invoices []OpenInvoice, today time.Time) []OverdueInvoice {
	out := make([]OverdueInvoice, 0, len(invoices))
	for _, inv := range invoices {
		days := dates.DaysOverdue(today, inv.Date, inv.DueDate)
		out = append(out, OverdueInvoice{OpenInvoice: inv, DaysOverdue: days, DifferenceMinor: inv.AmountMinor})
	}
	return out
}
