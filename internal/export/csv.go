// Package export renders report views as downloadable CSV and Excel files.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/govalues/money"

	"github.com/finview/receivables/internal/recon"
	"github.com/finview/receivables/internal/report"
)

// formatMinor renders a minor-unit amount as a plain decimal string in the
// report currency, e.g. 150000 -> "1500.00".
func formatMinor(curr string, minor int64) string {
	a, err := money.NewAmountFromMinorUnits(curr, minor)
	if err != nil {
		return strconv.FormatInt(minor, 10)
	}
	return a.Decimal().String()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// CustomersCSV writes the customers overview, one line per customer in the
// order given.
func CustomersCSV(w io.Writer, curr string, customers []report.CustomerSummary) error {
	cw := csv.NewWriter(w)
	header := []string{
		"customer", "net_debt", "open_balance",
		"at_date", "overdue_1_30", "overdue_31_60", "overdue_61_90", "overdue_91_120", "overdue_older",
		"score", "rating",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, c := range customers {
		rec := []string{
			c.Name,
			formatMinor(curr, c.NetDebtMinor),
			formatMinor(curr, c.OpenBalanceMinor),
			formatMinor(curr, c.Aging.AtDateMinor),
			formatMinor(curr, c.Aging.OneToThirtyMinor),
			formatMinor(curr, c.Aging.ThirtyOneToSixtyMinor),
			formatMinor(curr, c.Aging.SixtyOneToNinetyMinor),
			formatMinor(curr, c.Aging.NinetyOneToOneTwentyMinor),
			formatMinor(curr, c.Aging.OlderMinor),
			strconv.Itoa(c.Score),
			string(c.Rating),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// OverdueCSV writes the overdue listing in the order given.
func OverdueCSV(w io.Writer, curr string, items []recon.OverdueInvoice) error {
	cw := csv.NewWriter(w)
	header := []string{"customer", "number", "date", "due_date", "days_overdue", "amount", "sales_rep", "matching"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, it := range items {
		rec := []string{
			it.Customer,
			it.Number,
			formatDate(it.Date),
			formatDate(it.DueDate),
			strconv.Itoa(it.DaysOverdue),
			formatMinor(curr, it.DifferenceMinor),
			it.SalesRep,
			it.Matching,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
