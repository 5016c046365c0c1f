package recon

import (
	"sort"
	"time"

	"github.com/finview/receivables/internal/ledger"
)

// MonthlyDebt is a calendar-month roll-up: debits are net sales (sale debits
// minus return credits), credits are smart payments.
type MonthlyDebt struct {
	Year        int
	Month       time.Month
	DebitMinor  int64
	CreditMinor int64
}

// NetMinor is the month's debt movement.
func (m MonthlyDebt) NetMinor() int64 { return m.DebitMinor - m.CreditMinor }

// MonthlyRollup groups rows by (year, month) of their transaction date.
// Rows without a parseable date are excluded. Output is ordered years
// descending, months chronological within each year, for the tabbed view.
func MonthlyRollup(rows []ledger.Row) []MonthlyDebt {
	type key struct {
		year  int
		month time.Month
	}
	acc := make(map[key]*MonthlyDebt)
	for _, r := range rows {
		if r.Date == nil {
			continue
		}
		k := key{year: r.Date.Year(), month: r.Date.Month()}
		m, ok := acc[k]
		if !ok {
			m = &MonthlyDebt{Year: k.year, Month: k.month}
			acc[k] = m
		}
		switch ClassifyRow(r) {
		case ledger.TxSale:
			m.DebitMinor += r.DebitMinor
		case ledger.TxSalesReturn:
			m.DebitMinor -= r.CreditMinor
		case ledger.TxPayment:
			m.CreditMinor += r.CreditMinor
		}
	}
	out := make([]MonthlyDebt, 0, len(acc))
	for _, m := range acc {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// LastN returns the trailing n months in chronological order (oldest first),
// the shape the trend charts consume.
func LastN(rollup []MonthlyDebt, n int) []MonthlyDebt {
	asc := make([]MonthlyDebt, len(rollup))
	copy(asc, rollup)
	sort.Slice(asc, func(i, j int) bool {
		if asc[i].Year != asc[j].Year {
			return asc[i].Year < asc[j].Year
		}
		return asc[i].Month < asc[j].Month
	})
	if n > 0 && len(asc) > n {
		asc = asc[len(asc)-n:]
	}
	return asc
}

// YearSummary aggregates one calendar year of activity plus the open
// balance reconciled over that year's rows alone.
type YearSummary struct {
	Year             int
	SalesMinor       int64
	ReturnsMinor     int64
	PaymentsMinor    int64
	NetMinor         int64
	OpenBalanceMinor int64
}

// YearlyRollup groups rows by year, newest first. Rows without a parseable
// date are excluded.
func YearlyRollup(rows []ledger.Row) []YearSummary {
	byYear := make(map[int][]ledger.Row)
	for _, r := range rows {
		if r.Date == nil {
			continue
		}
		y := r.Date.Year()
		byYear[y] = append(byYear[y], r)
	}
	out := make([]YearSummary, 0, len(byYear))
	for y, group := range byYear {
		s := YearSummary{Year: y}
		for _, r := range group {
			switch ClassifyRow(r) {
			case ledger.TxSale:
				s.SalesMinor += r.DebitMinor
			case ledger.TxSalesReturn:
				s.ReturnsMinor += r.CreditMinor
			case ledger.TxPayment:
				s.PaymentsMinor += r.CreditMinor
			}
			s.NetMinor += r.NetMinor()
		}
		s.OpenBalanceMinor = OpenBalanceMinor(Resolve(group))
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	return out
}
