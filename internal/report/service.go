// Package report is the read side of the service: it pulls ledger rows from
// storage and runs the reconciliation engine over them to produce the
// dashboard views. Every call recomputes from the stored rows.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/finview/receivables/internal/errs"
	"github.com/finview/receivables/internal/ledger"
	"github.com/finview/receivables/internal/recon"
)

// Repo is the row access the reports need.
type Repo interface {
	RowsAll(ctx context.Context) ([]ledger.Row, error)
	RowsByCustomer(ctx context.Context, customer string) ([]ledger.Row, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// CustomerSummary is one line of the customers overview.
type CustomerSummary struct {
	Name             string
	NetDebtMinor     int64
	OpenBalanceMinor int64
	Aging            recon.AgingSummary
	Score            int
	Rating           recon.Rating
}

// CustomerAnalysis is the full drill-down for a single customer.
type CustomerAnalysis struct {
	CustomerSummary
	OpenInvoices []recon.OpenInvoice
	Overdue      []recon.OverdueInvoice
	Monthly      []recon.MonthlyDebt
	Years        []recon.YearSummary
	LastSale     *time.Time
	LastPayment  *time.Time
}

// Customers builds the overview, one summary per customer, ordered by net
// debt descending with name as the tiebreaker.
func (s *Service) Customers(ctx context.Context, today time.Time) ([]CustomerSummary, error) {
	rows, err := s.repo.RowsAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: load rows: %w", err)
	}
	grouped := groupByCustomer(rows)
	out := make([]CustomerSummary, 0, len(grouped))
	for name, group := range grouped {
		out = append(out, summarize(name, group, today))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].NetDebtMinor != out[j].NetDebtMinor {
			return out[i].NetDebtMinor > out[j].NetDebtMinor
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Analysis builds the drill-down for one customer. A name with no ledger
// rows yields errs.ErrUnknownCustomer.
func (s *Service) Analysis(ctx context.Context, customer string, today time.Time) (CustomerAnalysis, error) {
	rows, err := s.repo.RowsByCustomer(ctx, customer)
	if err != nil {
		return CustomerAnalysis{}, fmt.Errorf("report: load rows for %q: %w", customer, err)
	}
	if len(rows) == 0 {
		return CustomerAnalysis{}, errs.ErrUnknownCustomer
	}
	resolved := recon.Resolve(rows)
	open := recon.OpenInvoices(resolved)
	in := recon.BuildRatingInput(rows, today)
	score, rating := recon.Score(in, today)
	a := CustomerAnalysis{
		CustomerSummary: CustomerSummary{
			Name:             customer,
			NetDebtMinor:     in.NetDebtMinor,
			OpenBalanceMinor: recon.OpenBalanceMinor(resolved),
			Aging:            recon.Aging(open, today),
			Score:            score,
			Rating:           rating,
		},
		OpenInvoices: open,
		Overdue:      pastDue(recon.Overdue(open, today)),
		Monthly:      recon.MonthlyRollup(rows),
		Years:        recon.YearlyRollup(rows),
		LastSale:     in.LastSale,
		LastPayment:  in.LastPayment,
	}
	return a, nil
}

// Overdue lists every overdue open item across all customers, most overdue
// first.
func (s *Service) Overdue(ctx context.Context, today time.Time) ([]recon.OverdueInvoice, error) {
	rows, err := s.repo.RowsAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: load rows: %w", err)
	}
	out := make([]recon.OverdueInvoice, 0)
	for _, group := range groupByCustomer(rows) {
		open := recon.OpenInvoices(recon.Resolve(group))
		out = append(out, pastDue(recon.Overdue(open, today))...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DaysOverdue != out[j].DaysOverdue {
			return out[i].DaysOverdue > out[j].DaysOverdue
		}
		return out[i].Customer < out[j].Customer
	})
	return out, nil
}

// Aging is the global six-band histogram as of the given day.
func (s *Service) Aging(ctx context.Context, asOf time.Time) (recon.AgingSummary, error) {
	rows, err := s.repo.RowsAll(ctx)
	if err != nil {
		return recon.AgingSummary{}, fmt.Errorf("report: load rows: %w", err)
	}
	var sum recon.AgingSummary
	for _, group := range groupByCustomer(rows) {
		open := recon.OpenInvoices(recon.Resolve(group))
		for _, inv := range open {
			_, days := recon.Bucketize(inv.Date, inv.DueDate, asOf)
			sum.Add(inv.AmountMinor, days)
		}
	}
	return sum, nil
}

// Monthly is the month-by-month debt movement, optionally limited to one
// customer and to the trailing n months (chronological when limited).
func (s *Service) Monthly(ctx context.Context, customer string, months int) ([]recon.MonthlyDebt, error) {
	rows, err := s.rowsFor(ctx, customer)
	if err != nil {
		return nil, err
	}
	rollup := recon.MonthlyRollup(rows)
	if months > 0 {
		return recon.LastN(rollup, months), nil
	}
	return rollup, nil
}

// Years is the per-year activity summary, optionally for one customer.
func (s *Service) Years(ctx context.Context, customer string) ([]recon.YearSummary, error) {
	rows, err := s.rowsFor(ctx, customer)
	if err != nil {
		return nil, err
	}
	return recon.YearlyRollup(rows), nil
}

func (s *Service) rowsFor(ctx context.Context, customer string) ([]ledger.Row, error) {
	if customer == "" {
		rows, err := s.repo.RowsAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("report: load rows: %w", err)
		}
		return rows, nil
	}
	rows, err := s.repo.RowsByCustomer(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("report: load rows for %q: %w", customer, err)
	}
	if len(rows) == 0 {
		return nil, errs.ErrUnknownCustomer
	}
	return rows, nil
}

// pastDue keeps only items already past their target date. The annotated
// list itself carries current items so it buckets identically to the open
// items; the listings drop them here.
func pastDue(items []recon.OverdueInvoice) []recon.OverdueInvoice {
	out := make([]recon.OverdueInvoice, 0, len(items))
	for _, it := range items {
		if it.DaysOverdue > 0 {
			out = append(out, it)
		}
	}
	return out
}

// groupByCustomer splits rows per customer preserving input order, which the
// residual tie-break depends on.
func groupByCustomer(rows []ledger.Row) map[string][]ledger.Row {
	grouped := make(map[string][]ledger.Row)
	for _, r := range rows {
		grouped[r.Customer] = append(grouped[r.Customer], r)
	}
	return grouped
}

func summarize(name string, rows []ledger.Row, today time.Time) CustomerSummary {
	resolved := recon.Resolve(rows)
	open := recon.OpenInvoices(resolved)
	in := recon.BuildRatingInput(rows, today)
	score, rating := recon.Score(in, today)
	return CustomerSummary{
		Name:             name,
		NetDebtMinor:     in.NetDebtMinor,
		OpenBalanceMinor: recon.OpenBalanceMinor(resolved),
		Aging:            recon.Aging(open, today),
		Score:            score,
		Rating:           rating,
	}
}
