package recon

import (
	"testing"
	"time"

	"github.com/finview/receivables/internal/ledger"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestResolve_ResidualOnHolder(t *testing.T) {
	rows := []ledger.Row{
		{Customer: "Acme", Number: "SAL001", Matching: "A", DebitMinor: 10000, Date: date(2024, time.January, 1)},
		{Customer: "Acme", Number: "RCPT9", Matching: "A", CreditMinor: 4000, Date: date(2024, time.February, 1)},
	}
	res := Resolve(rows)
	if res[0].ResidualMinor == nil || *res[0].ResidualMinor != 6000 {
		t.Fatalf("expected residual 6000 on first row, got %+v", res[0].ResidualMinor)
	}
	if res[1].ResidualMinor != nil {
		t.Fatalf("non-holder row must not carry a residual")
	}
	if got := OpenBalanceMinor(res); got != 6000 {
		t.Fatalf("open balance = %d, want 6000", got)
	}
}

func TestResolve_TieKeepsFirstOccurrence(t *testing.T) {
	rows := []ledger.Row{
		{Number: "SAL001", Matching: "G", DebitMinor: 5000},
		{Number: "SAL002", Matching: "G", DebitMinor: 5000},
		{Number: "RCPT1", Matching: "G", CreditMinor: 2000},
	}
	res := Resolve(rows)
	if res[0].ResidualMinor == nil {
		t.Fatalf("first equal-debit row should hold the residual")
	}
	if res[1].ResidualMinor != nil || res[2].ResidualMinor != nil {
		t.Fatalf("only one holder allowed per group")
	}
	if *res[0].ResidualMinor != 8000 {
		t.Fatalf("residual = %d, want 8000", *res[0].ResidualMinor)
	}
}

func TestResolve_AllZeroDebitsStillHaveHolder(t *testing.T) {
	rows := []ledger.Row{
		{Number: "RCPT1", Matching: "Z", CreditMinor: 3000},
		{Number: "RCPT2", Matching: "Z", CreditMinor: 1000},
	}
	res := Resolve(rows)
	if res[0].ResidualMinor == nil || *res[0].ResidualMinor != -4000 {
		t.Fatalf("expected first row to hold group net -4000, got %+v", res[0].ResidualMinor)
	}
}

func TestResolve_ClosedGroupCarriesNoResidual(t *testing.T) {
	rows := []ledger.Row{
		{Number: "SAL001", Matching: "C", DebitMinor: 10000},
		{Number: "RCPT1", Matching: "C", CreditMinor: 10000},
	}
	for i, r := range Resolve(rows) {
		if r.ResidualMinor != nil {
			t.Fatalf("row %d: closed group must not carry residual", i)
		}
	}
	// A group netting within the epsilon is closed too.
	rows[1].CreditMinor = 9999
	for i, r := range Resolve(rows) {
		if r.ResidualMinor != nil {
			t.Fatalf("row %d: group within epsilon must be closed", i)
		}
	}
}

func TestResolve_UnmatchedZeroRowContributesNothing(t *testing.T) {
	rows := []ledger.Row{
		{Number: "JV001"},
		{Number: "SAL002", DebitMinor: 500},
	}
	res := Resolve(rows)
	if res[0].Open() {
		t.Fatalf("zero-net unmatched row must not be open")
	}
	if got := OpenBalanceMinor(res); got != 500 {
		t.Fatalf("open balance = %d, want 500", got)
	}
}

func TestOpenBalance_AgreesWithNaiveSumWhenGroupsFullyOpen(t *testing.T) {
	rows := []ledger.Row{
		{Number: "SAL001", Matching: "A", DebitMinor: 10000},
		{Number: "RCPT1", Matching: "A", CreditMinor: 4000},
		{Number: "SAL002", DebitMinor: 2500},
		{Number: "SAL003", Matching: "B", DebitMinor: 7000},
		{Number: "RCPT2", Matching: "B", CreditMinor: 7000},
	}
	res := Resolve(rows)
	// Group B nets to zero, so naive summation and reconciliation agree.
	if open, naive := OpenBalanceMinor(res), NetDebtMinor(rows); open != naive {
		t.Fatalf("open %d != naive %d", open, naive)
	}
}
