package recon

import (
	"testing"
	"time"

	"github.com/finview/receivables/internal/ledger"
)

func TestMonthlyRollup_SalesMinusReturns(t *testing.T) {
	rows := []ledger.Row{
		{Number: "SAL001", DebitMinor: 50000, Date: date(2024, time.March, 3)},
		{Number: "RSAL001", CreditMinor: 5000, Date: date(2024, time.March, 12)},
		{Number: "RCPT1", CreditMinor: 20000, Date: date(2024, time.March, 20)},
		{Number: "JV9", CreditMinor: 1000, Date: date(2024, time.March, 25)}, // adjustment: neither bucket
	}
	roll := MonthlyRollup(rows)
	if len(roll) != 1 {
		t.Fatalf("expected 1 month, got %d", len(roll))
	}
	m := roll[0]
	if m.DebitMinor != 45000 {
		t.Fatalf("net sales = %d, want 45000", m.DebitMinor)
	}
	if m.CreditMinor != 20000 {
		t.Fatalf("smart payments = %d, want 20000", m.CreditMinor)
	}
	if m.NetMinor() != 25000 {
		t.Fatalf("net = %d, want 25000", m.NetMinor())
	}
}

func TestMonthlyRollup_Ordering(t *testing.T) {
	rows := []ledger.Row{
		{Number: "SAL001", DebitMinor: 100, Date: date(2023, time.November, 1)},
		{Number: "SAL002", DebitMinor: 100, Date: date(2024, time.February, 1)},
		{Number: "SAL003", DebitMinor: 100, Date: date(2024, time.January, 1)},
		{Number: "SAL004", DebitMinor: 100}, // dateless: excluded
	}
	roll := MonthlyRollup(rows)
	if len(roll) != 3 {
		t.Fatalf("expected 3 months, got %d", len(roll))
	}
	// Years descending, months chronological within a year.
	if roll[0].Year != 2024 || roll[0].Month != time.January {
		t.Fatalf("first = %d-%s", roll[0].Year, roll[0].Month)
	}
	if roll[1].Year != 2024 || roll[1].Month != time.February {
		t.Fatalf("second = %d-%s", roll[1].Year, roll[1].Month)
	}
	if roll[2].Year != 2023 {
		t.Fatalf("third year = %d, want 2023", roll[2].Year)
	}

	trailing := LastN(roll, 2)
	if len(trailing) != 2 || trailing[0].Month != time.January || trailing[1].Month != time.February {
		t.Fatalf("LastN should be chronological oldest-first, got %+v", trailing)
	}
}

func TestYearlyRollup(t *testing.T) {
	rows := []ledger.Row{
		{Number: "SAL001", Matching: "A", DebitMinor: 10000, Date: date(2024, time.March, 1)},
		{Number: "RCPT1", Matching: "A", CreditMinor: 4000, Date: date(2024, time.April, 1)},
		{Number: "SAL002", DebitMinor: 7000, Date: date(2023, time.July, 1)},
		{Number: "RSAL002", CreditMinor: 500, Date: date(2023, time.August, 1)},
	}
	years := YearlyRollup(rows)
	if len(years) != 2 || years[0].Year != 2024 || years[1].Year != 2023 {
		t.Fatalf("unexpected year ordering: %+v", years)
	}
	y24 := years[0]
	if y24.SalesMinor != 10000 || y24.PaymentsMinor != 4000 {
		t.Fatalf("2024 sales/payments = %d/%d", y24.SalesMinor, y24.PaymentsMinor)
	}
	if y24.OpenBalanceMinor != 6000 {
		t.Fatalf("2024 open balance = %d, want 6000", y24.OpenBalanceMinor)
	}
	y23 := years[1]
	if y23.ReturnsMinor != 500 || y23.NetMinor != 6500 {
		t.Fatalf("2023 returns/net = %d/%d", y23.ReturnsMinor, y23.NetMinor)
	}
}
