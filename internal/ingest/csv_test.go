package ingest

import (
	"io"
	"log/slog"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReadRows(t *testing.T) {
	csv := strings.Join([]string{
		"customer,number,date,due_date,debit,credit,matching,sales_rep",
		`Acme Ltd,SAL-1001,2024-03-01,2024-03-31,"1,500.00",,M-7,alice`,
		"Acme Ltd,PAY-55,01/04/2024,,,900.50,M-7,alice",
		"Beta Co,OB-1,2024/01/01,,250,,,bob",
	}, "\n")

	rows, err := ReadRows(strings.NewReader(csv), discardLogger())
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	r := rows[0]
	if r.Customer != "Acme Ltd" || r.Number != "SAL-1001" {
		t.Fatalf("row 0 identity wrong: %+v", r)
	}
	if r.DebitMinor != 150000 {
		t.Errorf("row 0 debit = %d, want 150000", r.DebitMinor)
	}
	if r.Date == nil || r.Date.Format("2006-01-02") != "2024-03-01" {
		t.Errorf("row 0 date wrong: %v", r.Date)
	}
	if r.DueDate == nil || r.DueDate.Format("2006-01-02") != "2024-03-31" {
		t.Errorf("row 0 due date wrong: %v", r.DueDate)
	}
	if r.Matching != "M-7" || r.SalesRep != "alice" {
		t.Errorf("row 0 matching/rep wrong: %+v", r)
	}

	if rows[1].CreditMinor != 90050 {
		t.Errorf("row 1 credit = %d, want 90050", rows[1].CreditMinor)
	}
	if rows[1].Date == nil || rows[1].Date.Format("2006-01-02") != "2024-04-01" {
		t.Errorf("row 1 day-first date wrong: %v", rows[1].Date)
	}
	if rows[1].DueDate != nil {
		t.Errorf("row 1 due date should be absent")
	}

	if rows[2].DebitMinor != 25000 {
		t.Errorf("row 2 whole-number debit = %d, want 25000", rows[2].DebitMinor)
	}
}

func TestReadRows_Degrades(t *testing.T) {
	csv := strings.Join([]string{
		"customer,number,date,debit,credit",
		"Acme,SAL-1,not a date,abc,10",
		",SAL-2,2024-01-01,5,",
		"Acme,SAL-3,2024-01-02,7.005,",
	}, "\n")

	rows, err := ReadRows(strings.NewReader(csv), discardLogger())
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	// Customer-less row is skipped entirely.
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Date != nil {
		t.Errorf("bad date should degrade to nil")
	}
	if rows[0].DebitMinor != 0 {
		t.Errorf("bad amount should degrade to zero, got %d", rows[0].DebitMinor)
	}
	if rows[0].CreditMinor != 1000 {
		t.Errorf("credit = %d, want 1000", rows[0].CreditMinor)
	}
	// Sub-cent precision rounds to the nearest minor unit.
	if rows[1].DebitMinor != 701 {
		t.Errorf("rounded debit = %d, want 701", rows[1].DebitMinor)
	}
}

func TestReadRows_MissingHeader(t *testing.T) {
	if _, err := ReadRows(strings.NewReader("name,amount\nfoo,1"), discardLogger()); err != ErrMissingHeader {
		t.Fatalf("err = %v, want ErrMissingHeader", err)
	}
}
