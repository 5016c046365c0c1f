package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/finview/receivables/internal/errs"
	"github.com/finview/receivables/internal/ledger"
)

func TestStore_Rows(t *testing.T) {
	s := New()
	ctx := context.Background()

	in := []ledger.Row{
		{Customer: "Acme", Number: "SAL-1", DebitMinor: 10000, Matching: "M1"},
		{Customer: "Beta", Number: "SAL-9", DebitMinor: 2000},
		{Customer: "Acme", Number: "PAY-1", CreditMinor: 4000, Matching: "M1"},
	}
	if err := s.ReplaceRows(ctx, in); err != nil {
		t.Fatalf("replace: %v", err)
	}
	all, _ := s.RowsAll(ctx)
	if len(all) != 3 || all[0].Number != "SAL-1" || all[2].Number != "PAY-1" {
		t.Fatalf("order not preserved: %+v", all)
	}
	// Mutating the returned slice must not affect the store.
	all[0].Customer = "mutated"
	again, _ := s.RowsAll(ctx)
	if again[0].Customer != "Acme" {
		t.Fatalf("store leaked its backing slice")
	}

	acme, _ := s.RowsByCustomer(ctx, "Acme")
	if len(acme) != 2 {
		t.Fatalf("got %d Acme rows, want 2", len(acme))
	}

	if err := s.AddRows(ctx, []ledger.Row{{Customer: "Beta", Number: "PAY-9", CreditMinor: 2000}}); err != nil {
		t.Fatalf("add: %v", err)
	}
	all, _ = s.RowsAll(ctx)
	if len(all) != 4 {
		t.Fatalf("append failed: %d rows", len(all))
	}
}

func TestStore_NotesOrderingAndConflict(t *testing.T) {
	s := New()
	ctx := context.Background()
	old := ledger.Note{ID: uuid.New(), Customer: "Acme", Body: "old", CreatedAt: time.Now().Add(-time.Hour)}
	recent := ledger.Note{ID: uuid.New(), Customer: "Acme", Body: "recent", CreatedAt: time.Now()}
	other := ledger.Note{ID: uuid.New(), Customer: "Beta", Body: "other", CreatedAt: time.Now()}
	for _, n := range []ledger.Note{old, recent, other} {
		if _, err := s.CreateNote(ctx, n); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	notes, _ := s.NotesByCustomer(ctx, "Acme")
	if len(notes) != 2 || notes[0].Body != "recent" {
		t.Fatalf("ordering wrong: %+v", notes)
	}
	if _, err := s.CreateNote(ctx, old); err != errs.ErrConflict {
		t.Fatalf("duplicate id: err = %v, want ErrConflict", err)
	}
}

func TestStore_OvertimeFilter(t *testing.T) {
	s := New()
	ctx := context.Background()
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, rep := range []string{"alice", "bob", "alice"} {
		o := ledger.OvertimeRecord{ID: uuid.New(), SalesRep: rep, Date: day.AddDate(0, 0, i), Hours: 1.5}
		if _, err := s.CreateOvertime(ctx, o); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	alice, _ := s.OvertimeRecords(ctx, "alice")
	if len(alice) != 2 {
		t.Fatalf("got %d alice records, want 2", len(alice))
	}
	if !alice[0].Date.After(alice[1].Date) {
		t.Fatalf("ordering wrong: %+v", alice)
	}
	all, _ := s.OvertimeRecords(ctx, "")
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
}
