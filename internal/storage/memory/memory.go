// Package memory is the in-memory store used for development and tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/finview/receivables/internal/errs"
	"github.com/finview/receivables/internal/ledger"
)

// Store holds the ledger rows and side records behind a single lock. Row
// input order is preserved, which the residual tie-break relies on.
type Store struct {
	mu       sync.RWMutex
	rows     []ledger.Row
	notes    map[uuid.UUID]ledger.Note
	visits   map[uuid.UUID]ledger.Visit
	overtime map[uuid.UUID]ledger.OvertimeRecord
	quotes   map[uuid.UUID]ledger.Quotation
}

func New() *Store {
	return &Store{
		notes:    make(map[uuid.UUID]ledger.Note),
		visits:   make(map[uuid.UUID]ledger.Visit),
		overtime: make(map[uuid.UUID]ledger.OvertimeRecord),
		quotes:   make(map[uuid.UUID]ledger.Quotation),
	}
}

// Ready always succeeds for the in-memory store.
func (s *Store) Ready(ctx context.Context) error { return nil }

// ReplaceRows swaps the full ledger for a fresh import.
func (s *Store) ReplaceRows(ctx context.Context, rows []ledger.Row) error {
	cp := make([]ledger.Row, len(rows))
	copy(cp, rows)
	s.mu.Lock()
	s.rows = cp
	s.mu.Unlock()
	return nil
}

// AddRows appends rows to the ledger.
func (s *Store) AddRows(ctx context.Context, rows []ledger.Row) error {
	s.mu.Lock()
	s.rows = append(s.rows, rows...)
	s.mu.Unlock()
	return nil
}

func (s *Store) RowsAll(ctx context.Context) ([]ledger.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Row, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *Store) RowsByCustomer(ctx context.Context, customer string) ([]ledger.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Row, 0)
	for _, r := range s.rows {
		if r.Customer == customer {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) CreateNote(ctx context.Context, n ledger.Note) (ledger.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.notes[n.ID]; ok {
		return ledger.Note{}, errs.ErrConflict
	}
	n.Metadata = n.Metadata.Clone()
	s.notes[n.ID] = n
	return n, nil
}

// NotesByCustomer returns the customer's notes, newest first.
func (s *Store) NotesByCustomer(ctx context.Context, customer string) ([]ledger.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Note, 0)
	for _, n := range s.notes {
		if n.Customer == customer {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) CreateVisit(ctx context.Context, v ledger.Visit) (ledger.Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visits[v.ID]; ok {
		return ledger.Visit{}, errs.ErrConflict
	}
	v.Metadata = v.Metadata.Clone()
	s.visits[v.ID] = v
	return v, nil
}

// VisitsByCustomer returns the customer's visits, most recent visit first.
func (s *Store) VisitsByCustomer(ctx context.Context, customer string) ([]ledger.Visit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Visit, 0)
	for _, v := range s.visits {
		if v.Customer == customer {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VisitedAt.After(out[j].VisitedAt) })
	return out, nil
}

func (s *Store) CreateOvertime(ctx context.Context, o ledger.OvertimeRecord) (ledger.OvertimeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.overtime[o.ID]; ok {
		return ledger.OvertimeRecord{}, errs.ErrConflict
	}
	s.overtime[o.ID] = o
	return o, nil
}

// OvertimeRecords lists overtime entries, optionally filtered by sales rep,
// most recent date first.
func (s *Store) OvertimeRecords(ctx context.Context, salesRep string) ([]ledger.OvertimeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.OvertimeRecord, 0)
	for _, o := range s.overtime {
		if salesRep != "" && o.SalesRep != salesRep {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Store) CreateQuotation(ctx context.Context, q ledger.Quotation) (ledger.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotes[q.ID]; ok {
		return ledger.Quotation{}, errs.ErrConflict
	}
	q.Metadata = q.Metadata.Clone()
	s.quotes[q.ID] = q
	return q, nil
}

// QuotationsByCustomer returns the customer's quotations, newest issue first.
func (s *Store) QuotationsByCustomer(ctx context.Context, customer string) ([]ledger.Quotation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ledger.Quotation, 0)
	for _, q := range s.quotes {
		if q.Customer == customer {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	return out, nil
}

// Reset clears all state. Test helper.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = nil
	s.notes = make(map[uuid.UUID]ledger.Note)
	s.visits = make(map[uuid.UUID]ledger.Visit)
	s.overtime = make(map[uuid.UUID]ledger.OvertimeRecord)
	s.quotes = make(map[uuid.UUID]ledger.Quotation)
}
