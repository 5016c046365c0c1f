package postgres

// Package postgres provides a pgx-backed storage implementation satisfying
// the repository and writer interfaces used by the HTTP API and reports.
//
// It is intentionally small and explicit: mapping between domain entities and
// SQL rows, plus the statements and transactions needed to run them. Ledger
// rows keep their import order via the position column.

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finview/receivables/internal/ledger"
	"github.com/finview/receivables/internal/meta"
)

// Store holds a pgx connection pool and implements the read/write interfaces
// used across the service layer. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

const schema = `
create table if not exists rows (
    position    bigserial primary key,
    customer    text not null,
    number      text not null default '',
    date        date,
    due_date    date,
    debit_minor bigint not null default 0,
    credit_minor bigint not null default 0,
    matching    text not null default '',
    sales_rep   text not null default ''
);
create index if not exists rows_customer_idx on rows (customer);

create table if not exists notes (
    id         uuid primary key,
    customer   text not null,
    author     text not null default '',
    body       text not null,
    metadata   jsonb not null default '{}',
    created_at timestamptz not null
);
create index if not exists notes_customer_idx on notes (customer);

create table if not exists visits (
    id         uuid primary key,
    customer   text not null,
    sales_rep  text not null default '',
    purpose    text not null default '',
    outcome    text not null default '',
    metadata   jsonb not null default '{}',
    visited_at timestamptz not null,
    created_at timestamptz not null
);
create index if not exists visits_customer_idx on visits (customer);

create table if not exists overtime (
    id         uuid primary key,
    sales_rep  text not null,
    date       date not null,
    hours      double precision not null,
    reason     text not null default '',
    created_at timestamptz not null
);
create index if not exists overtime_rep_idx on overtime (sales_rep);

create table if not exists quotations (
    id           uuid primary key,
    customer     text not null,
    reference    text not null default '',
    amount_minor bigint not null default 0,
    status       text not null default '',
    metadata     jsonb not null default '{}',
    issued_at    timestamptz not null,
    created_at   timestamptz not null
);
create index if not exists quotations_customer_idx on quotations (customer);
`

// Migrate creates the schema when missing. Statements are idempotent.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schema)
	return err
}

// --- Ledger rows ---

// ReplaceRows swaps the full ledger for a fresh import in one transaction.
func (s *Store) ReplaceRows(ctx context.Context, rows []ledger.Row) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if _, err := tx.Exec(ctx, `delete from rows`); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := tx.Exec(ctx, `
            insert into rows (customer, number, date, due_date, debit_minor, credit_minor, matching, sales_rep)
            values ($1,$2,$3,$4,$5,$6,$7,$8)
        `, r.Customer, r.Number, r.Date, r.DueDate, r.DebitMinor, r.CreditMinor, r.Matching, r.SalesRep); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// AddRows appends rows to the ledger.
func (s *Store) AddRows(ctx context.Context, rows []ledger.Row) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()
	for _, r := range rows {
		if _, err := tx.Exec(ctx, `
            insert into rows (customer, number, date, due_date, debit_minor, credit_minor, matching, sales_rep)
            values ($1,$2,$3,$4,$5,$6,$7,$8)
        `, r.Customer, r.Number, r.Date, r.DueDate, r.DebitMinor, r.CreditMinor, r.Matching, r.SalesRep); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) RowsAll(ctx context.Context) ([]ledger.Row, error) {
	rows, err := s.pool.Query(ctx, `
        select customer, number, date, due_date, debit_minor, credit_minor, matching, sales_rep
        from rows
        order by position
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Row, 0)
	for rows.Next() {
		var r ledger.Row
		if err := rows.Scan(&r.Customer, &r.Number, &r.Date, &r.DueDate, &r.DebitMinor, &r.CreditMinor, &r.Matching, &r.SalesRep); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) RowsByCustomer(ctx context.Context, customer string) ([]ledger.Row, error) {
	rows, err := s.pool.Query(ctx, `
        select customer, number, date, due_date, debit_minor, credit_minor, matching, sales_rep
        from rows
        where customer = $1
        order by position
    `, customer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Row, 0)
	for rows.Next() {
		var r ledger.Row
		if err := rows.Scan(&r.Customer, &r.Number, &r.Date, &r.DueDate, &r.DebitMinor, &r.CreditMinor, &r.Matching, &r.SalesRep); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// --- Side records ---

func (s *Store) CreateNote(ctx context.Context, n ledger.Note) (ledger.Note, error) {
	md, _ := n.Metadata.MarshalStableJSON()
	_, err := s.pool.Exec(ctx, `
        insert into notes (id, customer, author, body, metadata, created_at)
        values ($1,$2,$3,$4,$5,$6)
    `, n.ID, n.Customer, n.Author, n.Body, md, n.CreatedAt)
	if err != nil {
		return ledger.Note{}, err
	}
	return n, nil
}

func (s *Store) NotesByCustomer(ctx context.Context, customer string) ([]ledger.Note, error) {
	rows, err := s.pool.Query(ctx, `
        select id, customer, author, body, metadata, created_at
        from notes
        where customer = $1
        order by created_at desc
    `, customer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Note, 0)
	for rows.Next() {
		var n ledger.Note
		var mdBytes []byte
		if err := rows.Scan(&n.ID, &n.Customer, &n.Author, &n.Body, &mdBytes, &n.CreatedAt); err != nil {
			return nil, err
		}
		if len(mdBytes) > 0 {
			var m meta.Metadata
			if err := m.UnmarshalJSON(mdBytes); err == nil {
				n.Metadata = m
			}
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) CreateVisit(ctx context.Context, v ledger.Visit) (ledger.Visit, error) {
	md, _ := v.Metadata.MarshalStableJSON()
	_, err := s.pool.Exec(ctx, `
        insert into visits (id, customer, sales_rep, purpose, outcome, metadata, visited_at, created_at)
        values ($1,$2,$3,$4,$5,$6,$7,$8)
    `, v.ID, v.Customer, v.SalesRep, v.Purpose, v.Outcome, md, v.VisitedAt, v.CreatedAt)
	if err != nil {
		return ledger.Visit{}, err
	}
	return v, nil
}

func (s *Store) VisitsByCustomer(ctx context.Context, customer string) ([]ledger.Visit, error) {
	rows, err := s.pool.Query(ctx, `
        select id, customer, sales_rep, purpose, outcome, metadata, visited_at, created_at
        from visits
        where customer = $1
        order by visited_at desc
    `, customer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Visit, 0)
	for rows.Next() {
		var v ledger.Visit
		var mdBytes []byte
		if err := rows.Scan(&v.ID, &v.Customer, &v.SalesRep, &v.Purpose, &v.Outcome, &mdBytes, &v.VisitedAt, &v.CreatedAt); err != nil {
			return nil, err
		}
		if len(mdBytes) > 0 {
			var m meta.Metadata
			if err := m.UnmarshalJSON(mdBytes); err == nil {
				v.Metadata = m
			}
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) CreateOvertime(ctx context.Context, o ledger.OvertimeRecord) (ledger.OvertimeRecord, error) {
	_, err := s.pool.Exec(ctx, `
        insert into overtime (id, sales_rep, date, hours, reason, created_at)
        values ($1,$2,$3,$4,$5,$6)
    `, o.ID, o.SalesRep, o.Date, o.Hours, o.Reason, o.CreatedAt)
	if err != nil {
		return ledger.OvertimeRecord{}, err
	}
	return o, nil
}

func (s *Store) OvertimeRecords(ctx context.Context, salesRep string) ([]ledger.OvertimeRecord, error) {
	q := `
        select id, sales_rep, date, hours, reason, created_at
        from overtime
        order by date desc
    `
	args := []any{}
	if salesRep != "" {
		q = `
        select id, sales_rep, date, hours, reason, created_at
        from overtime
        where sales_rep = $1
        order by date desc
    `
		args = append(args, salesRep)
	}
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.OvertimeRecord, 0)
	for rows.Next() {
		var o ledger.OvertimeRecord
		if err := rows.Scan(&o.ID, &o.SalesRep, &o.Date, &o.Hours, &o.Reason, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *Store) CreateQuotation(ctx context.Context, q ledger.Quotation) (ledger.Quotation, error) {
	md, _ := q.Metadata.MarshalStableJSON()
	_, err := s.pool.Exec(ctx, `
        insert into quotations (id, customer, reference, amount_minor, status, metadata, issued_at, created_at)
        values ($1,$2,$3,$4,$5,$6,$7,$8)
    `, q.ID, q.Customer, q.Reference, q.AmountMinor, q.Status, md, q.IssuedAt, q.CreatedAt)
	if err != nil {
		return ledger.Quotation{}, err
	}
	return q, nil
}

func (s *Store) QuotationsByCustomer(ctx context.Context, customer string) ([]ledger.Quotation, error) {
	rows, err := s.pool.Query(ctx, `
        select id, customer, reference, amount_minor, status, metadata, issued_at, created_at
        from quotations
        where customer = $1
        order by issued_at desc
    `, customer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]ledger.Quotation, 0)
	for rows.Next() {
		var q ledger.Quotation
		var mdBytes []byte
		if err := rows.Scan(&q.ID, &q.Customer, &q.Reference, &q.AmountMinor, &q.Status, &mdBytes, &q.IssuedAt, &q.CreatedAt); err != nil {
			return nil, err
		}
		if len(mdBytes) > 0 {
			var m meta.Metadata
			if err := m.UnmarshalJSON(mdBytes); err == nil {
				q.Metadata = m
			}
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// SeedDev loads a small sample ledger for quick local testing. The existing
// rows are replaced.
func (s *Store) SeedDev(ctx context.Context) error {
	return s.ReplaceRows(ctx, SampleRows(time.Now().UTC()))
}

// SampleRows is the development fixture: one customer with an open matching
// group and a current invoice, one settled customer.
func SampleRows(now time.Time) []ledger.Row {
	day := func(offset int) *time.Time {
		t := now.AddDate(0, 0, offset)
		return &t
	}
	return []ledger.Row{
		{Customer: "Acme Ltd", Number: "OB-1", Date: day(-200), DebitMinor: 50000},
		{Customer: "Acme Ltd", Number: "SAL-1001", Date: day(-120), DueDate: day(-90), DebitMinor: 100000, Matching: "M-1", SalesRep: "alice"},
		{Customer: "Acme Ltd", Number: "PAY-17", Date: day(-60), CreditMinor: 40000, Matching: "M-1", SalesRep: "alice"},
		{Customer: "Acme Ltd", Number: "SAL-1002", Date: day(-10), DueDate: day(20), DebitMinor: 25000, SalesRep: "alice"},
		{Customer: "Beta Co", Number: "SAL-2001", Date: day(-45), DebitMinor: 30000, Matching: "M-2", SalesRep: "bob"},
		{Customer: "Beta Co", Number: "PAY-33", Date: day(-20), CreditMinor: 30000, Matching: "M-2", SalesRep: "bob"},
	}
}
