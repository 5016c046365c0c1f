package v1

import (
	"context"

	"github.com/finview/receivables/internal/ledger"
)

// RowReader abstracts ledger-row read operations.
type RowReader interface {
	// RowsAll returns every stored row in import order.
	RowsAll(ctx context.Context) ([]ledger.Row, error)
	// RowsByCustomer returns one customer's rows in import order.
	RowsByCustomer(ctx context.Context, customer string) ([]ledger.Row, error)
}

// RowWriter abstracts ledger-row write operations.
type RowWriter interface {
	// ReplaceRows swaps the full ledger for a fresh import.
	ReplaceRows(ctx context.Context, rows []ledger.Row) error
	// AddRows appends rows to the ledger.
	AddRows(ctx context.Context, rows []ledger.Row) error
}

// SideRecordReader abstracts reads of the operational side records.
type SideRecordReader interface {
	NotesByCustomer(ctx context.Context, customer string) ([]ledger.Note, error)
	VisitsByCustomer(ctx context.Context, customer string) ([]ledger.Visit, error)
	QuotationsByCustomer(ctx context.Context, customer string) ([]ledger.Quotation, error)
	// OvertimeRecords lists overtime entries; empty salesRep means all reps.
	OvertimeRecords(ctx context.Context, salesRep string) ([]ledger.OvertimeRecord, error)
}

// SideRecordWriter abstracts creation of the operational side records.
type SideRecordWriter interface {
	CreateNote(ctx context.Context, n ledger.Note) (ledger.Note, error)
	CreateVisit(ctx context.Context, v ledger.Visit) (ledger.Visit, error)
	CreateOvertime(ctx context.Context, o ledger.OvertimeRecord) (ledger.OvertimeRecord, error)
	CreateQuotation(ctx context.Context, q ledger.Quotation) (ledger.Quotation, error)
}

// ReadyChecker is optionally implemented by stores to indicate readiness.
type ReadyChecker interface {
	Ready(ctx context.Context) error
}

// Repository composes the store-side operations used by the API.
// It is a convenience union satisfied by both stores.
type Repository interface {
	RowReader
	RowWriter
	SideRecordReader
	SideRecordWriter
}
