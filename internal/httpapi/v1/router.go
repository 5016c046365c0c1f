// Package v1 wires the HTTP surface of the receivables service.
// It keeps handlers thin, delegating the reconciliation work to the report
// service.
package v1

import (
	"log/slog"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/finview/receivables/internal/report"
)

// Server wires handlers and middleware using Chi.
type Server struct {
	reports  *report.Service
	rows     RowWriter
	side     SideRecordReader
	sideW    SideRecordWriter
	ready    ReadyChecker
	currency string
	log      *slog.Logger
	rt       *chi.Mux
}

// New constructs the HTTP server with routes and middleware. The logger is
// used by request logging and panic recovery; currency formats report
// amounts.
func New(rowReader RowReader, rowWriter RowWriter, side SideRecordReader, sideW SideRecordWriter, ready ReadyChecker, currency string, logger *slog.Logger) *Server {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(requestLogger(logger))
	r.Use(recoverer(logger))
	r.Use(metricsMiddleware)

	s := &Server{
		reports:  report.New(rowReader),
		rows:     rowWriter,
		side:     side,
		sideW:    sideW,
		ready:    ready,
		currency: currency,
		log:      logger,
		rt:       r,
	}
	s.routes()
	return s
}

// Handler exposes the configured http.Handler.
func (s *Server) Handler() http.Handler { return s.rt }

// routes declares the public HTTP API endpoints and attaches per-route
// middleware.
func (s *Server) routes() {
	// Ledger rows (v1)
	s.rt.With(s.validatePostRows()).Post("/v1/rows", s.postRows)
	s.rt.Post("/v1/rows/import", s.importRows)

	// Reports (v1)
	s.rt.Get("/v1/customers", s.listCustomers)
	s.rt.Get("/v1/customers/{customer}/analysis", s.customerAnalysis)
	s.rt.Get("/v1/overdue", s.listOverdue)
	s.rt.Get("/v1/aging", s.agingSummary)
	s.rt.Get("/v1/monthly", s.monthlyDebt)
	s.rt.Get("/v1/years", s.yearlySummary)

	// Side records (v1)
	s.rt.Get("/v1/customers/{customer}/notes", s.listNotes)
	s.rt.With(s.validatePostNote()).Post("/v1/customers/{customer}/notes", s.postNote)
	s.rt.Get("/v1/customers/{customer}/visits", s.listVisits)
	s.rt.With(s.validatePostVisit()).Post("/v1/customers/{customer}/visits", s.postVisit)
	s.rt.Get("/v1/customers/{customer}/quotations", s.listQuotations)
	s.rt.With(s.validatePostQuotation()).Post("/v1/customers/{customer}/quotations", s.postQuotation)
	s.rt.Get("/v1/overtime", s.listOvertime)
	s.rt.With(s.validatePostOvertime()).Post("/v1/overtime", s.postOvertime)

	// Dictionary (v1)
	s.rt.Get("/v1/dictionary/transaction-types", s.getTransactionTypes)

	// Exports (v1)
	s.rt.Get("/v1/export/customers.csv", s.exportCustomersCSV)
	s.rt.Get("/v1/export/customers.xlsx", s.exportCustomersXLSX)
	s.rt.Get("/v1/export/overdue.csv", s.exportOverdueCSV)
	s.rt.Get("/v1/export/customers/{customer}.xlsx", s.exportCustomerXLSX)

	// Health and metrics (unversioned)
	s.rt.Get("/healthz", s.healthz)
	s.rt.Get("/readyz", s.readyz)
	s.rt.Method(http.MethodGet, "/metrics", metricsHandler())
}
