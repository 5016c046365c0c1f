package v1

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/finview/receivables/internal/export"
	"github.com/finview/receivables/internal/slug"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportCustomersCSV streams the customers overview as CSV.
func (s *Server) exportCustomersCSV(w http.ResponseWriter, r *http.Request) {
	customers, err := s.reports.Customers(r.Context(), time.Now().UTC())
	if err != nil {
		s.log.Error("export customers csv", "err", err)
		writeDomainErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="customers.csv"`)
	if err := export.CustomersCSV(w, s.currency, customers); err != nil {
		s.log.Error("write customers csv", "err", err)
	}
}

// exportCustomersXLSX streams the customers overview as a workbook.
func (s *Server) exportCustomersXLSX(w http.ResponseWriter, r *http.Request) {
	customers, err := s.reports.Customers(r.Context(), time.Now().UTC())
	if err != nil {
		s.log.Error("export customers xlsx", "err", err)
		writeDomainErr(w, err)
		return
	}
	f, err := export.CustomersWorkbook(s.currency, customers)
	if err != nil {
		s.log.Error("build customers workbook", "err", err)
		writeErr(w, http.StatusInternalServerError, "export failed", "internal")
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="customers.xlsx"`)
	if err := f.Write(w); err != nil {
		s.log.Error("write customers workbook", "err", err)
	}
}

// exportOverdueCSV streams the overdue listing as CSV.
func (s *Server) exportOverdueCSV(w http.ResponseWriter, r *http.Request) {
	items, err := s.reports.Overdue(r.Context(), time.Now().UTC())
	if err != nil {
		s.log.Error("export overdue csv", "err", err)
		writeDomainErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="overdue.csv"`)
	if err := export.OverdueCSV(w, s.currency, items); err != nil {
		s.log.Error("write overdue csv", "err", err)
	}
}

// exportCustomerXLSX streams one customer's drill-down workbook. The
// download name derives from the customer name.
func (s *Server) exportCustomerXLSX(w http.ResponseWriter, r *http.Request) {
	customer := chi.URLParam(r, "customer")
	a, err := s.reports.Analysis(r.Context(), customer, time.Now().UTC())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	f, err := export.CustomerWorkbook(s.currency, a)
	if err != nil {
		s.log.Error("build customer workbook", "err", err, "customer", customer)
		writeErr(w, http.StatusInternalServerError, "export failed", "internal")
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+slug.Slugify(customer)+`.xlsx"`)
	if err := f.Write(w); err != nil {
		s.log.Error("write customer workbook", "err", err, "customer", customer)
	}
}
