package v1

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
)

// listCustomers serves the dashboard overview, one summary per customer
// ordered by net debt.
func (s *Server) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := s.reports.Customers(r.Context(), time.Now().UTC())
	if err != nil {
		s.log.Error("list customers", "err", err)
		writeDomainErr(w, err)
		return
	}
	items := make([]customerJSON, 0, len(customers))
	for _, c := range customers {
		items = append(items, s.toCustomerJSON(c))
	}
	toJSON(w, http.StatusOK, struct {
		Currency string         `json:"currency"`
		Items    []customerJSON `json:"items"`
	}{Currency: s.currency, Items: items})
}

// customerAnalysis serves the full drill-down for one customer.
func (s *Server) customerAnalysis(w http.ResponseWriter, r *http.Request) {
	customer := chi.URLParam(r, "customer")
	a, err := s.reports.Analysis(r.Context(), customer, time.Now().UTC())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	open := make([]openInvoiceJSON, 0, len(a.OpenInvoices))
	for _, inv := range a.OpenInvoices {
		open = append(open, s.toOpenInvoiceJSON(inv))
	}
	overdue := make([]overdueJSON, 0, len(a.Overdue))
	for _, it := range a.Overdue {
		overdue = append(overdue, s.toOverdueJSON(it))
	}
	monthly := make([]monthlyJSON, 0, len(a.Monthly))
	for _, m := range a.Monthly {
		monthly = append(monthly, toMonthlyJSON(m))
	}
	years := make([]yearJSON, 0, len(a.Years))
	for _, y := range a.Years {
		years = append(years, toYearJSON(y))
	}
	resp := struct {
		customerJSON
		Currency     string            `json:"currency"`
		OpenInvoices []openInvoiceJSON `json:"open_invoices"`
		Overdue      []overdueJSON     `json:"overdue"`
		Monthly      []monthlyJSON     `json:"monthly"`
		Years        []yearJSON        `json:"years"`
		LastSale     string            `json:"last_sale,omitempty"`
		LastPayment  string            `json:"last_payment,omitempty"`
	}{
		customerJSON: s.toCustomerJSON(a.CustomerSummary),
		Currency:     s.currency,
		OpenInvoices: open,
		Overdue:      overdue,
		Monthly:      monthly,
		Years:        years,
		LastSale:     dateStr(a.LastSale),
		LastPayment:  dateStr(a.LastPayment),
	}
	toJSON(w, http.StatusOK, resp)
}
