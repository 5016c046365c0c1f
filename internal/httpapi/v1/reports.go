package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/finview/receivables/internal/dates"
)

// asOfOrNow reads the optional as_of query parameter, a lenient date string.
func asOfOrNow(r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Now().UTC(), true
	}
	t, ok := dates.ParseFlexible(raw)
	if !ok {
		return time.Time{}, false
	}
	return t, true
}

// listOverdue serves the overdue listing across all customers.
func (s *Server) listOverdue(w http.ResponseWriter, r *http.Request) {
	asOf, ok := asOfOrNow(r)
	if !ok {
		badRequest(w, "invalid as_of")
		return
	}
	items, err := s.reports.Overdue(r.Context(), asOf)
	if err != nil {
		s.log.Error("list overdue", "err", err)
		writeDomainErr(w, err)
		return
	}
	out := make([]overdueJSON, 0, len(items))
	for _, it := range items {
		out = append(out, s.toOverdueJSON(it))
	}
	toJSON(w, http.StatusOK, struct {
		Currency string        `json:"currency"`
		AsOf     string        `json:"as_of"`
		Items    []overdueJSON `json:"items"`
	}{Currency: s.currency, AsOf: asOf.Format("2006-01-02"), Items: out})
}

// agingSummary serves the global six-band histogram, optionally as of a past
// day via ?as_of=.
func (s *Server) agingSummary(w http.ResponseWriter, r *http.Request) {
	asOf, ok := asOfOrNow(r)
	if !ok {
		badRequest(w, "invalid as_of")
		return
	}
	sum, err := s.reports.Aging(r.Context(), asOf)
	if err != nil {
		s.log.Error("aging", "err", err)
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, struct {
		Currency string    `json:"currency"`
		AsOf     string    `json:"as_of"`
		Aging    agingJSON `json:"aging"`
	}{Currency: s.currency, AsOf: asOf.Format("2006-01-02"), Aging: toAgingJSON(sum)})
}

// monthlyDebt serves the month-by-month movement. ?customer= narrows to one
// customer, ?months=N keeps the trailing N months in chronological order.
func (s *Server) monthlyDebt(w http.ResponseWriter, r *http.Request) {
	months := 0
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(w, "invalid months")
			return
		}
		months = n
	}
	customer := r.URL.Query().Get("customer")
	rollup, err := s.reports.Monthly(r.Context(), customer, months)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]monthlyJSON, 0, len(rollup))
	for _, m := range rollup {
		items = append(items, toMonthlyJSON(m))
	}
	toJSON(w, http.StatusOK, struct {
		Currency string        `json:"currency"`
		Items    []monthlyJSON `json:"items"`
	}{Currency: s.currency, Items: items})
}

// yearlySummary serves per-year activity, optionally for one customer.
func (s *Server) yearlySummary(w http.ResponseWriter, r *http.Request) {
	years, err := s.reports.Years(r.Context(), r.URL.Query().Get("customer"))
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	items := make([]yearJSON, 0, len(years))
	for _, y := range years {
		items = append(items, toYearJSON(y))
	}
	toJSON(w, http.StatusOK, struct {
		Currency string     `json:"currency"`
		Items    []yearJSON `json:"items"`
	}{Currency: s.currency, Items: items})
}
