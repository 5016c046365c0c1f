package v1

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/finview/receivables/internal/ledger"
	"github.com/finview/receivables/internal/meta"
)

// Side records: notes, visits, quotations per customer, plus overtime per
// sales rep. Creation fills server-side identity and timestamps.

func (s *Server) listNotes(w http.ResponseWriter, r *http.Request) {
	customer := chi.URLParam(r, "customer")
	notes, err := s.side.NotesByCustomer(r.Context(), customer)
	if err != nil {
		s.log.Error("list notes", "err", err)
		writeDomainErr(w, err)
		return
	}
	items := make([]noteJSON, 0, len(notes))
	for _, n := range notes {
		items = append(items, toNoteJSON(n))
	}
	toJSON(w, http.StatusOK, struct {
		Items []noteJSON `json:"items"`
	}{Items: items})
}

func (s *Server) postNote(w http.ResponseWriter, r *http.Request) {
	req, ok := r.Context().Value(ctxKeyPostNote).(postNoteRequest)
	if !ok {
		badRequest(w, "missing validated note")
		return
	}
	n := ledger.Note{
		ID:        uuid.New(),
		Customer:  chi.URLParam(r, "customer"),
		Author:    req.Author,
		Body:      req.Body,
		Metadata:  meta.New(req.Metadata),
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.sideW.CreateNote(r.Context(), n)
	if err != nil {
		s.log.Error("create note", "err", err)
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, toNoteJSON(created))
}

func (s *Server) listVisits(w http.ResponseWriter, r *http.Request) {
	customer := chi.URLParam(r, "customer")
	visits, err := s.side.VisitsByCustomer(r.Context(), customer)
	if err != nil {
		s.log.Error("list visits", "err", err)
		writeDomainErr(w, err)
		return
	}
	items := make([]visitJSON, 0, len(visits))
	for _, v := range visits {
		items = append(items, toVisitJSON(v))
	}
	toJSON(w, http.StatusOK, struct {
		Items []visitJSON `json:"items"`
	}{Items: items})
}

func (s *Server) postVisit(w http.ResponseWriter, r *http.Request) {
	v, ok := r.Context().Value(ctxKeyPostVisit).(ledger.Visit)
	if !ok {
		badRequest(w, "missing validated visit")
		return
	}
	v.ID = uuid.New()
	v.Customer = chi.URLParam(r, "customer")
	v.CreatedAt = time.Now().UTC()
	created, err := s.sideW.CreateVisit(r.Context(), v)
	if err != nil {
		s.log.Error("create visit", "err", err)
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, toVisitJSON(created))
}

func (s *Server) listQuotations(w http.ResponseWriter, r *http.Request) {
	customer := chi.URLParam(r, "customer")
	quotes, err := s.side.QuotationsByCustomer(r.Context(), customer)
	if err != nil {
		s.log.Error("list quotations", "err", err)
		writeDomainErr(w, err)
		return
	}
	items := make([]quotationJSON, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, s.toQuotationJSON(q))
	}
	toJSON(w, http.StatusOK, struct {
		Items []quotationJSON `json:"items"`
	}{Items: items})
}

func (s *Server) postQuotation(w http.ResponseWriter, r *http.Request) {
	q, ok := r.Context().Value(ctxKeyPostQuotation).(ledger.Quotation)
	if !ok {
		badRequest(w, "missing validated quotation")
		return
	}
	q.ID = uuid.New()
	q.Customer = chi.URLParam(r, "customer")
	q.CreatedAt = time.Now().UTC()
	created, err := s.sideW.CreateQuotation(r.Context(), q)
	if err != nil {
		s.log.Error("create quotation", "err", err)
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, s.toQuotationJSON(created))
}

// listOvertime lists overtime entries, optionally filtered by ?sales_rep=.
func (s *Server) listOvertime(w http.ResponseWriter, r *http.Request) {
	records, err := s.side.OvertimeRecords(r.Context(), r.URL.Query().Get("sales_rep"))
	if err != nil {
		s.log.Error("list overtime", "err", err)
		writeDomainErr(w, err)
		return
	}
	items := make([]overtimeJSON, 0, len(records))
	for _, o := range records {
		items = append(items, toOvertimeJSON(o))
	}
	toJSON(w, http.StatusOK, struct {
		Items []overtimeJSON `json:"items"`
	}{Items: items})
}

func (s *Server) postOvertime(w http.ResponseWriter, r *http.Request) {
	o, ok := r.Context().Value(ctxKeyPostOvertime).(ledger.OvertimeRecord)
	if !ok {
		badRequest(w, "missing validated overtime record")
		return
	}
	o.ID = uuid.New()
	o.CreatedAt = time.Now().UTC()
	created, err := s.sideW.CreateOvertime(r.Context(), o)
	if err != nil {
		s.log.Error("create overtime", "err", err)
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, toOvertimeJSON(created))
}
