package v1

import (
	"net/http"

	"github.com/finview/receivables/internal/ingest"
	"github.com/finview/receivables/internal/ledger"
)

// postRows appends validated rows to the ledger.
func (s *Server) postRows(w http.ResponseWriter, r *http.Request) {
	rows, ok := r.Context().Value(ctxKeyPostRows).([]ledger.Row)
	if !ok {
		badRequest(w, "missing validated rows")
		return
	}
	if err := s.rows.AddRows(r.Context(), rows); err != nil {
		s.log.Error("add rows", "err", err)
		writeDomainErr(w, err)
		return
	}
	rowsImportedTotal.Add(float64(len(rows)))
	toJSON(w, http.StatusCreated, struct {
		Accepted int `json:"accepted"`
	}{Accepted: len(rows)})
}

// importRows takes a CSV body and replaces the stored ledger with it. Append
// mode is available via ?mode=append.
func (s *Server) importRows(w http.ResponseWriter, r *http.Request) {
	rows, err := ingest.ReadRows(r.Body, s.log)
	if err != nil {
		badRequest(w, "invalid CSV: "+err.Error())
		return
	}
	if len(rows) == 0 {
		unprocessable(w, "no usable rows in upload", "empty_import")
		return
	}
	if r.URL.Query().Get("mode") == "append" {
		err = s.rows.AddRows(r.Context(), rows)
	} else {
		err = s.rows.ReplaceRows(r.Context(), rows)
	}
	if err != nil {
		s.log.Error("import rows", "err", err)
		writeDomainErr(w, err)
		return
	}
	rowsImportedTotal.Add(float64(len(rows)))
	toJSON(w, http.StatusCreated, struct {
		Accepted int `json:"accepted"`
	}{Accepted: len(rows)})
}
