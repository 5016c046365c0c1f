package v1

import (
	"net/http"

	"github.com/finview/receivables/internal/dictionary"
)

// GET /v1/dictionary/transaction-types
func (s *Server) getTransactionTypes(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, struct {
		Items []dictionary.TypeDef `json:"items"`
	}{Items: dictionary.Types()})
}
