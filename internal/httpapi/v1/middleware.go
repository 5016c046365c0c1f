package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/finview/receivables/internal/dates"
	"github.com/finview/receivables/internal/ledger"
	"github.com/finview/receivables/internal/meta"
)

type ctxKey string

const ctxKeyPostRows ctxKey = "validatedPostRows"
const ctxKeyPostNote ctxKey = "validatedPostNote"
const ctxKeyPostVisit ctxKey = "validatedPostVisit"
const ctxKeyPostOvertime ctxKey = "validatedPostOvertime"
const ctxKeyPostQuotation ctxKey = "validatedPostQuotation"

// toRowDomain converts a posted row. Date strings parse leniently; values
// that do not parse degrade to absent dates, matching the CSV import.
func toRowDomain(p rowPayload) ledger.Row {
	row := ledger.Row{
		Customer:    p.Customer,
		Number:      p.Number,
		DebitMinor:  p.DebitMinor,
		CreditMinor: p.CreditMinor,
		Matching:    p.Matching,
		SalesRep:    p.SalesRep,
	}
	if t, ok := dates.ParseFlexible(p.Date); ok {
		row.Date = &t
	}
	if t, ok := dates.ParseFlexible(p.DueDate); ok {
		row.DueDate = &t
	}
	return row
}

// validatePostRows checks the POST /v1/rows body and stores the parsed rows
// in the request context for the handler.
func (s *Server) validatePostRows() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req postRowsRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			if len(req.Rows) == 0 {
				badRequest(w, "rows are required")
				return
			}
			rows := make([]ledger.Row, 0, len(req.Rows))
			for _, p := range req.Rows {
				if p.Customer == "" {
					unprocessable(w, "every row needs a customer", "missing_customer")
					return
				}
				if p.DebitMinor < 0 || p.CreditMinor < 0 {
					unprocessable(w, "amounts must not be negative", "invalid_amount")
					return
				}
				rows = append(rows, toRowDomain(p))
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostRows, rows)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) validatePostNote() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req postNoteRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			if req.Body == "" {
				badRequest(w, "body is required")
				return
			}
			if req.Metadata != nil {
				if err := meta.New(req.Metadata).Validate(); err != nil {
					unprocessable(w, err.Error(), "validation_error")
					return
				}
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostNote, req)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) validatePostVisit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req postVisitRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			if req.SalesRep == "" {
				badRequest(w, "sales_rep is required")
				return
			}
			visitedAt, ok := dates.ParseFlexible(req.VisitedAt)
			if !ok {
				badRequest(w, "visited_at is required and must be a date")
				return
			}
			if req.Metadata != nil {
				if err := meta.New(req.Metadata).Validate(); err != nil {
					unprocessable(w, err.Error(), "validation_error")
					return
				}
			}
			v := ledger.Visit{
				SalesRep:  req.SalesRep,
				Purpose:   req.Purpose,
				Outcome:   req.Outcome,
				Metadata:  meta.New(req.Metadata),
				VisitedAt: visitedAt,
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostVisit, v)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) validatePostOvertime() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req postOvertimeRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			if req.SalesRep == "" {
				badRequest(w, "sales_rep is required")
				return
			}
			day, ok := dates.ParseFlexible(req.Date)
			if !ok {
				badRequest(w, "date is required and must be a date")
				return
			}
			if req.Hours <= 0 || req.Hours > 24 {
				unprocessable(w, "hours must be between 0 and 24", "invalid_hours")
				return
			}
			o := ledger.OvertimeRecord{
				SalesRep: req.SalesRep,
				Date:     dates.Midnight(day),
				Hours:    req.Hours,
				Reason:   req.Reason,
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostOvertime, o)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) validatePostQuotation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requireJSON(w, r) {
				return
			}
			var req postQuotationRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				badRequest(w, "invalid JSON: "+err.Error())
				return
			}
			if req.Reference == "" {
				badRequest(w, "reference is required")
				return
			}
			if req.AmountMinor <= 0 {
				unprocessable(w, "amount_minor must be > 0", "invalid_amount")
				return
			}
			if req.Metadata != nil {
				if err := meta.New(req.Metadata).Validate(); err != nil {
					unprocessable(w, err.Error(), "validation_error")
					return
				}
			}
			issuedAt := time.Now().UTC()
			if t, ok := dates.ParseFlexible(req.IssuedAt); ok {
				issuedAt = t
			}
			q := ledger.Quotation{
				Reference:   req.Reference,
				AmountMinor: req.AmountMinor,
				Status:      req.Status,
				Metadata:    meta.New(req.Metadata),
				IssuedAt:    issuedAt,
			}
			ctx := context.WithValue(r.Context(), ctxKeyPostQuotation, q)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
