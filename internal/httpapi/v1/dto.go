package v1

import (
	"strconv"
	"time"

	"github.com/govalues/money"

	"github.com/finview/receivables/internal/ledger"
	"github.com/finview/receivables/internal/recon"
	"github.com/finview/receivables/internal/report"
)

// rowPayload is one ledger row as posted by clients. Dates are lenient
// strings; unparseable values degrade to absent.
type rowPayload struct {
	Customer    string `json:"customer"`
	Number      string `json:"number"`
	Date        string `json:"date,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	DebitMinor  int64  `json:"debit_minor"`
	CreditMinor int64  `json:"credit_minor"`
	Matching    string `json:"matching,omitempty"`
	SalesRep    string `json:"sales_rep,omitempty"`
}

type postRowsRequest struct {
	Rows []rowPayload `json:"rows"`
}

type postNoteRequest struct {
	Author   string            `json:"author"`
	Body     string            `json:"body"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type postVisitRequest struct {
	SalesRep  string            `json:"sales_rep"`
	Purpose   string            `json:"purpose,omitempty"`
	Outcome   string            `json:"outcome,omitempty"`
	VisitedAt string            `json:"visited_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type postOvertimeRequest struct {
	SalesRep string  `json:"sales_rep"`
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Reason   string  `json:"reason,omitempty"`
}

type postQuotationRequest struct {
	Reference   string            `json:"reference"`
	AmountMinor int64             `json:"amount_minor"`
	Status      string            `json:"status,omitempty"`
	IssuedAt    string            `json:"issued_at,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// amountStr renders minor units as a plain decimal string, e.g. "1500.00".
// An unknown currency code falls back to the raw integer, the same rule the
// CSV export applies, so the two surfaces always agree.
func amountStr(curr string, units int64) string {
	a, err := money.NewAmountFromMinorUnits(curr, units)
	if err != nil {
		return strconv.FormatInt(units, 10)
	}
	return a.Decimal().String()
}

func dateStr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

type agingJSON struct {
	AtDateMinor               int64 `json:"at_date_minor"`
	OneToThirtyMinor          int64 `json:"overdue_1_30_minor"`
	ThirtyOneToSixtyMinor     int64 `json:"overdue_31_60_minor"`
	SixtyOneToNinetyMinor     int64 `json:"overdue_61_90_minor"`
	NinetyOneToOneTwentyMinor int64 `json:"overdue_91_120_minor"`
	OlderMinor                int64 `json:"overdue_older_minor"`
	TotalMinor                int64 `json:"total_minor"`
}

func toAgingJSON(a recon.AgingSummary) agingJSON {
	return agingJSON{
		AtDateMinor:               a.AtDateMinor,
		OneToThirtyMinor:          a.OneToThirtyMinor,
		ThirtyOneToSixtyMinor:     a.ThirtyOneToSixtyMinor,
		SixtyOneToNinetyMinor:     a.SixtyOneToNinetyMinor,
		NinetyOneToOneTwentyMinor: a.NinetyOneToOneTwentyMinor,
		OlderMinor:                a.OlderMinor,
		TotalMinor:                a.TotalMinor,
	}
}

type customerJSON struct {
	Name             string    `json:"name"`
	NetDebtMinor     int64     `json:"net_debt_minor"`
	NetDebt          string    `json:"net_debt"`
	OpenBalanceMinor int64     `json:"open_balance_minor"`
	OpenBalance      string    `json:"open_balance"`
	Aging            agingJSON `json:"aging"`
	Score            int       `json:"score"`
	Rating           string    `json:"rating"`
}

func (s *Server) toCustomerJSON(c report.CustomerSummary) customerJSON {
	return customerJSON{
		Name:             c.Name,
		NetDebtMinor:     c.NetDebtMinor,
		NetDebt:          amountStr(s.currency, c.NetDebtMinor),
		OpenBalanceMinor: c.OpenBalanceMinor,
		OpenBalance:      amountStr(s.currency, c.OpenBalanceMinor),
		Aging:            toAgingJSON(c.Aging),
		Score:            c.Score,
		Rating:           string(c.Rating),
	}
}

type openInvoiceJSON struct {
	Number      string `json:"number"`
	Date        string `json:"date,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	DebitMinor  int64  `json:"debit_minor"`
	CreditMinor int64  `json:"credit_minor"`
	AmountMinor int64  `json:"amount_minor"`
	Amount      string `json:"amount"`
	SalesRep    string `json:"sales_rep,omitempty"`
	Matching    string `json:"matching,omitempty"`
}

func (s *Server) toOpenInvoiceJSON(inv recon.OpenInvoice) openInvoiceJSON {
	return openInvoiceJSON{
		Number:      inv.Number,
		Date:        dateStr(inv.Date),
		DueDate:     dateStr(inv.DueDate),
		DebitMinor:  inv.DebitMinor,
		CreditMinor: inv.CreditMinor,
		AmountMinor: inv.AmountMinor,
		Amount:      amountStr(s.currency, inv.AmountMinor),
		SalesRep:    inv.SalesRep,
		Matching:    inv.Matching,
	}
}

type overdueJSON struct {
	Customer        string `json:"customer"`
	Number          string `json:"number"`
	Date            string `json:"date,omitempty"`
	DueDate         string `json:"due_date,omitempty"`
	DaysOverdue     int    `json:"days_overdue"`
	DifferenceMinor int64  `json:"difference_minor"`
	Difference      string `json:"difference"`
	SalesRep        string `json:"sales_rep,omitempty"`
	Matching        string `json:"matching,omitempty"`
}

func (s *Server) toOverdueJSON(it recon.OverdueInvoice) overdueJSON {
	return overdueJSON{
		Customer:        it.Customer,
		Number:          it.Number,
		Date:            dateStr(it.Date),
		DueDate:         dateStr(it.DueDate),
		DaysOverdue:     it.DaysOverdue,
		DifferenceMinor: it.DifferenceMinor,
		Difference:      amountStr(s.currency, it.DifferenceMinor),
		SalesRep:        it.SalesRep,
		Matching:        it.Matching,
	}
}

type monthlyJSON struct {
	Year        int   `json:"year"`
	Month       int   `json:"month"`
	DebitMinor  int64 `json:"debit_minor"`
	CreditMinor int64 `json:"credit_minor"`
	NetMinor    int64 `json:"net_minor"`
}

func toMonthlyJSON(m recon.MonthlyDebt) monthlyJSON {
	return monthlyJSON{
		Year:        m.Year,
		Month:       int(m.Month),
		DebitMinor:  m.DebitMinor,
		CreditMinor: m.CreditMinor,
		NetMinor:    m.NetMinor(),
	}
}

type yearJSON struct {
	Year             int   `json:"year"`
	SalesMinor       int64 `json:"sales_minor"`
	ReturnsMinor     int64 `json:"returns_minor"`
	PaymentsMinor    int64 `json:"payments_minor"`
	NetMinor         int64 `json:"net_minor"`
	OpenBalanceMinor int64 `json:"open_balance_minor"`
}

func toYearJSON(y recon.YearSummary) yearJSON {
	return yearJSON{
		Year:             y.Year,
		SalesMinor:       y.SalesMinor,
		ReturnsMinor:     y.ReturnsMinor,
		PaymentsMinor:    y.PaymentsMinor,
		NetMinor:         y.NetMinor,
		OpenBalanceMinor: y.OpenBalanceMinor,
	}
}

type noteJSON struct {
	ID        string            `json:"id"`
	Customer  string            `json:"customer"`
	Author    string            `json:"author,omitempty"`
	Body      string            `json:"body"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func toNoteJSON(n ledger.Note) noteJSON {
	return noteJSON{
		ID:        n.ID.String(),
		Customer:  n.Customer,
		Author:    n.Author,
		Body:      n.Body,
		Metadata:  n.Metadata,
		CreatedAt: n.CreatedAt,
	}
}

type visitJSON struct {
	ID        string            `json:"id"`
	Customer  string            `json:"customer"`
	SalesRep  string            `json:"sales_rep"`
	Purpose   string            `json:"purpose,omitempty"`
	Outcome   string            `json:"outcome,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	VisitedAt time.Time         `json:"visited_at"`
	CreatedAt time.Time         `json:"created_at"`
}

func toVisitJSON(v ledger.Visit) visitJSON {
	return visitJSON{
		ID:        v.ID.String(),
		Customer:  v.Customer,
		SalesRep:  v.SalesRep,
		Purpose:   v.Purpose,
		Outcome:   v.Outcome,
		Metadata:  v.Metadata,
		VisitedAt: v.VisitedAt,
		CreatedAt: v.CreatedAt,
	}
}

type overtimeJSON struct {
	ID        string    `json:"id"`
	SalesRep  string    `json:"sales_rep"`
	Date      string    `json:"date"`
	Hours     float64   `json:"hours"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toOvertimeJSON(o ledger.OvertimeRecord) overtimeJSON {
	return overtimeJSON{
		ID:        o.ID.String(),
		SalesRep:  o.SalesRep,
		Date:      o.Date.Format("2006-01-02"),
		Hours:     o.Hours,
		Reason:    o.Reason,
		CreatedAt: o.CreatedAt,
	}
}

type quotationJSON struct {
	ID          string            `json:"id"`
	Customer    string            `json:"customer"`
	Reference   string            `json:"reference"`
	AmountMinor int64             `json:"amount_minor"`
	Amount      string            `json:"amount"`
	Status      string            `json:"status,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	IssuedAt    time.Time         `json:"issued_at"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (s *Server) toQuotationJSON(q ledger.Quotation) quotationJSON {
	return quotationJSON{
		ID:          q.ID.String(),
		Customer:    q.Customer,
		Reference:   q.Reference,
		AmountMinor: q.AmountMinor,
		Amount:      amountStr(s.currency, q.AmountMinor),
		Status:      q.Status,
		Metadata:    q.Metadata,
		IssuedAt:    q.IssuedAt,
		CreatedAt:   q.CreatedAt,
	}
}
