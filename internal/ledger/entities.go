package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/finview/receivables/internal/meta"
)

// TxType classifies a ledger row by the prefix of its document number.
type TxType string

const (
	// TxOpeningBalance is a carried-forward balance row (OB prefix).
	TxOpeningBalance TxType = "opening_balance"
	// TxSale is an invoice row (SAL prefix with a positive debit).
	TxSale TxType = "sale"
	// TxSalesReturn is a credited return (RSAL prefix with a positive credit).
	TxSalesReturn TxType = "sales_return"
	// TxAdjustment covers discounts and journal corrections (JV/BIL prefixes).
	TxAdjustment TxType = "adjustment"
	// TxPayment is an actual receipt: a credited row with none of the
	// reserved prefixes.
	TxPayment TxType = "payment"
	// TxOther is anything that fits none of the categories above.
	TxOther TxType = "other"
)

// Row is one receivables transaction as imported from the ledger sheet.
// Amounts are minor units in the report currency (1 == 0.01). Dates that
// failed lenient parsing are nil and degrade to zero-day aging.
type Row struct {
	Customer    string
	Number      string
	Date        *time.Time
	DueDate     *time.Time
	DebitMinor  int64
	CreditMinor int64
	// Matching links rows of one settlement group; empty means the row
	// stands alone.
	Matching string
	SalesRep string
}

// NetMinor returns debit - credit for the row.
func (r Row) NetMinor() int64 { return r.DebitMinor - r.CreditMinor }

// Note is a free-form remark attached to a customer.
type Note struct {
	ID        uuid.UUID
	Customer  string
	Author    string
	Body      string
	Metadata  meta.Metadata
	CreatedAt time.Time
}

// Visit records a sales-rep visit to a customer.
type Visit struct {
	ID        uuid.UUID
	Customer  string
	SalesRep  string
	Purpose   string
	Outcome   string
	Metadata  meta.Metadata
	VisitedAt time.Time
	CreatedAt time.Time
}

// OvertimeRecord registers extra hours for a sales rep.
type OvertimeRecord struct {
	ID        uuid.UUID
	SalesRep  string
	Date      time.Time
	Hours     float64
	Reason    string
	CreatedAt time.Time
}

// Quotation is a purchase quotation issued to a customer.
type Quotation struct {
	ID          uuid.UUID
	Customer    string
	Reference   string
	AmountMinor int64
	Status      string
	Metadata    meta.Metadata
	IssuedAt    time.Time
	CreatedAt   time.Time
}
