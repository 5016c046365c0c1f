package recon

import (
	"strings"

	"github.com/finview/receivables/internal/ledger"
)

// Classify derives the transaction type from the document number prefix
// (case-insensitive) and the row's amounts. Prefixed rows never fall
// through to the payment category, even when they carry a credit.
func Classify(number string, debitMinor, creditMinor int64) ledger.TxType {
	n := strings.ToUpper(strings.TrimSpace(number))
	switch {
	case strings.HasPrefix(n, "OB"):
		return ledger.TxOpeningBalance
	case strings.HasPrefix(n, "RSAL"):
		if creditMinor > 0 {
			return ledger.TxSalesReturn
		}
		return ledger.TxOther
	case strings.HasPrefix(n, "SAL"):
		if debitMinor > 0 {
			return ledger.TxSale
		}
		return ledger.TxOther
	case strings.HasPrefix(n, "JV"), strings.HasPrefix(n, "BIL"):
		return ledger.TxAdjustment
	case creditMinor > EpsilonMinor:
		return ledger.TxPayment
	default:
		return ledger.TxOther
	}
}

// ClassifyRow is Classify applied to a full row.
func ClassifyRow(r ledger.Row) ledger.TxType {
	return Classify(r.Number, r.DebitMinor, r.CreditMinor)
}
