// Package dictionary exposes the curated transaction-type definitions the
// UI and exports render labels from.
package dictionary

import "github.com/finview/receivables/internal/ledger"

type TypeDef struct {
	Code   ledger.TxType `json:"code"`
	Label  string        `json:"label"`
	Prefix string        `json:"prefix,omitempty"`
}

var curated = []TypeDef{
	{Code: ledger.TxOpeningBalance, Label: "Opening Balance", Prefix: "OB"},
	{Code: ledger.TxSale, Label: "Sale", Prefix: "SAL"},
	{Code: ledger.TxSalesReturn, Label: "Sales Return", Prefix: "RSAL"},
	{Code: ledger.TxAdjustment, Label: "Discount / Adjustment", Prefix: "JV, BIL"},
	{Code: ledger.TxPayment, Label: "Payment"},
	{Code: ledger.TxOther, Label: "Other"},
}

// Types returns the full list of transaction-type definitions.
func Types() []TypeDef {
	out := make([]TypeDef, len(curated))
	copy(out, curated)
	return out
}

// LabelFor maps a type code to its display label.
func LabelFor(t ledger.TxType) string {
	for _, def := range curated {
		if def.Code == t {
			return def.Label
		}
	}
	return string(t)
}
