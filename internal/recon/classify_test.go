package recon

import (
	"testing"

	"github.com/finview/receivables/internal/ledger"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		number string
		debit  int64
		credit int64
		want   ledger.TxType
	}{
		{"opening balance", "OB2024", 150000, 0, ledger.TxOpeningBalance},
		{"opening balance with credit stays opening", "OB2023", 0, 2000, ledger.TxOpeningBalance},
		{"sale", "SAL001", 50000, 0, ledger.TxSale},
		{"lowercase sale prefix", "sal442", 1200, 0, ledger.TxSale},
		{"sale prefix without debit is other", "SAL777", 0, 3000, ledger.TxOther},
		{"sales return", "RSAL001", 0, 5000, ledger.TxSalesReturn},
		{"return prefix without credit is other", "RSAL009", 700, 0, ledger.TxOther},
		{"journal voucher", "JV100", 0, 900, ledger.TxAdjustment},
		{"discount bill", "BIL55", 400, 0, ledger.TxAdjustment},
		{"plain credited row is payment", "RCPT88", 0, 2500, ledger.TxPayment},
		{"credit at epsilon is not a payment", "RCPT89", 0, 1, ledger.TxOther},
		{"uncredited unknown number", "XX1", 100, 0, ledger.TxOther},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.number, c.debit, c.credit); got != c.want {
				t.Fatalf("Classify(%q, %d, %d) = %q, want %q", c.number, c.debit, c.credit, got, c.want)
			}
		})
	}
}
