// Package recon implements the open-balance reconciliation engine: matching
// group resolution, overdue aging, transaction classification, monthly
// roll-ups and the customer debt rating. All functions are pure passes over
// in-memory rows; every report recomputes from the full row set.
package recon

import (
	"github.com/finview/receivables/internal/ledger"
)

// EpsilonMinor is the settlement tolerance in minor units. A group (or a
// standalone row) whose net is within this tolerance counts as closed.
const EpsilonMinor = 1

// Resolved annotates a row with its net amount and, only on the residual
// holder of an open matching group, the full group net.
type Resolved struct {
	ledger.Row
	NetMinor      int64
	ResidualMinor *int64
}

// Open reports whether the resolved row still carries outstanding value:
// either an unmatched row with a non-zero net, or the residual holder of an
// open matching group.
func (r Resolved) Open() bool {
	if r.Matching == "" {
		return abs(r.NetMinor) > EpsilonMinor
	}
	return r.ResidualMinor != nil
}

// OpenAmountMinor is the outstanding amount the row represents: its own net
// when unmatched, the group net when it is a residual holder, zero otherwise.
func (r Resolved) OpenAmountMinor() int64 {
	if r.Matching == "" {
		if abs(r.NetMinor) > EpsilonMinor {
			return r.NetMinor
		}
		return 0
	}
	if r.ResidualMinor != nil {
		return *r.ResidualMinor
	}
	return 0
}

// Resolve computes matching-group totals and designates residual holders.
// The holder of a group is the row with the strictly largest debit; ties
// keep the first occurrence in input order. The holder carries the whole
// group net as its residual, and only when the group is still open.
func Resolve(rows []ledger.Row) []Resolved {
	totals := make(map[string]int64)
	holder := make(map[string]int)
	maxDebit := make(map[string]int64)
	for i, r := range rows {
		key := r.Matching
		if key == "" {
			continue
		}
		totals[key] += r.NetMinor()
		if _, seen := holder[key]; !seen || r.DebitMinor > maxDebit[key] {
			holder[key] = i
			maxDebit[key] = r.DebitMinor
		}
	}
	out := make([]Resolved, len(rows))
	for i, r := range rows {
		res := Resolved{Row: r, NetMinor: r.NetMinor()}
		if r.Matching != "" && holder[r.Matching] == i {
			if net := totals[r.Matching]; abs(net) > EpsilonMinor {
				v := net
				res.ResidualMinor = &v
			}
		}
		out[i] = res
	}
	return out
}

// OpenBalanceMinor sums the outstanding value across resolved rows: every
// open unmatched net plus every open group net, the latter counted once via
// its residual holder.
func OpenBalanceMinor(rows []Resolved) int64 {
	var total int64
	for _, r := range rows {
		total += r.OpenAmountMinor()
	}
	return total
}

// NetDebtMinor is the naive full-ledger sum of debits minus credits,
// ignoring reconciliation state.
func NetDebtMinor(rows []ledger.Row) int64 {
	var total int64
	for _, r := range rows {
		total += r.NetMinor()
	}
	return total
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
