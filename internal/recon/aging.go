package recon

import (
	"time"

	"github.com/finview/receivables/internal/dates"
)

// Bucket is an aging band keyed by days overdue.
type Bucket int

const (
	BucketCurrent Bucket = iota
	BucketOneToThirty
	BucketThirtyOneToSixty
	BucketSixtyOneToNinety
	BucketNinetyOneToOneTwenty
	BucketOlder
)

// AgingSummary is the six-band histogram of open amounts by days overdue.
// The bands partition the open amount exactly: TotalMinor always equals the
// sum of the six buckets.
type AgingSummary struct {
	AtDateMinor               int64
	OneToThirtyMinor          int64
	ThirtyOneToSixtyMinor     int64
	SixtyOneToNinetyMinor     int64
	NinetyOneToOneTwentyMinor int64
	OlderMinor                int64
	TotalMinor                int64
}

// BucketFor maps days overdue to its aging band (inclusive upper bounds).
func BucketFor(days int) Bucket {
	switch {
	case days <= 0:
		return BucketCurrent
	case days <= 30:
		return BucketOneToThirty
	case days <= 60:
		return BucketThirtyOneToSixty
	case days <= 90:
		return BucketSixtyOneToNinety
	case days <= 120:
		return BucketNinetyOneToOneTwenty
	default:
		return BucketOlder
	}
}

// Bucketize computes the aging placement of a single open amount from its
// dates. It is the one shared implementation behind the aging summary, the
// overdue listing and the per-customer breakdown.
func Bucketize(date, due *time.Time, today time.Time) (Bucket, int) {
	days := dates.DaysOverdue(today, date, due)
	return BucketFor(days), days
}

// Add accumulates an amount into the band for the given days overdue.
func (a *AgingSummary) Add(amountMinor int64, days int) {
	switch BucketFor(days) {
	case BucketCurrent:
		a.AtDateMinor += amountMinor
	case BucketOneToThirty:
		a.OneToThirtyMinor += amountMinor
	case BucketThirtyOneToSixty:
		a.ThirtyOneToSixtyMinor += amountMinor
	case BucketSixtyOneToNinety:
		a.SixtyOneToNinetyMinor += amountMinor
	case BucketNinetyOneToOneTwenty:
		a.NinetyOneToOneTwentyMinor += amountMinor
	case BucketOlder:
		a.OlderMinor += amountMinor
	}
	a.TotalMinor += amountMinor
}

// Aging buckets every open invoice as of today.
func Aging(invoices []OpenInvoice, today time.Time) AgingSummary {
	var sum AgingSummary
	for _, inv := range invoices {
		_, days := Bucketize(inv.Date, inv.DueDate, today)
		sum.Add(inv.AmountMinor, days)
	}
	return sum
}
