package recon

import (
	"testing"
	"time"

	"github.com/finview/receivables/internal/ledger"
)

func TestBucketFor_Boundaries(t *testing.T) {
	cases := []struct {
		days int
		want Bucket
	}{
		{-5, BucketCurrent},
		{0, BucketCurrent},
		{1, BucketOneToThirty},
		{30, BucketOneToThirty},
		{31, BucketThirtyOneToSixty},
		{60, BucketThirtyOneToSixty},
		{61, BucketSixtyOneToNinety},
		{90, BucketSixtyOneToNinety},
		{91, BucketNinetyOneToOneTwenty},
		{120, BucketNinetyOneToOneTwenty},
		{121, BucketOlder},
		{400, BucketOlder},
	}
	for _, c := range cases {
		if got := BucketFor(c.days); got != c.want {
			t.Errorf("BucketFor(%d) = %d, want %d", c.days, got, c.want)
		}
	}
}

func TestAging_BucketsPartitionTotal(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	rows := []ledger.Row{
		{Number: "SAL001", DebitMinor: 1000, Date: date(2024, time.June, 20)},  // current
		{Number: "SAL002", DebitMinor: 2000, Date: date(2024, time.June, 1)},   // 14 days
		{Number: "SAL003", DebitMinor: 3000, Date: date(2024, time.April, 20)}, // 56 days
		{Number: "SAL004", DebitMinor: 4000, Date: date(2024, time.March, 20)}, // 87 days
		{Number: "SAL005", DebitMinor: 5000, Date: date(2024, time.February, 20)},
		{Number: "SAL006", DebitMinor: 6000, Date: date(2023, time.June, 1)},
		{Number: "SAL007", DebitMinor: 7000}, // no date: bucket zero
	}
	sum := Aging(OpenInvoices(Resolve(rows)), today)
	parts := sum.AtDateMinor + sum.OneToThirtyMinor + sum.ThirtyOneToSixtyMinor +
		sum.SixtyOneToNinetyMinor + sum.NinetyOneToOneTwentyMinor + sum.OlderMinor
	if parts != sum.TotalMinor {
		t.Fatalf("buckets sum to %d, total is %d", parts, sum.TotalMinor)
	}
	if sum.TotalMinor != 28000 {
		t.Fatalf("total = %d, want 28000", sum.TotalMinor)
	}
	if sum.AtDateMinor != 8000 { // current invoice plus the dateless one
		t.Fatalf("at-date bucket = %d, want 8000", sum.AtDateMinor)
	}
}

func TestBucketize_IgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2024, time.June, 15, 23, 50, 0, 0, time.UTC)
	lateEvening := time.Date(2024, time.June, 14, 22, 0, 0, 0, time.UTC)
	earlyMorning := time.Date(2024, time.June, 14, 1, 0, 0, 0, time.UTC)
	_, d1 := Bucketize(&lateEvening, nil, today)
	_, d2 := Bucketize(&earlyMorning, nil, today)
	if d1 != d2 || d1 != 1 {
		t.Fatalf("days overdue differ with time-of-day: %d vs %d", d1, d2)
	}
}

func TestBucketize_DueDateWinsOverDate(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	_, days := Bucketize(date(2024, time.January, 1), date(2024, time.June, 10), today)
	if days != 5 {
		t.Fatalf("days = %d, want 5 (due date must win)", days)
	}
}

func TestAging_RoundTripThroughOverdueList(t *testing.T) {
	today := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	rows := []ledger.Row{
		{Number: "SAL001", Matching: "A", DebitMinor: 10000, Date: date(2024, time.January, 10)},
		{Number: "RCPT1", Matching: "A", CreditMinor: 4000, Date: date(2024, time.February, 1)},
		{Number: "SAL002", DebitMinor: 2500, Date: date(2024, time.May, 1)},
		{Number: "SAL003", DebitMinor: 900, Date: date(2024, time.June, 1), DueDate: date(2024, time.June, 10)},
		{Number: "SAL004", DebitMinor: 2500, Date: date(2024, time.June, 20)}, // not yet due
	}
	open := OpenInvoices(Resolve(rows))
	direct := Aging(open, today)

	annotated := Overdue(open, today)
	if len(annotated) != len(open) {
		t.Fatalf("annotated list dropped items: %d vs %d open", len(annotated), len(open))
	}
	var rebuilt AgingSummary
	for _, od := range annotated {
		rebuilt.Add(od.DifferenceMinor, od.DaysOverdue)
	}
	if rebuilt != direct {
		t.Fatalf("round-trip mismatch:\n direct  %+v\n rebuilt %+v", direct, rebuilt)
	}
	if rebuilt.AtDateMinor != 2500 {
		t.Fatalf("at-date bucket lost on round trip: %+v", rebuilt)
	}
}
