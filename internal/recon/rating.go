package recon

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finview/receivables/internal/dates"
	"github.com/finview/receivables/internal/ledger"
)

// Rating is the heuristic debt classification shown next to each customer.
type Rating string

const (
	RatingGood   Rating = "good"
	RatingMedium Rating = "medium"
	RatingBad    Rating = "bad"
)

// Score bands. The point weights below are a fixed business heuristic;
// changing any of them changes customer ratings.
const (
	scoreGood   = 11
	scoreMedium = 6
)

// RatingInput is the trailing-window activity the scorer consumes.
type RatingInput struct {
	NetDebtMinor    int64
	Sales90Minor    int64
	Returns90Minor  int64
	Payments90Minor int64
	SaleCount90     int
	PaymentCount90  int
	LastSale        *time.Time
	LastPayment     *time.Time
}

// BuildRatingInput scans a customer's rows and collects the activity
// signals for the trailing 90 days ending today.
func BuildRatingInput(rows []ledger.Row, today time.Time) RatingInput {
	in := RatingInput{NetDebtMinor: NetDebtMinor(rows)}
	cutoff := dates.Midnight(today).AddDate(0, 0, -90)
	for _, r := range rows {
		if r.Date == nil {
			continue
		}
		d := dates.Midnight(*r.Date)
		switch ClassifyRow(r) {
		case ledger.TxSale:
			if in.LastSale == nil || d.After(*in.LastSale) {
				t := d
				in.LastSale = &t
			}
			if !d.Before(cutoff) {
				in.Sales90Minor += r.DebitMinor
				in.SaleCount90++
			}
		case ledger.TxSalesReturn:
			if !d.Before(cutoff) {
				in.Returns90Minor += r.CreditMinor
			}
		case ledger.TxPayment:
			if in.LastPayment == nil || d.After(*in.LastPayment) {
				t := d
				in.LastPayment = &t
			}
			if !d.Before(cutoff) {
				in.Payments90Minor += r.CreditMinor
				in.PaymentCount90++
			}
		}
	}
	return in
}

// Score applies the fixed point system and returns the total alongside the
// resulting band. Two risk flags force a bad rating regardless of points:
// negative 90-day net sales with no payments, and a dormant customer
// (no payments, no sales) still carrying positive debt.
func Score(in RatingInput, today time.Time) (int, Rating) {
	points := 0

	switch {
	case in.NetDebtMinor <= 0:
		points += 5
	case in.NetDebtMinor < 5_000_000:
		points += 4
	case in.NetDebtMinor < 20_000_000:
		points += 3
	case in.NetDebtMinor < 50_000_000:
		points += 2
	}

	if rate := collectionRate(in); rate.GreaterThanOrEqual(decimal.NewFromFloat(0.9)) {
		points += 4
	} else if rate.GreaterThanOrEqual(decimal.NewFromFloat(0.6)) {
		points += 2
	} else if rate.GreaterThanOrEqual(decimal.NewFromFloat(0.3)) {
		points++
	}

	if in.LastPayment != nil {
		switch age := daysSince(today, *in.LastPayment); {
		case age <= 30:
			points += 3
		case age <= 90:
			points += 2
		}
	}
	if in.LastSale != nil && daysSince(today, *in.LastSale) <= 30 {
		points++
	}

	if in.PaymentCount90 >= 3 {
		points += 2
	} else if in.PaymentCount90 >= 1 {
		points++
	}
	if in.SaleCount90 >= 3 {
		points++
	}

	netSales90 := in.Sales90Minor - in.Returns90Minor
	if netSales90 < 0 && in.PaymentCount90 == 0 {
		return points, RatingBad
	}
	if in.PaymentCount90 == 0 && in.SaleCount90 == 0 && in.NetDebtMinor > EpsilonMinor {
		return points, RatingBad
	}

	switch {
	case points >= scoreGood:
		return points, RatingGood
	case points >= scoreMedium:
		return points, RatingMedium
	default:
		return points, RatingBad
	}
}

// collectionRate is payments / net sales over the trailing window, clamped
// to zero when there were no positive net sales to collect against.
func collectionRate(in RatingInput) decimal.Decimal {
	netSales := in.Sales90Minor - in.Returns90Minor
	if netSales <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(in.Payments90Minor).Div(decimal.NewFromInt(netSales))
}

func daysSince(today, t time.Time) int {
	return dates.DaysOverdue(today, &t, nil)
}
