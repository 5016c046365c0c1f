// Package dates centralizes the lenient date handling used across reports.
// Spreadsheet-sourced dates arrive in several shapes; anything unparseable
// is treated as absent rather than an error.
package dates

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// layouts tried in priority order: ISO first, then common slash/dash forms.
var layouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
}

// reYMD pulls year-month-day out of strings no layout matched, e.g.
// "2024.03.07" or trailing annotations after the date.
var reYMD = regexp.MustCompile(`(\d{4})\D(\d{1,2})\D(\d{1,2})`)

// ParseFlexible parses s leniently. The boolean is false when no candidate
// format matched; callers treat that as "no date".
func ParseFlexible(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if m := reYMD.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		if mo >= 1 && mo <= 12 && d >= 1 && d <= 31 {
			return time.Date(y, time.Month(mo), d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// Midnight strips the time-of-day component, anchoring the date in UTC so
// day arithmetic is insensitive to the zone the value was parsed in.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysOverdue returns how many whole days today is past the target date.
// The due date wins when present, the transaction date is the fallback,
// and rows with no usable date at all report zero.
func DaysOverdue(today time.Time, date, due *time.Time) int {
	target := due
	if target == nil {
		target = date
	}
	if target == nil {
		return 0
	}
	diff := Midnight(today).Sub(Midnight(*target))
	return int(math.Ceil(diff.Hours() / 24))
}
