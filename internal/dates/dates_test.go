package dates

import (
	"testing"
	"time"
)

func TestParseFlexible(t *testing.T) {
	cases := []struct {
		in    string
		want  string // YYYY-MM-DD of the parsed value, empty for failure
		valid bool
	}{
		{"2024-03-07", "2024-03-07", true},
		{"2024-03-07T10:30:00Z", "2024-03-07", true},
		{"2024-03-07 10:30:00", "2024-03-07", true},
		{"07/03/2024", "2024-03-07", true},
		{"7/3/2024", "2024-03-07", true},
		{"07-03-2024", "2024-03-07", true},
		{"2024/03/07", "2024-03-07", true},
		{"2024.03.07", "2024-03-07", true},
		{"due 2024.12.31 net30", "2024-12-31", true},
		{"", "", false},
		{"n/a", "", false},
		{"31/31/2024", "", false},
	}
	for _, c := range cases {
		got, ok := ParseFlexible(c.in)
		if ok != c.valid {
			t.Errorf("ParseFlexible(%q) ok = %v, want %v", c.in, ok, c.valid)
			continue
		}
		if ok && got.Format("2006-01-02") != c.want {
			t.Errorf("ParseFlexible(%q) = %s, want %s", c.in, got.Format("2006-01-02"), c.want)
		}
	}
}

func TestDaysOverdue(t *testing.T) {
	today := time.Date(2024, time.June, 15, 18, 45, 0, 0, time.UTC)
	d := func(y int, m time.Month, day, hour int) *time.Time {
		t := time.Date(y, m, day, hour, 0, 0, 0, time.UTC)
		return &t
	}
	if got := DaysOverdue(today, d(2024, time.June, 10, 0), nil); got != 5 {
		t.Fatalf("plain date: got %d, want 5", got)
	}
	if got := DaysOverdue(today, d(2024, time.January, 1, 0), d(2024, time.June, 14, 23)); got != 1 {
		t.Fatalf("due date must win and ignore time-of-day: got %d, want 1", got)
	}
	if got := DaysOverdue(today, nil, nil); got != 0 {
		t.Fatalf("no dates: got %d, want 0", got)
	}
	if got := DaysOverdue(today, d(2024, time.June, 20, 0), nil); got != -5 {
		t.Fatalf("future date: got %d, want -5", got)
	}
}
