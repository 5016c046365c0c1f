package slug

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Ltd", "acme_ltd"},
		{"Acme  &  Sons!!", "acme_sons"},
		{"ABC-123", "abc_123"},
		{"", ""},
		{"___", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	long := Slugify(strings.Repeat("ab", 40))
	if len(long) > 40 {
		t.Errorf("Slugify should cap at 40 chars, got %d", len(long))
	}
}

func TestSheetName(t *testing.T) {
	if got := SheetName("Acme: Retail/West"); strings.ContainsAny(got, `:\/?*[]`) {
		t.Errorf("reserved characters survived: %q", got)
	}
	if got := SheetName(""); got != "Sheet" {
		t.Errorf("empty name = %q, want Sheet", got)
	}
	if got := SheetName("???"); got != "Sheet" {
		t.Errorf("all-reserved name = %q, want Sheet", got)
	}
}

func TestSheetName_TruncatesByRunes(t *testing.T) {
	// 40 two-byte runes; a byte-wise cut at 31 would split one in half.
	got := SheetName(strings.Repeat("é", 40))
	if !utf8.ValidString(got) {
		t.Fatalf("truncation produced invalid UTF-8: %q", got)
	}
	if n := utf8.RuneCountInString(got); n != 31 {
		t.Fatalf("got %d runes, want 31", n)
	}
}
