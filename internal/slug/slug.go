// Package slug normalizes free-form names (customers, sales reps) into
// identifiers safe for filenames and workbook sheet names.
package slug

import "strings"

// Slugify converts s to lowercase [a-z0-9_], collapsing runs of other
// characters into single underscores and trimming to 40 characters.
func Slugify(s string) string {
	if s == "" {
		return s
	}
	out := make([]rune, 0, len(s))
	prevUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			out = append(out, r)
			prevUnderscore = false
		default:
			if !prevUnderscore {
				out = append(out, '_')
				prevUnderscore = true
			}
		}
		if len(out) >= 40 {
			break
		}
	}
	return strings.Trim(string(out), "_")
}

// SheetName trims s into something Excel accepts: 31 characters maximum
// and none of the reserved punctuation.
func SheetName(s string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return ' '
		}
		return r
	}, s)
	clean = strings.TrimSpace(clean)
	if clean == "" {
		clean = "Sheet"
	}
	// Truncate by runes; a byte cut could split a multi-byte character and
	// leave an invalid sheet name.
	if r := []rune(clean); len(r) > 31 {
		clean = string(r[:31])
	}
	return clean
}
