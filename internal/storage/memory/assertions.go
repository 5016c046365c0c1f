package memory

import (
	"github.com/finview/receivables/internal/report"
)

// Compile-time interface assertions documenting which interfaces Store satisfies.
var (
	_ report.Repo = (*Store)(nil)
)
