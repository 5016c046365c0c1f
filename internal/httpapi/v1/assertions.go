package v1

import (
	"github.com/finview/receivables/internal/storage/memory"
	"github.com/finview/receivables/internal/storage/postgres"
)

// Compile-time interface assertions for the stores against the API interfaces.
var (
	_ Repository   = (*memory.Store)(nil)
	_ ReadyChecker = (*memory.Store)(nil)
	_ Repository   = (*postgres.Store)(nil)
	_ ReadyChecker = (*postgres.Store)(nil)
)
