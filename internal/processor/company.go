// Package processor holds the per-company classification rules and the
// dispatch tables that resolve a company code to its processors.
package processor

import (
	"fmt"
	"strings"

	"finecto/internal/apperr"
)

// Company identifies a supported rule set. The set is closed: adding a
// company means adding a constant here plus an entry in every dispatch
// table, which the exhaustiveness test enforces.
type Company string

const (
	CompanyA Company = "A"
	CompanyB Company = "B"
)

// Companies lists every supported company code.
func Companies() []Company {
	return []Company{CompanyA, CompanyB}
}

// unsupported builds the conflict error for an unknown company code. The
// code is echoed verbatim, not uppercased.
func unsupported(company string) *apperr.Error {
	return apperr.Conflict(fmt.Sprintf("Unsupported company: %s", company))
}

// normalize maps a raw company code to its canonical form.
func normalize(company string) Company {
	return Company(strings.ToUpper(company))
}
