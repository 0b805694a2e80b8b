package policy

import "fmt"

// Filter is the read-scoping predicate every list/read query for tenant-owned
// records must apply. It either matches any agency (All) or exactly one.
type Filter struct {
	All      bool
	AgencyID string
}

// Matches reports whether a record owned by agencyID is visible under the
// filter.
func (f Filter) Matches(agencyID string) bool {
	return f.All || f.AgencyID == agencyID
}

// Narrow intersects the filter with an explicitly requested set of agency ids.
// A caller-supplied set can only shrink visibility, never widen it: for an
// Own-scoped filter the result is always the caller's own agency. The returned
// slice is the effective agency set ("" empty means every agency).
func (f Filter) Narrow(requested []string) []string {
	if !f.All {
		return []string{f.AgencyID}
	}
	return requested
}

// SQLClause renders the filter as a WHERE fragment for the given column.
// For an All filter it returns an empty clause and no arguments; otherwise it
// returns "column = $n" with the agency id as argument. argPos is the 1-based
// position the next query placeholder should use.
func (f Filter) SQLClause(column string, argPos int) (string, []any) {
	if f.All {
		return "", nil
	}
	return fmt.Sprintf("%s = $%d", column, argPos), []any{f.AgencyID}
}
