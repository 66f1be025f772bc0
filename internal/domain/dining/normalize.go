package dining

import "strings"

// NormalizeName trims leading/trailing whitespace and collapses internal
// whitespace runs to a single space. All name identity comparisons (CRUD and
// import alike) operate on this form, matched case-insensitively.
func NormalizeName(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
