package validators

import "strings"

// NormalizeEmail is applied before any lookup or persistence so that
// uniqueness holds regardless of case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
