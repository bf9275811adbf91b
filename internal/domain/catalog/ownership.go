package catalog

import "github.com/BruksfildServices01/catalog-api/internal/models"

// CanAccess reports whether principal owns target. Every read or delete of a
// single user goes through it.
func CanAccess(principal *models.Client, target *models.User) bool {
	if principal == nil || target == nil {
		return false
	}
	return target.ClientID == principal.ID
}
