// file: internals/helpers/scope.go
package helper

import (
	"gorm.io/gorm"

	"fitzone_backend/internals/constants"
)

// Region visibility used to be re-implemented ad hoc at every listing query
// (classes, bookings, users) and the copies drifted apart. Every listing now
// goes through exactly one of the helpers below.

// RegionVisible reports whether a principal with (role, region) may see a
// record tagged recordRegion. The "all" sentinel is visible to everyone;
// admin sees every region unconditionally.
func RegionVisible(role, principalRegion, recordRegion string) bool {
	if role == constants.RoleAdmin {
		return true
	}
	if recordRegion == constants.RegionAll {
		return true
	}
	return recordRegion == principalRegion
}

// ScopeByRegion narrows a query to the rows a principal may list.
// column is the fully-qualified region column (e.g. "class_session_region").
// Collections that support the "all" sentinel get it included for non-admins.
func ScopeByRegion(q *gorm.DB, role, principalRegion, column string, withAllSentinel bool) *gorm.DB {
	if role == constants.RoleAdmin {
		return q
	}
	if withAllSentinel {
		return q.Where(column+" IN ?", []string{principalRegion, constants.RegionAll})
	}
	return q.Where(column+" = ?", principalRegion)
}
