package constants

import "fmt"

// =======================
// Roles
// =======================
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleCustomer = "customer"
)

// RegionAll is the sentinel region for classes visible to every member
// regardless of their home region.
const RegionAll = "all"

// Role error message templates
const (
	ErrOnlyStaffCanAccess    = "❌ Only manager or admin may access %s."
	ErrOnlyAdminsCanAccess   = "❌ Only admin may access %s."
	ErrOnlyCustomerCanAccess = "❌ Only customer accounts may access %s."
)

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorCustomer(feature string) string {
	return fmt.Sprintf(ErrOnlyCustomerCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	StaffRoles = []string{
		RoleManager,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	CustomerOnly = []string{
		RoleCustomer,
	}
)
