// Package entity contains the core business objects of the project.
package entity

// Role represents the account type a user registers with.
type Role string

const (
	// RoleCustomer indicates a regular buyer account.
	RoleCustomer Role = "CUSTOMER"
	// RoleBusiness indicates a storefront business owner.
	RoleBusiness Role = "BUSINESS"
	// RoleStreetVendor indicates an itinerant vendor without a fixed storefront.
	RoleStreetVendor Role = "STREET_VENDOR"
	// RoleServiceProvider indicates a provider of services rather than goods.
	RoleServiceProvider Role = "SERVICE_PROVIDER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusiness, RoleStreetVendor, RoleServiceProvider:
		return true
	default:
		return false
	}
}

// OwnsBusiness reports whether accounts with this role own a Business record,
// created together with the user at registration time.
func (r Role) OwnsBusiness() bool {
	switch r {
	case RoleBusiness, RoleStreetVendor, RoleServiceProvider:
		return true
	default:
		return false
	}
}
