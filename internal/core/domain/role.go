package domain

// Role is the closed set of roles a user can hold across the whole system.
// Unlike per-tenant membership roles, a role is a property of the user and
// applies to every request they make.
type Role string

const (
	// RoleSuperAdmin can read and administer every agency.
	RoleSuperAdmin Role = "SUPER_ADMIN"
	// RoleGeneralAccountant can read every agency and review daily reports
	// and operations, but cannot administer agencies or users.
	RoleGeneralAccountant Role = "GENERAL_ACCOUNTANT"
	// RoleAgencyStaff can only see and mutate records of their home agency.
	RoleAgencyStaff Role = "AGENCY_STAFF"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleGeneralAccountant, RoleAgencyStaff:
		return true
	}
	return false
}

// Scope is the set of agencies a role permits reading.
type Scope string

const (
	// ScopeOwn restricts reads to the caller's home agency.
	ScopeOwn Scope = "OWN"
	// ScopeAll permits reads across every agency.
	ScopeAll Scope = "ALL"
)

// ReadScope returns the tenant-visibility scope the role carries.
// GeneralAccountant's ScopeAll is read/review scope only; it does not grant
// tenant-administration rights (see policy.Engine.Authorize).
func (r Role) ReadScope() Scope {
	if r == RoleAgencyStaff {
		return ScopeOwn
	}
	return ScopeAll
}

// Caller is the authenticated identity a request acts as. It is derived from
// the user record at authentication time and is immutable for the lifetime of
// the request.
type Caller struct {
	UserID   string `json:"userID"`
	Role     Role   `json:"role"`
	AgencyID string `json:"agencyID"` // home agency
}
