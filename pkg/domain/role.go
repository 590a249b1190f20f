package domain

// Role identifies the caller's marketplace role as asserted by the auth
// token. Authorization beyond role (journey ownership, registration
// ownership) is checked per-resource in services.
type Role string

const (
	RoleCrew  Role = "crew"
	RoleOwner Role = "owner"
)

// IsValid checks if the role is one of the supported values.
func (r Role) IsValid() bool {
	return r == RoleCrew || r == RoleOwner
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}
