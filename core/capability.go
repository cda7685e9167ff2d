package core

// Capability is the access tag attached to a route at registration time.
// Authorization is declared next to the route itself, so there is no
// separate path table that can drift out of sync with the page set.
type Capability int

const (
	// CapPublic routes are reachable without a session.
	CapPublic Capability = iota
	// CapAuthenticated routes require any valid session.
	CapAuthenticated
	// CapOrganization routes require the organization or admin role.
	CapOrganization
	// CapAdmin routes require the admin role.
	CapAdmin
)

func (c Capability) String() string {
	switch c {
	case CapPublic:
		return "public"
	case CapAuthenticated:
		return "authenticated"
	case CapOrganization:
		return "organization"
	case CapAdmin:
		return "admin"
	}
	return "unknown"
}

// Allows reports whether a user with the given role satisfies the
// capability. The role is always the one resolved from the credential
// store, never a client-supplied value.
func (c Capability) Allows(role Role) bool {
	switch c {
	case CapPublic:
		return true
	case CapAuthenticated:
		return role.Valid()
	case CapOrganization:
		return role == RoleOrganization || role == RoleAdmin
	case CapAdmin:
		return role == RoleAdmin
	}
	return false
}
