package core

import "testing"

// Requirement: access is derived from the resolved role only. Public pages
// allow everyone, authenticated pages any valid role, organization pages
// organization and admin, admin pages admin alone.
func TestCapabilityAllows(t *testing.T) {
	tests := []struct {
		capability Capability
		role       Role
		want       bool
	}{
		{CapPublic, "", true},
		{CapPublic, RoleUser, true},
		{CapPublic, RoleAdmin, true},

		{CapAuthenticated, "", false},
		{CapAuthenticated, "garbage", false},
		{CapAuthenticated, RoleUser, true},
		{CapAuthenticated, RoleOrganization, true},
		{CapAuthenticated, RoleAdmin, true},

		{CapOrganization, RoleUser, false},
		{CapOrganization, RoleOrganization, true},
		{CapOrganization, RoleAdmin, true},

		{CapAdmin, "", false},
		{CapAdmin, RoleUser, false},
		{CapAdmin, RoleOrganization, false},
		{CapAdmin, RoleAdmin, true},
	}

	for _, test := range tests {
		got := test.capability.Allows(test.role)
		if got != test.want {
			t.Errorf("%s.Allows(%q) = %v, want %v", test.capability, test.role, got, test.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleUser, RoleAdmin, RoleOrganization} {
		if !role.Valid() {
			t.Errorf("Valid(%q) = false, want true", role)
		}
	}
	for _, role := range []Role{"", "root", "Admin"} {
		if role.Valid() {
			t.Errorf("Valid(%q) = true, want false", role)
		}
	}
}
