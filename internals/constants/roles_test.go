package constants

import "testing"

func TestRoleHasCapability_ManageDues(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleBendahara, true},
		{RoleWakilBendahara, true},
		{RoleSuperUser, true},
		{RoleKetua, false},
		{RoleSekretaris, false},
		{RoleUmat, false},
		{"", false},
	}
	for _, tt := range tests {
		got := RoleHasCapability(tt.role, CapManageDues)
		if got != tt.want {
			t.Errorf("RoleHasCapability(%q, CapManageDues) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRoleHasCapability_ApproveTransaction(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleKetua, true},
		{RoleWakilKetua, true},
		{RoleSuperUser, true},
		{RoleBendahara, false},
		{RoleUmat, false},
	}
	for _, tt := range tests {
		got := RoleHasCapability(tt.role, CapApproveTransaction)
		if got != tt.want {
			t.Errorf("RoleHasCapability(%q, CapApproveTransaction) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRoleHasCapability_UnlockOnlySuperUser(t *testing.T) {
	for _, role := range AllRoles {
		got := RoleHasCapability(role, CapUnlockTransaction)
		want := role == RoleSuperUser
		if got != want {
			t.Errorf("RoleHasCapability(%q, CapUnlockTransaction) = %v, want %v", role, got, want)
		}
	}
}

func TestRolesFor_UnknownCapability(t *testing.T) {
	if got := RolesFor(Capability("tidak_ada")); len(got) != 0 {
		t.Errorf("RolesFor(unknown) = %v, want empty", got)
	}
}
