package constants

import "fmt"

// ==========================
// ✅ Role Pengurus Lingkungan
// ==========================
const (
	RoleUmat            = "umat"
	RoleSekretaris      = "sekretaris"
	RoleWakilSekretaris = "wakil_sekretaris"
	RoleBendahara       = "bendahara"
	RoleWakilBendahara  = "wakil_bendahara"
	RoleKetua           = "ketua"
	RoleWakilKetua      = "wakil_ketua"
	RoleSuperUser       = "super_user"
)

// Template pesan error role
const (
	ErrOnlyBendaharaCanAccess = "❌ Hanya bendahara yang boleh mengakses fitur %s."
	ErrOnlyKetuaCanAccess     = "❌ Hanya ketua lingkungan yang boleh mengakses fitur %s."
	ErrOnlyPengurusCanAccess  = "❌ Hanya pengurus lingkungan yang boleh mengakses fitur %s."
	ErrOnlySuperUserCanAccess = "❌ Hanya super user yang boleh mengakses fitur %s."
)

func RoleErrorBendahara(feature string) string {
	return fmt.Sprintf(ErrOnlyBendaharaCanAccess, feature)
}

func RoleErrorKetua(feature string) string {
	return fmt.Sprintf(ErrOnlyKetuaCanAccess, feature)
}

func RoleErrorPengurus(feature string) string {
	return fmt.Sprintf(ErrOnlyPengurusCanAccess, feature)
}

func RoleErrorSuperUser(feature string) string {
	return fmt.Sprintf(ErrOnlySuperUserCanAccess, feature)
}

// ==========================
// ✅ Capability
// ==========================
// Daftar role yang diizinkan didefinisikan SEKALI di sini per capability,
// bukan diulang inline di tiap operation.
type Capability string

const (
	CapManageMembers      Capability = "manage_members"
	CapManageDues         Capability = "manage_dues"
	CapRecordPayment      Capability = "record_payment"
	CapManageTransaction  Capability = "manage_transaction"
	CapApproveTransaction Capability = "approve_transaction"
	CapUnlockTransaction  Capability = "unlock_transaction"
	CapViewReports        Capability = "view_reports"
	CapManageUsers        Capability = "manage_users"
	CapSendNotification   Capability = "send_notification"
)

var capabilityRoles = map[Capability][]string{
	CapManageMembers:      {RoleSekretaris, RoleWakilSekretaris, RoleSuperUser},
	CapManageDues:         {RoleBendahara, RoleWakilBendahara, RoleSuperUser},
	CapRecordPayment:      {RoleBendahara, RoleWakilBendahara, RoleSuperUser},
	CapManageTransaction:  {RoleBendahara, RoleWakilBendahara, RoleSuperUser},
	CapApproveTransaction: {RoleKetua, RoleWakilKetua, RoleSuperUser},
	CapUnlockTransaction:  {RoleSuperUser},
	CapViewReports:        {RoleSekretaris, RoleWakilSekretaris, RoleBendahara, RoleWakilBendahara, RoleKetua, RoleWakilKetua, RoleSuperUser},
	CapManageUsers:        {RoleSuperUser},
	CapSendNotification:   {RoleSekretaris, RoleWakilSekretaris, RoleKetua, RoleWakilKetua, RoleSuperUser},
}

// RolesFor mengembalikan daftar role untuk sebuah capability.
func RolesFor(cap Capability) []string {
	return capabilityRoles[cap]
}

// RoleHasCapability mengecek apakah role punya capability tertentu.
func RoleHasCapability(role string, cap Capability) bool {
	for _, r := range capabilityRoles[cap] {
		if r == role {
			return true
		}
	}
	return false
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUmat,
		RoleSekretaris,
		RoleWakilSekretaris,
		RoleBendahara,
		RoleWakilBendahara,
		RoleKetua,
		RoleWakilKetua,
		RoleSuperUser,
	}

	PengurusRoles = []string{
		RoleSekretaris,
		RoleWakilSekretaris,
		RoleBendahara,
		RoleWakilBendahara,
		RoleKetua,
		RoleWakilKetua,
		RoleSuperUser,
	}

	SuperUserOnly = []string{
		RoleSuperUser,
	}
)
