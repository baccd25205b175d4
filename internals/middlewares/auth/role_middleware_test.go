package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"lingkunganku_backend/internals/constants"
)

// app mini: middleware pertama menanam userRole ke locals (meniru
// AuthMiddleware), lalu guard yang diuji, lalu handler 200.
func newGuardedApp(role string, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/x",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals("userRole", role)
			}
			return c.Next()
		},
		guard,
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) },
	)
	return app
}

func TestOnlyRoles(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		allowed  []string
		wantCode int
	}{
		{"pengurus lolos gate pengurus", constants.RoleSekretaris, constants.PengurusRoles, fiber.StatusOK},
		{"umat ditolak gate pengurus", constants.RoleUmat, constants.PengurusRoles, fiber.StatusForbidden},
		{"role asing ditolak gate all-roles", "hacker", constants.AllRoles, fiber.StatusForbidden},
		{"umat lolos gate all-roles", constants.RoleUmat, constants.AllRoles, fiber.StatusOK},
		{"tanpa role = unauthorized", "", constants.PengurusRoles, fiber.StatusUnauthorized},
		{"hanya super user", constants.RoleKetua, constants.SuperUserOnly, fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGuardedApp(tt.role, OnlyRoles("akses ditolak", tt.allowed...))
			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			if err != nil {
				t.Fatalf("app.Test = %v", err)
			}
			if resp.StatusCode != tt.wantCode {
				t.Errorf("status = %d, mau %d", resp.StatusCode, tt.wantCode)
			}
		})
	}
}

func TestOnlyCapability(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		cap      constants.Capability
		wantCode int
	}{
		{"ketua boleh menyetujui", constants.RoleKetua, constants.CapApproveTransaction, fiber.StatusOK},
		{"bendahara tidak boleh menyetujui", constants.RoleBendahara, constants.CapApproveTransaction, fiber.StatusForbidden},
		{"bendahara boleh kelola transaksi", constants.RoleBendahara, constants.CapManageTransaction, fiber.StatusOK},
		{"unlock hanya super user", constants.RoleKetua, constants.CapUnlockTransaction, fiber.StatusForbidden},
		{"super user boleh unlock", constants.RoleSuperUser, constants.CapUnlockTransaction, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGuardedApp(tt.role, OnlyCapability("akses ditolak", tt.cap))
			resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
			if err != nil {
				t.Fatalf("app.Test = %v", err)
			}
			if resp.StatusCode != tt.wantCode {
				t.Errorf("status = %d, mau %d", resp.StatusCode, tt.wantCode)
			}
		})
	}
}
