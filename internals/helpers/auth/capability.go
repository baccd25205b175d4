package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"lingkunganku_backend/internals/constants"
)

// GetUserRole mengambil role dari locals (diisi oleh auth middleware).
func GetUserRole(c *fiber.Ctx) (string, bool) {
	role, ok := c.Locals("userRole").(string)
	return role, ok
}

// GetUserID mengambil user_id dari locals (diisi oleh auth middleware).
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user_id tidak ditemukan di context")
	}
	return uuid.Parse(raw)
}

// HasCapability mengecek capability actor saat ini.
// Semua guard operation memakai ini, bukan daftar role inline.
func HasCapability(c *fiber.Ctx, cap constants.Capability) bool {
	role, ok := GetUserRole(c)
	if !ok {
		return false
	}
	return constants.RoleHasCapability(role, cap)
}

func IsSuperUser(c *fiber.Ctx) bool {
	role, ok := GetUserRole(c)
	return ok && role == constants.RoleSuperUser
}
