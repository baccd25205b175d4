// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "lingkunganku_backend/internals/features/users/user/model"
	helper "lingkunganku_backend/internals/helpers"
)

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"` // email atau user_name
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	input.Identifier = strings.TrimSpace(input.Identifier)
	if input.Identifier == "" || input.Password == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Email/username dan password wajib diisi")
	}

	var user userModel.UserModel
	err := db.Where("email = ? OR user_name = ?", strings.ToLower(input.Identifier), input.Identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	access, err := IssueAccessToken(&user)
	if err != nil {
		log.Printf("[AUTH] gagal issue access token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := IssueRefreshToken(db, user.ID)
	if err != nil {
		log.Printf("[AUTH] gagal issue refresh token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}

	setRefreshCookie(c, refresh)

	return helper.Success(c, "Login berhasil", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

// ========================== REFRESH ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token tidak ada")
	}

	userID, err := ValidateRefreshToken(db, refreshCookie)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "User not found")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	// ROTATE: hapus token lama, terbitkan yang baru
	if err := RevokeRefreshToken(db, refreshCookie); err != nil {
		log.Printf("[refresh] delete old hash failed: %v", err)
	}

	access, err := IssueAccessToken(&user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	refresh, err := IssueRefreshToken(db, user.ID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	setRefreshCookie(c, refresh)

	return helper.Success(c, "Token diperbarui", fiber.Map{"access_token": access})
}

// ========================== LOGOUT ==========================
// POST /api/auth/logout
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	// blacklist access token yang sedang dipakai
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
		if err := BlacklistAccessToken(db, fields[1], time.Now().Add(accessTokenTTL)); err != nil {
			log.Printf("[AUTH] gagal blacklist token: %v", err)
		}
	}

	// revoke refresh token
	if refreshCookie := c.Cookies("refresh_token"); refreshCookie != "" {
		if err := RevokeRefreshToken(db, refreshCookie); err != nil {
			log.Printf("[AUTH] gagal revoke refresh token: %v", err)
		}
	}
	clearRefreshCookie(c)

	return helper.Success(c, "Logout berhasil", nil)
}

/* ======== Cookie helpers ======== */

func setRefreshCookie(c *fiber.Ctx, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  time.Now().Add(refreshTokenTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}
