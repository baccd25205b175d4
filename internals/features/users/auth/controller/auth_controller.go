// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	authService "lingkunganku_backend/internals/features/users/auth/service"
	userModel "lingkunganku_backend/internals/features/users/user/model"
	helper "lingkunganku_backend/internals/helpers"
	helperAuth "lingkunganku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ctl *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ctl.DB, c)
}

func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ctl.DB, c)
}

func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctl.DB, c)
}

func (ctl *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ctl.DB, c)
}

// Register membuat akun baru. Hanya super user yang boleh membuat akun pengurus.
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapManageUsers) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorSuperUser("pendaftaran akun"))
	}

	var input struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request format")
	}

	hashed, err := authService.HashPassword(input.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(input.UserName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: input.Password, // divalidasi dulu, baru diganti hash
		Role:     input.Role,
	}
	if err := user.Validate(); err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	user.Password = hashed

	if err := ctl.DB.Create(&user).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate") {
			return helper.Error(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Akun berhasil dibuat", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

// Me mengembalikan profil user yang sedang login.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "DB error")
	}

	return helper.Success(c, "OK", user)
}
