// file: internals/features/finance/iuran/controller/iuran_setting_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	dto "lingkunganku_backend/internals/features/finance/iuran/dto"
	model "lingkunganku_backend/internals/features/finance/iuran/model"
	service "lingkunganku_backend/internals/features/finance/iuran/service"
	helper "lingkunganku_backend/internals/helpers"
	helperAuth "lingkunganku_backend/internals/helpers/auth"
)

type IuranSettingController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewIuranSettingController(db *gorm.DB) *IuranSettingController {
	return &IuranSettingController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Set nominal iuran (upsert + rebuild cache) ==========
func (ctl *IuranSettingController) SetDues(c *fiber.Ctx) error {
	// guard duluan, sebelum baca apa pun
	if !helperAuth.HasCapability(c, constants.CapManageDues) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorBendahara("nominal iuran"))
	}

	var req dto.SetDuesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := service.SetDues(ctl.DB, model.IuranType(req.Type), req.Year, req.AmountIDR)
	if err != nil {
		if errors.Is(err, service.ErrNominalInvalid) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Nominal iuran tersimpan", dto.SetDuesResponse{
		Type:                req.Type,
		Year:                req.Year,
		AmountIDR:           req.AmountIDR,
		UpdatedArrearsCount: updated,
	})
}

// ========== Get setting (jenis, tahun) ==========
func (ctl *IuranSettingController) Get(c *fiber.Ctx) error {
	iuranType := model.IuranType(strings.TrimSpace(c.Query("type")))
	if !model.ValidIuranType(iuranType) {
		return helper.Error(c, fiber.StatusBadRequest, "type invalid")
	}
	year := resolveYear(c)

	setting, err := service.GetSetting(ctl.DB, iuranType, year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if setting == nil {
		return helper.Error(c, fiber.StatusNotFound, "Nominal iuran belum dikonfigurasi tahun itu")
	}

	return helper.Success(c, "OK", setting)
}

// resolveYear: tahun acuan selalu eksplisit lewat query; wall-clock hanya
// dipakai sebagai default DI SINI, di tepi — service/projector tidak pernah
// membaca jam sendiri.
func resolveYear(c *fiber.Ctx) int {
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		if y, err := strconv.Atoi(raw); err == nil && y >= 2000 && y <= 2100 {
			return y
		}
	}
	return time.Now().Year()
}
