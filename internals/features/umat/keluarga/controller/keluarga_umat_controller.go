// file: internals/features/umat/keluarga/controller/keluarga_umat_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	dto "lingkunganku_backend/internals/features/umat/keluarga/dto"
	model "lingkunganku_backend/internals/features/umat/keluarga/model"
	helper "lingkunganku_backend/internals/helpers"
	helperAuth "lingkunganku_backend/internals/helpers/auth"
)

type KeluargaUmatController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewKeluargaUmatController(db *gorm.DB) *KeluargaUmatController {
	return &KeluargaUmatController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create (pendaftaran) ==========
func (ctl *KeluargaUmatController) Create(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapManageMembers) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPengurus("data umat"))
	}

	var req dto.CreateKeluargaUmatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	k := req.ToModel()
	if err := ctl.DB.Create(k).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kepala keluarga terdaftar", dto.FromModel(k))
}

// ========== Update data dasar ==========
func (ctl *KeluargaUmatController) Update(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapManageMembers) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPengurus("data umat"))
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "keluarga_umat_id invalid")
	}

	var k model.KeluargaUmatModel
	if err := model.ScopeAlive(ctl.DB).First(&k, "keluarga_umat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateKeluargaUmatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	req.ApplyTo(&k)
	if err := ctl.DB.Save(&k).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Data keluarga diperbarui", dto.FromModel(&k))
}

// ========== Mutasi status (pindah/meninggal/aktif) ==========
func (ctl *KeluargaUmatController) MutasiStatus(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapManageMembers) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPengurus("data umat"))
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "keluarga_umat_id invalid")
	}

	var req dto.MutasiStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var k model.KeluargaUmatModel
	if err := model.ScopeAlive(ctl.DB).First(&k, "keluarga_umat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	k.KeluargaUmatStatus = model.KeluargaUmatStatus(req.Status)
	switch k.KeluargaUmatStatus {
	case model.KeluargaUmatStatusAktif:
		k.KeluargaUmatTanggalKeluar = nil
	default:
		// pindah/meninggal mencatat tanggal keluar
		if req.TanggalKeluar != nil && *req.TanggalKeluar != "" {
			t, err := time.Parse("2006-01-02", *req.TanggalKeluar)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "tanggal_keluar invalid")
			}
			k.KeluargaUmatTanggalKeluar = &t
		} else {
			now := time.Now()
			k.KeluargaUmatTanggalKeluar = &now
		}
	}

	if err := ctl.DB.Save(&k).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Status keluarga diperbarui", dto.FromModel(&k))
}

// ========== Get by ID ==========
func (ctl *KeluargaUmatController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "keluarga_umat_id invalid")
	}

	var k model.KeluargaUmatModel
	if err := model.ScopeAlive(ctl.DB).First(&k, "keluarga_umat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.FromModel(&k))
}

// ========== List (paginated, filter status & pencarian nama) ==========
func (ctl *KeluargaUmatController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := model.ScopeAlive(ctl.DB.Model(&model.KeluargaUmatModel{}))

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !model.ValidKeluargaUmatStatus(model.KeluargaUmatStatus(status)) {
			return helper.Error(c, fiber.StatusBadRequest, "status invalid")
		}
		q = q.Where("keluarga_umat_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("keluarga_umat_nama_kepala ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.KeluargaUmatModel
	if err := q.Order("keluarga_umat_nama_kepala ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      dto.FromModels(rows),
		"pagination": helper.BuildPagination(total, paging, len(rows)),
	})
}
