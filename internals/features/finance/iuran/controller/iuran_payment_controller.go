// file: internals/features/finance/iuran/controller/iuran_payment_controller.go
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
	dto "lingkunganku_backend/internals/features/finance/iuran/dto"
	model "lingkunganku_backend/internals/features/finance/iuran/model"
	service "lingkunganku_backend/internals/features/finance/iuran/service"
	helper "lingkunganku_backend/internals/helpers"
	helperAuth "lingkunganku_backend/internals/helpers/auth"
)

type IuranPaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewIuranPaymentController(db *gorm.DB) *IuranPaymentController {
	return &IuranPaymentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Catat pembayaran (create-or-replace) ==========
func (ctl *IuranPaymentController) Record(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapRecordPayment) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorBendahara("pembayaran iuran"))
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	in := service.RecordPaymentInput{
		KeluargaID: req.KeluargaID,
		Type:       model.IuranType(req.Type),
		Year:       req.Year,
		AmountIDR:  req.AmountIDR,
		Status:     model.IuranPaymentStatus(req.Status),
		Months:     req.Months,
	}
	if req.Date != nil && *req.Date != "" {
		t, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "date invalid")
		}
		in.Date = t
	}
	if actorID, err := helperAuth.GetUserID(c); err == nil {
		in.ActorID = &actorID
	}

	saved, err := service.RecordPayment(ctl.DB, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBulanWajib), errors.Is(err, service.ErrBulanTidakValid):
			return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, service.ErrKeluargaTidakAda):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pembayaran tercatat", dto.FromPaymentModel(saved))
}

// ========== List pembayaran per (jenis, tahun) ==========
func (ctl *IuranPaymentController) List(c *fiber.Ctx) error {
	iuranType := model.IuranType(strings.TrimSpace(c.Query("type")))
	if !model.ValidIuranType(iuranType) {
		return helper.Error(c, fiber.StatusBadRequest, "type invalid")
	}
	year := resolveYear(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.IuranPaymentModel{}).
		Where("iuran_payment_type = ? AND iuran_payment_year = ?", iuranType, year)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.IuranPaymentModel
	if err := q.Order("iuran_payment_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.IuranPaymentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromPaymentModel(&rows[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, paging, len(rows)),
	})
}

// ========== Hapus pembayaran (hanya yang belum disetor) ==========
func (ctl *IuranPaymentController) Delete(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapRecordPayment) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorBendahara("pembayaran iuran"))
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "iuran_payment_id invalid")
	}

	if err := service.DeletePayment(ctl.DB, id); err != nil {
		switch {
		case errors.Is(err, service.ErrSudahDisetor):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ========== Tandai sudah disetor ke paroki ==========
func (ctl *IuranPaymentController) MarkSubmitted(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapRecordPayment) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorBendahara("pembayaran iuran"))
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "iuran_payment_id invalid")
	}

	if err := service.MarkSubmitted(ctl.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Pembayaran ditandai sudah disetor", nil)
}
