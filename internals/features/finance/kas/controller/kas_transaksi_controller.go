// file: internals/features/finance/kas/controller/kas_transaksi_controller.go
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
	dto "lingkunganku_backend/internals/features/finance/kas/dto"
	model "lingkunganku_backend/internals/features/finance/kas/model"
	service "lingkunganku_backend/internals/features/finance/kas/service"
	notifModel "lingkunganku_backend/internals/features/notifications/model"
	notifService "lingkunganku_backend/internals/features/notifications/service"
	helper "lingkunganku_backend/internals/helpers"
	helperAuth "lingkunganku_backend/internals/helpers/auth"
)

type KasTransaksiController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewKasTransaksiController(db *gorm.DB) *KasTransaksiController {
	return &KasTransaksiController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Catat transaksi baru ==========
// Transfer antar kas (kategori transfer_dana_mandiri) otomatis menulis
// transaksi cermin di Kas IKATA dalam satu transaksi DB.
func (ctl *KasTransaksiController) Create(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapManageTransaction) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorBendahara("transaksi kas"))
	}

	var req dto.CreateKasTransaksiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var createdBy *uuid.UUID
	if actorID, err := helperAuth.GetUserID(c); err == nil {
		createdBy = &actorID
	}

	t, err := req.ToModel(createdBy)
	if err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if service.IsTransfer(t) {
		err = service.CreateWithMirror(ctl.DB, t)
	} else {
		err = ctl.DB.Create(t).Error
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Transaksi tercatat", dto.FromKasModel(t))
}

// ========== Saldo awal (sekali per kas) ==========
// Keunikan dijaga partial unique index di DB, bukan check-then-create:
// insert kedua langsung gagal di constraint.
func (ctl *KasTransaksiController) CreateSaldoAwal(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapManageTransaction) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorBendahara("saldo awal kas"))
	}

	var req dto.SaldoAwalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var createdBy *uuid.UUID
	if actorID, err := helperAuth.GetUserID(c); err == nil {
		createdBy = &actorID
	}

	t, err := req.ToModel(createdBy)
	if err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctl.DB.Create(t).Error; err != nil {
		if strings.Contains(err.Error(), "uq_kas_saldo_awal") {
			return helper.Error(c, fiber.StatusConflict, "Saldo awal kas ini sudah pernah dicatat")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Saldo awal tercatat", dto.FromKasModel(t))
}

// ========== Ubah transaksi ==========
// Edit atas transaksi approved/rejected otomatis kembali ke pending.
func (ctl *KasTransaksiController) Update(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapManageTransaction) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorBendahara("transaksi kas"))
	}
	role, _ := helperAuth.GetUserRole(c)

	t, err := ctl.findAlive(c)
	if err != nil {
		return err
	}
	if t.KasTransaksiIsInitial && !helperAuth.IsSuperUser(c) {
		return helper.Error(c, fiber.StatusConflict, "Saldo awal tidak bisa diubah")
	}
	if err := service.CanEdit(t, role); err != nil {
		return helper.Error(c, fiber.StatusConflict, err.Error())
	}

	var req dto.UpdateKasTransaksiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// cabang cermin diputuskan dari state SEBELUM edit: sumber transfer
	// tidak boleh lepas dari cerminnya lewat ganti kategori
	before := *t
	if err := req.ApplyTo(t); err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := service.CheckTransferEdit(&before, t); err != nil {
		return helper.Error(c, fiber.StatusConflict, err.Error())
	}

	service.ApplyEditTransition(t)

	if service.IsTransfer(&before) {
		err = service.SaveWithMirror(ctl.DB, t)
	} else {
		err = ctl.DB.Save(t).Error
	}
	if err != nil {
		if errors.Is(err, service.ErrMirrorHilang) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Transaksi diperbarui", dto.FromKasModel(t))
}

// ========== Hapus transaksi (hanya pending) ==========
func (ctl *KasTransaksiController) Delete(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapManageTransaction) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorBendahara("transaksi kas"))
	}
	role, _ := helperAuth.GetUserRole(c)

	t, err := ctl.findAlive(c)
	if err != nil {
		return err
	}
	if t.KasTransaksiIsInitial {
		return helper.Error(c, fiber.StatusConflict, "Saldo awal tidak bisa dihapus")
	}
	if err := service.CanDelete(t, role); err != nil {
		return helper.Error(c, fiber.StatusConflict, err.Error())
	}

	if service.IsTransfer(t) {
		err = service.DeleteWithMirror(ctl.DB, t)
	} else {
		err = ctl.DB.Model(&model.KasTransaksiModel{}).
			Where("kas_transaksi_id = ?", t.KasTransaksiID).
			Update("kas_transaksi_deleted_at", gorm.Expr("NOW()")).Error
	}
	if err != nil {
		if errors.Is(err, service.ErrMirrorHilang) {
			return helper.Error(c, fiber.StatusConflict, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ========== Daftar transaksi per kas ==========
func (ctl *KasTransaksiController) List(c *fiber.Ctx) error {
	fund := model.KasFund(strings.TrimSpace(c.Query("fund")))
	if !model.ValidKasFund(fund) {
		return helper.Error(c, fiber.StatusBadRequest, "fund invalid")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := model.ScopeAlive(ctl.DB.Model(&model.KasTransaksiModel{})).
		Where("kas_transaksi_fund = ?", fund)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("kas_transaksi_approval_status = ?", status)
	}
	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		q = q.Where("kas_transaksi_date >= ?", from)
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		q = q.Where("kas_transaksi_date <= ?", to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.KasTransaksiModel
	if err := q.Order("kas_transaksi_date DESC, kas_transaksi_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.KasTransaksiResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromKasModel(&rows[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      items,
		"pagination": helper.BuildPagination(total, paging, len(rows)),
	})
}

// ========== Persetujuan ==========
func (ctl *KasTransaksiController) Approve(c *fiber.Ctx) error {
	return ctl.applyApproval(c, service.Approve, notifModel.NotifTransaksiApproved, "Transaksi disetujui")
}

func (ctl *KasTransaksiController) Reject(c *fiber.Ctx) error {
	return ctl.applyApproval(c, service.Reject, notifModel.NotifTransaksiRejected, "Transaksi ditolak")
}

func (ctl *KasTransaksiController) Unlock(c *fiber.Ctx) error {
	return ctl.applyApproval(c, service.Unlock, notifModel.NotifTransaksiUnlocked, "Transaksi dibuka kembali")
}

func (ctl *KasTransaksiController) applyApproval(
	c *fiber.Ctx,
	transition func(*model.KasTransaksiModel, string) error,
	notifType notifModel.NotifikasiType,
	message string,
) error {
	role, ok := helperAuth.GetUserRole(c)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Role tidak ditemukan di context")
	}

	t, err := ctl.findAlive(c)
	if err != nil {
		return err
	}

	if err := transition(t, role); err != nil {
		if errors.Is(err, service.ErrTidakBerwenang) {
			return helper.Error(c, fiber.StatusForbidden, err.Error())
		}
		return helper.Error(c, fiber.StatusConflict, err.Error())
	}

	if err := ctl.DB.Save(t).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// pencatat transaksi diberi tahu hasil keputusan
	notifService.NotifyBestEffort(ctl.DB, t.KasTransaksiCreatedBy, notifType, message,
		"Transaksi "+string(t.KasTransaksiFund)+" tanggal "+t.KasTransaksiDate.Format("2006-01-02"),
		fiber.Map{
			"kas_transaksi_id": t.KasTransaksiID,
			"fund":             t.KasTransaksiFund,
			"status":           t.KasTransaksiApprovalStatus,
		})

	return helper.Success(c, message, dto.FromKasModel(t))
}

// ========== Daftar kategori sebuah kas ==========
func (ctl *KasTransaksiController) ListCategories(c *fiber.Ctx) error {
	fund := model.KasFund(strings.TrimSpace(c.Query("fund")))
	if !model.ValidKasFund(fund) {
		return helper.Error(c, fiber.StatusBadRequest, "fund invalid")
	}

	cats := model.Categories(fund)
	items := make([]fiber.Map, 0, len(cats))
	for _, cat := range cats {
		items = append(items, fiber.Map{
			"category":  cat,
			"is_inflow": model.CategoryIsInflow(fund, cat),
		})
	}
	return helper.Success(c, "OK", fiber.Map{"fund": fund, "items": items})
}

// ========== Rekap kas (laporan) ==========
func (ctl *KasTransaksiController) Summary(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapViewReports) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPengurus("laporan kas"))
	}

	fund := model.KasFund(strings.TrimSpace(c.Query("fund")))
	if !model.ValidKasFund(fund) {
		return helper.Error(c, fiber.StatusBadRequest, "fund invalid")
	}

	var from, to *time.Time
	if t, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		from = &t
	}
	if t, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		to = &t
	}

	summary, err := service.ComputeSummary(ctl.DB, fund, from, to)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", summary)
}

// findAlive memuat transaksi hidup dari path param; error response sudah
// ditulis ke context kalau gagal.
func (ctl *KasTransaksiController) findAlive(c *fiber.Ctx) (*model.KasTransaksiModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "kas_transaksi_id invalid")
	}

	var t model.KasTransaksiModel
	if err := model.ScopeAlive(ctl.DB).
		Where("kas_transaksi_id = ?", id).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Transaksi tidak ditemukan")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return &t, nil
}
