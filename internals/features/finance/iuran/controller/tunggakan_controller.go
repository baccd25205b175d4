// file: internals/features/finance/iuran/controller/tunggakan_controller.go
package controller

import (
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "lingkunganku_backend/internals/features/finance/iuran/dto"
	model "lingkunganku_backend/internals/features/finance/iuran/model"
	service "lingkunganku_backend/internals/features/finance/iuran/service"
	keluargaModel "lingkunganku_backend/internals/features/umat/keluarga/model"
	helper "lingkunganku_backend/internals/helpers"
)

type TunggakanController struct {
	DB *gorm.DB
}

func NewTunggakanController(db *gorm.DB) *TunggakanController {
	return &TunggakanController{DB: db}
}

// ========== Proyeksi live per (jenis, tahun) ==========
// Untuk tahun yang ditanya, projector live yang menang atas cache:
// data pembayaran terbaru selalu terbaca di sini.
func (ctl *TunggakanController) Live(c *fiber.Ctx) error {
	iuranType := model.IuranType(strings.TrimSpace(c.Query("type")))
	if !model.ValidIuranType(iuranType) {
		return helper.Error(c, fiber.StatusBadRequest, "type invalid")
	}
	year := resolveYear(c)

	setting, err := service.GetSetting(ctl.DB, iuranType, year)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var members []keluargaModel.KeluargaUmatModel
	if err := keluargaModel.ScopeAktif(ctl.DB).Find(&members).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var payments []model.IuranPaymentModel
	if err := ctl.DB.
		Where("iuran_payment_type = ? AND iuran_payment_year = ?", iuranType, year).
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	rows := service.ComputeArrears(setting, members, payments)

	// monitoring view: nominal terbesar duluan
	sort.Slice(rows, func(i, j int) bool { return rows[i].OwedIDR > rows[j].OwedIDR })

	return helper.Success(c, "OK", fiber.Map{
		"type":  iuranType,
		"year":  year,
		"items": rows,
	})
}

// ========== Ringkasan multi-tahun dari cache ==========
// Cache adalah index presisi-rendah hasil SetDues terakhir; bisa berbeda
// dari projector live kalau ada pembayaran baru setelah SetDues. Divergensi
// ini disengaja dan terdokumentasi, bukan untuk direkonsiliasi diam-diam.
func (ctl *TunggakanController) CacheSummary(c *fiber.Ctx) error {
	iuranType := model.IuranType(strings.TrimSpace(c.Query("type")))
	if !model.ValidIuranType(iuranType) {
		return helper.Error(c, fiber.StatusBadRequest, "type invalid")
	}

	var entries []model.TunggakanCacheModel
	if err := ctl.DB.
		Where("tunggakan_type = ? AND tunggakan_total_idr > 0", iuranType).
		Order("tunggakan_total_idr DESC").
		Find(&entries).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.TunggakanCacheResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.FromCacheModel(&entries[i]))
	}

	return helper.Success(c, "OK", fiber.Map{
		"type":  iuranType,
		"items": items,
	})
}
