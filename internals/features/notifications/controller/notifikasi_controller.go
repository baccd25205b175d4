// file: internals/features/notifications/controller/notifikasi_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	model "lingkunganku_backend/internals/features/notifications/model"
	service "lingkunganku_backend/internals/features/notifications/service"
	userModel "lingkunganku_backend/internals/features/users/user/model"
	helper "lingkunganku_backend/internals/helpers"
	helperAuth "lingkunganku_backend/internals/helpers/auth"
)

type NotifikasiController struct {
	DB *gorm.DB
}

func NewNotifikasiController(db *gorm.DB) *NotifikasiController {
	return &NotifikasiController{DB: db}
}

// ========== Inbox milik user yang sedang login ==========
func (ctl *NotifikasiController) List(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.NotifikasiModel{}).
		Where("notifikasi_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notifikasi_read_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.NotifikasiModel
	if err := q.Order("notifikasi_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      rows,
		"pagination": helper.BuildPagination(total, paging, len(rows)),
	})
}

// ========== Tandai sudah dibaca ==========
func (ctl *NotifikasiController) MarkRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	notifID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "notifikasi_id invalid")
	}

	if err := service.MarkRead(ctl.DB, userID, notifID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Notifikasi ditandai sudah dibaca", nil)
}

func (ctl *NotifikasiController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, err.Error())
	}
	n, err := service.MarkAllRead(ctl.DB, userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "OK", fiber.Map{"updated": n})
}

// ========== Pengumuman ke semua user aktif (pengurus) ==========
func (ctl *NotifikasiController) Broadcast(c *fiber.Ctx) error {
	if !helperAuth.HasCapability(c, constants.CapSendNotification) {
		return helper.Error(c, fiber.StatusForbidden, constants.RoleErrorPengurus("pengumuman"))
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Title) == "" {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "title wajib diisi")
	}

	var userIDs []uuid.UUID
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("is_active = TRUE").
		Pluck("id", &userIDs).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	sent := 0
	for _, id := range userIDs {
		if err := service.Notify(ctl.DB, id, model.NotifPengumuman, req.Title, req.Body, nil); err == nil {
			sent++
		}
	}

	return helper.Success(c, "Pengumuman terkirim", fiber.Map{"sent": sent})
}
