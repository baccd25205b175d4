// file: internals/features/notifications/service/notifikasi_service.go
package service

import (
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "lingkunganku_backend/internals/features/notifications/model"
)

// Notify menulis satu notifikasi untuk user tujuan. Payload di-serialize
// ke jsonb; payload nil sah (notifikasi teks saja).
func Notify(db *gorm.DB, userID uuid.UUID, notifType model.NotifikasiType, title, body string, payload any) error {
	n := &model.NotifikasiModel{
		NotifikasiUserID: userID,
		NotifikasiType:   notifType,
		NotifikasiTitle:  title,
		NotifikasiBody:   body,
	}
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			return err
		}
		n.NotifikasiPayload = datatypes.JSON(raw)
	}
	return db.Create(n).Error
}

// NotifyBestEffort: notifikasi bukan bagian dari invariant transaksi,
// jadi kegagalannya cukup dicatat, tidak menggagalkan operasi utama.
func NotifyBestEffort(db *gorm.DB, userID *uuid.UUID, notifType model.NotifikasiType, title, body string, payload any) {
	if userID == nil || *userID == uuid.Nil {
		return
	}
	if err := Notify(db, *userID, notifType, title, body, payload); err != nil {
		log.Printf("[WARN] gagal menulis notifikasi %s untuk %s: %v", notifType, userID, err)
	}
}

// MarkRead menandai satu notifikasi milik user sebagai sudah dibaca.
func MarkRead(db *gorm.DB, userID, notifID uuid.UUID) error {
	now := time.Now().UTC()
	res := db.Model(&model.NotifikasiModel{}).
		Where("notifikasi_id = ? AND notifikasi_user_id = ?", notifID, userID).
		Update("notifikasi_read_at", now)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllRead menandai semua notifikasi user yang belum dibaca.
func MarkAllRead(db *gorm.DB, userID uuid.UUID) (int64, error) {
	res := db.Model(&model.NotifikasiModel{}).
		Where("notifikasi_user_id = ? AND notifikasi_read_at IS NULL", userID).
		Update("notifikasi_read_at", time.Now().UTC())
	return res.RowsAffected, res.Error
}
