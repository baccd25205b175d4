// file: internals/features/notifications/model/notifikasi_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jenis notifikasi internal aplikasi.
type NotifikasiType string

const (
	NotifTransaksiApproved NotifikasiType = "transaksi_approved"
	NotifTransaksiRejected NotifikasiType = "transaksi_rejected"
	NotifTransaksiUnlocked NotifikasiType = "transaksi_unlocked"
	NotifPengumuman        NotifikasiType = "pengumuman"
)

type NotifikasiModel struct {
	NotifikasiID uuid.UUID `json:"notifikasi_id" gorm:"column:notifikasi_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	NotifikasiUserID uuid.UUID      `json:"notifikasi_user_id" gorm:"column:notifikasi_user_id;type:uuid;not null;index"`
	NotifikasiType   NotifikasiType `json:"notifikasi_type" gorm:"column:notifikasi_type;type:varchar(30);not null"`

	NotifikasiTitle string `json:"notifikasi_title" gorm:"column:notifikasi_title;type:varchar(120);not null"`
	NotifikasiBody  string `json:"notifikasi_body" gorm:"column:notifikasi_body;type:text"`

	// Payload bebas per jenis (mis. kas_transaksi_id, fund, nominal)
	NotifikasiPayload datatypes.JSON `json:"notifikasi_payload,omitempty" gorm:"column:notifikasi_payload;type:jsonb"`

	NotifikasiReadAt *time.Time `json:"notifikasi_read_at,omitempty" gorm:"column:notifikasi_read_at;type:timestamptz"`

	NotifikasiCreatedAt time.Time `json:"notifikasi_created_at" gorm:"column:notifikasi_created_at;type:timestamptz;not null;default:now()"`
}

func (NotifikasiModel) TableName() string { return "notifikasi" }

func (n *NotifikasiModel) BeforeCreate(tx *gorm.DB) error {
	if n.NotifikasiCreatedAt.IsZero() {
		n.NotifikasiCreatedAt = time.Now().UTC()
	}
	return nil
}
