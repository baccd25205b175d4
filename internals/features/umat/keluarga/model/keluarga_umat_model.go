// file: internals/features/umat/keluarga/model/keluarga_umat_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enum status kepala keluarga.
// Umat tidak pernah dihapus permanen; perpindahan/kematian hanya mengubah status.
type KeluargaUmatStatus string

const (
	KeluargaUmatStatusAktif     KeluargaUmatStatus = "aktif"
	KeluargaUmatStatusPindah    KeluargaUmatStatus = "pindah"
	KeluargaUmatStatusMeninggal KeluargaUmatStatus = "meninggal"
)

func ValidKeluargaUmatStatus(s KeluargaUmatStatus) bool {
	switch s {
	case KeluargaUmatStatusAktif, KeluargaUmatStatusPindah, KeluargaUmatStatusMeninggal:
		return true
	}
	return false
}

type KeluargaUmatModel struct {
	KeluargaUmatID uuid.UUID `json:"keluarga_umat_id" gorm:"column:keluarga_umat_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	KeluargaUmatNamaKepala string  `json:"keluarga_umat_nama_kepala" gorm:"column:keluarga_umat_nama_kepala;type:text;not null"`
	KeluargaUmatAlamat     string  `json:"keluarga_umat_alamat" gorm:"column:keluarga_umat_alamat;type:text;not null"`
	KeluargaUmatNoTelp     *string `json:"keluarga_umat_no_telp,omitempty" gorm:"column:keluarga_umat_no_telp;type:varchar(20)"`

	KeluargaUmatStatus        KeluargaUmatStatus `json:"keluarga_umat_status" gorm:"column:keluarga_umat_status;type:varchar(12);not null;default:'aktif';index"`
	KeluargaUmatTanggalKeluar *time.Time         `json:"keluarga_umat_tanggal_keluar,omitempty" gorm:"column:keluarga_umat_tanggal_keluar;type:date"`

	KeluargaUmatCreatedAt time.Time  `json:"keluarga_umat_created_at" gorm:"column:keluarga_umat_created_at;type:timestamptz;not null;default:now()"`
	KeluargaUmatUpdatedAt time.Time  `json:"keluarga_umat_updated_at" gorm:"column:keluarga_umat_updated_at;type:timestamptz;not null;default:now()"`
	KeluargaUmatDeletedAt *time.Time `json:"keluarga_umat_deleted_at,omitempty" gorm:"column:keluarga_umat_deleted_at;type:timestamptz"`
}

func (KeluargaUmatModel) TableName() string { return "keluarga_umat" }

/* =========================
   Hooks: refresh updated_at
   ========================= */

func (k *KeluargaUmatModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	k.KeluargaUmatCreatedAt = now
	k.KeluargaUmatUpdatedAt = now
	return nil
}

func (k *KeluargaUmatModel) BeforeUpdate(tx *gorm.DB) error {
	k.KeluargaUmatUpdatedAt = time.Now().UTC()
	return nil
}

// ScopeAlive hanya mengambil baris yang belum soft-deleted.
func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("keluarga_umat_deleted_at IS NULL")
}

// ScopeAktif hanya kepala keluarga berstatus aktif.
func ScopeAktif(db *gorm.DB) *gorm.DB {
	return ScopeAlive(db).Where("keluarga_umat_status = ?", KeluargaUmatStatusAktif)
}
