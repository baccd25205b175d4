// file: internals/features/finance/kas/model/kas_transaksi_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enum kas (fund).
type KasFund string

const (
	KasFundLingkungan KasFund = "lingkungan"
	KasFundIkata      KasFund = "ikata"
)

func ValidKasFund(f KasFund) bool {
	return f == KasFundLingkungan || f == KasFundIkata
}

// Enum status persetujuan transaksi.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Penanda note untuk saldo awal (sentinel, lihat partial unique index).
const NoteSaldoAwal = "SALDO AWAL"

/*
   Satu baris buku kas. Debit/kredit saling eksklusif: tepat satu yang
   bukan nol, ditentukan arah kategori (pemasukan vs pengeluaran).

   - approved atau locked → immutable kecuali super user.
   - saldo awal: kategori lain_lain + note SALDO AWAL + is_initial=true,
     dijaga maksimal satu per kas lewat partial unique index di DB
     (bukan check-then-create di aplikasi).
   - mirror_id: tautan dua arah untuk transaksi transfer antar kas.
*/
type KasTransaksiModel struct {
	KasTransaksiID uuid.UUID `json:"kas_transaksi_id" gorm:"column:kas_transaksi_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	KasTransaksiFund    KasFund   `json:"kas_transaksi_fund" gorm:"column:kas_transaksi_fund;type:varchar(12);not null;index;uniqueIndex:uq_kas_saldo_awal,where:kas_transaksi_is_initial"`
	KasTransaksiDate    time.Time `json:"kas_transaksi_date" gorm:"column:kas_transaksi_date;type:date;not null;index"`
	KasTransaksiDebitIDR  int64   `json:"kas_transaksi_debit_idr" gorm:"column:kas_transaksi_debit_idr;type:bigint;not null;default:0"`
	KasTransaksiCreditIDR int64   `json:"kas_transaksi_credit_idr" gorm:"column:kas_transaksi_credit_idr;type:bigint;not null;default:0"`

	KasTransaksiCategory KasCategory `json:"kas_transaksi_category" gorm:"column:kas_transaksi_category;type:varchar(30);not null"`
	KasTransaksiNote     string      `json:"kas_transaksi_note" gorm:"column:kas_transaksi_note;type:text"`

	// Atribusi sumbangan ke kepala keluarga (opsional)
	KasTransaksiKeluargaID *uuid.UUID `json:"kas_transaksi_keluarga_id,omitempty" gorm:"column:kas_transaksi_keluarga_id;type:uuid"`

	KasTransaksiApprovalStatus ApprovalStatus `json:"kas_transaksi_approval_status" gorm:"column:kas_transaksi_approval_status;type:varchar(10);not null;default:'pending';index"`
	KasTransaksiLocked         bool           `json:"kas_transaksi_locked" gorm:"column:kas_transaksi_locked;not null;default:false"`

	// Saldo awal: maksimal satu per kas (partial unique index)
	KasTransaksiIsInitial bool `json:"kas_transaksi_is_initial" gorm:"column:kas_transaksi_is_initial;not null;default:false;uniqueIndex:uq_kas_saldo_awal,where:kas_transaksi_is_initial"`

	// Pasangan transaksi transfer di kas tujuan/asal
	KasTransaksiMirrorID *uuid.UUID `json:"kas_transaksi_mirror_id,omitempty" gorm:"column:kas_transaksi_mirror_id;type:uuid"`

	KasTransaksiCreatedBy *uuid.UUID `json:"kas_transaksi_created_by,omitempty" gorm:"column:kas_transaksi_created_by;type:uuid"`

	KasTransaksiCreatedAt time.Time  `json:"kas_transaksi_created_at" gorm:"column:kas_transaksi_created_at;type:timestamptz;not null;default:now()"`
	KasTransaksiUpdatedAt time.Time  `json:"kas_transaksi_updated_at" gorm:"column:kas_transaksi_updated_at;type:timestamptz;not null;default:now()"`
	KasTransaksiDeletedAt *time.Time `json:"kas_transaksi_deleted_at,omitempty" gorm:"column:kas_transaksi_deleted_at;type:timestamptz"`
}

func (KasTransaksiModel) TableName() string { return "kas_transaksi" }

func (t *KasTransaksiModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	t.KasTransaksiCreatedAt = now
	t.KasTransaksiUpdatedAt = now
	return nil
}

func (t *KasTransaksiModel) BeforeUpdate(tx *gorm.DB) error {
	t.KasTransaksiUpdatedAt = time.Now().UTC()
	return nil
}

// ScopeAlive hanya baris yang belum soft-deleted.
func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("kas_transaksi_deleted_at IS NULL")
}
