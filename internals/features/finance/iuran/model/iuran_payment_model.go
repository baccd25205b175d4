// file: internals/features/finance/iuran/model/iuran_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Enum status pembayaran iuran.
type IuranPaymentStatus string

const (
	IuranPaymentStatusLunas      IuranPaymentStatus = "lunas"
	IuranPaymentStatusSebagian   IuranPaymentStatus = "sebagian"
	IuranPaymentStatusBelumLunas IuranPaymentStatus = "belum_lunas"
)

func ValidIuranPaymentStatus(s IuranPaymentStatus) bool {
	switch s {
	case IuranPaymentStatusLunas, IuranPaymentStatusSebagian, IuranPaymentStatusBelumLunas:
		return true
	}
	return false
}

/*
   Maksimal satu record per (keluarga, jenis, tahun).
   - iuran_payment_total_due_idr: snapshot nominal setting saat record dibuat,
     boleh berbeda dengan setting terkini.
   - iuran_payment_months: bulan tercakup (1..12), hanya bermakna untuk status
     'sebagian' (non-empty), kosong untuk status lain.
   - iuran_payment_submitted: sudah disetor ke paroki/keuskupan → tidak boleh dihapus.
*/
type IuranPaymentModel struct {
	IuranPaymentID uuid.UUID `json:"iuran_payment_id" gorm:"column:iuran_payment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	IuranPaymentKeluargaID uuid.UUID `json:"iuran_payment_keluarga_id" gorm:"column:iuran_payment_keluarga_id;type:uuid;not null;uniqueIndex:uq_iuran_payment_keluarga_type_year"`
	IuranPaymentType       IuranType `json:"iuran_payment_type" gorm:"column:iuran_payment_type;type:varchar(20);not null;uniqueIndex:uq_iuran_payment_keluarga_type_year"`
	IuranPaymentYear       int       `json:"iuran_payment_year" gorm:"column:iuran_payment_year;type:smallint;not null;uniqueIndex:uq_iuran_payment_keluarga_type_year"`

	IuranPaymentAmountPaidIDR int64              `json:"iuran_payment_amount_paid_idr" gorm:"column:iuran_payment_amount_paid_idr;type:bigint;not null;default:0"`
	IuranPaymentStatus        IuranPaymentStatus `json:"iuran_payment_status" gorm:"column:iuran_payment_status;type:varchar(15);not null"`
	IuranPaymentTotalDueIDR   int64              `json:"iuran_payment_total_due_idr" gorm:"column:iuran_payment_total_due_idr;type:bigint;not null;default:0"`

	IuranPaymentMonths pq.Int64Array `json:"iuran_payment_months" gorm:"column:iuran_payment_months;type:smallint[]"`

	IuranPaymentSubmitted bool `json:"iuran_payment_submitted" gorm:"column:iuran_payment_submitted;not null;default:false"`

	IuranPaymentCreatedAt time.Time `json:"iuran_payment_created_at" gorm:"column:iuran_payment_created_at;type:timestamptz;not null;default:now()"`
	IuranPaymentUpdatedAt time.Time `json:"iuran_payment_updated_at" gorm:"column:iuran_payment_updated_at;type:timestamptz;not null;default:now()"`
}

func (IuranPaymentModel) TableName() string { return "iuran_payments" }

func (p *IuranPaymentModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	p.IuranPaymentCreatedAt = now
	p.IuranPaymentUpdatedAt = now
	return nil
}

func (p *IuranPaymentModel) BeforeUpdate(tx *gorm.DB) error {
	p.IuranPaymentUpdatedAt = time.Now().UTC()
	return nil
}
