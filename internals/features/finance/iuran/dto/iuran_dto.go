// file: internals/features/finance/iuran/dto/iuran_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "lingkunganku_backend/internals/features/finance/iuran/model"
)

/* =========================================================
   REQUEST: Set nominal iuran (jenis, tahun)
   ========================================================= */

type SetDuesRequest struct {
	Type      string `json:"type" validate:"required,oneof=dana_mandiri ikata"`
	Year      int    `json:"year" validate:"required,min=2000,max=2100"`
	AmountIDR int64  `json:"amount_idr" validate:"required,gt=0"`
}

type SetDuesResponse struct {
	Type                string `json:"type"`
	Year                int    `json:"year"`
	AmountIDR           int64  `json:"amount_idr"`
	UpdatedArrearsCount int    `json:"updated_arrears_count"`
}

/* =========================================================
   REQUEST: Catat pembayaran iuran
   ========================================================= */

type RecordPaymentRequest struct {
	KeluargaID uuid.UUID `json:"keluarga_id" validate:"required"`
	Type       string    `json:"type" validate:"required,oneof=dana_mandiri ikata"`
	Year       int       `json:"year" validate:"required,min=2000,max=2100"`
	AmountIDR  int64     `json:"amount_idr" validate:"min=0"`
	Status     string    `json:"status" validate:"required,oneof=lunas sebagian belum_lunas"`

	// hanya bermakna untuk status sebagian
	Months []int64 `json:"months" validate:"omitempty,dive,min=1,max=12"`

	// "YYYY-MM-DD", default hari ini
	Date *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type IuranPaymentResponse struct {
	ID            uuid.UUID `json:"id"`
	KeluargaID    uuid.UUID `json:"keluarga_id"`
	Type          string    `json:"type"`
	Year          int       `json:"year"`
	AmountPaidIDR int64     `json:"amount_paid_idr"`
	Status        string    `json:"status"`
	TotalDueIDR   int64     `json:"total_due_idr"`
	Months        []int64   `json:"months,omitempty"`
	Submitted     bool      `json:"submitted"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromPaymentModel(p *model.IuranPaymentModel) IuranPaymentResponse {
	return IuranPaymentResponse{
		ID:            p.IuranPaymentID,
		KeluargaID:    p.IuranPaymentKeluargaID,
		Type:          string(p.IuranPaymentType),
		Year:          p.IuranPaymentYear,
		AmountPaidIDR: p.IuranPaymentAmountPaidIDR,
		Status:        string(p.IuranPaymentStatus),
		TotalDueIDR:   p.IuranPaymentTotalDueIDR,
		Months:        p.IuranPaymentMonths,
		Submitted:     p.IuranPaymentSubmitted,
		CreatedAt:     p.IuranPaymentCreatedAt,
	}
}

type TunggakanCacheResponse struct {
	KeluargaID uuid.UUID `json:"keluarga_id"`
	Type       string    `json:"type"`
	Years      []int64   `json:"years"`
	TotalIDR   int64     `json:"total_idr"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromCacheModel(t *model.TunggakanCacheModel) TunggakanCacheResponse {
	return TunggakanCacheResponse{
		KeluargaID: t.TunggakanKeluargaID,
		Type:       string(t.TunggakanType),
		Years:      t.TunggakanYears,
		TotalIDR:   t.TunggakanTotalIDR,
		UpdatedAt:  t.TunggakanUpdatedAt,
	}
}
