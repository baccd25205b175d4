// file: internals/features/finance/kas/dto/kas_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	model "lingkunganku_backend/internals/features/finance/kas/model"
)

var (
	ErrKategoriTidakValid = errors.New("kategori tidak terdaftar untuk kas tersebut")
	ErrArahWajib          = errors.New("direction wajib diisi (debit/kredit) untuk kategori lain_lain")
	ErrNominalNonPositif  = errors.New("nominal harus lebih dari nol")
)

/*
   Request menerima satu nominal + kategori; arah (debit vs kredit)
   ditentukan arah kategori. Khusus lain_lain arah ambigu, jadi wajib
   dikirim eksplisit lewat field direction.
*/
type CreateKasTransaksiRequest struct {
	Fund       string     `json:"fund" validate:"required,oneof=lingkungan ikata"`
	Date       string     `json:"date" validate:"required,datetime=2006-01-02"`
	Category   string     `json:"category" validate:"required"`
	AmountIDR  int64      `json:"amount_idr" validate:"required"`
	Direction  *string    `json:"direction,omitempty" validate:"omitempty,oneof=debit kredit"`
	Note       string     `json:"note" validate:"omitempty,max=500"`
	KeluargaID *uuid.UUID `json:"keluarga_id,omitempty"`
}

type UpdateKasTransaksiRequest struct {
	Date       *string    `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Category   *string    `json:"category,omitempty"`
	AmountIDR  *int64     `json:"amount_idr,omitempty"`
	Direction  *string    `json:"direction,omitempty" validate:"omitempty,oneof=debit kredit"`
	Note       *string    `json:"note,omitempty" validate:"omitempty,max=500"`
	KeluargaID *uuid.UUID `json:"keluarga_id,omitempty"`
}

type SaldoAwalRequest struct {
	Fund      string `json:"fund" validate:"required,oneof=lingkungan ikata"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	AmountIDR int64  `json:"amount_idr" validate:"required,gt=0"`
}

// resolveDirection menerjemahkan (fund, category, direction) ke arah final.
// true = debit (pemasukan).
func resolveDirection(fund model.KasFund, cat model.KasCategory, direction *string) (bool, error) {
	if !model.ValidCategory(fund, cat) {
		return false, ErrKategoriTidakValid
	}
	if cat == model.CategoryLainLain {
		if direction == nil {
			return false, ErrArahWajib
		}
		return *direction == "debit", nil
	}
	return model.CategoryIsInflow(fund, cat), nil
}

// ToModel membangun baris kas baru (status awal pending, belum terkunci).
func (r *CreateKasTransaksiRequest) ToModel(createdBy *uuid.UUID) (*model.KasTransaksiModel, error) {
	if r.AmountIDR <= 0 {
		return nil, ErrNominalNonPositif
	}
	fund := model.KasFund(r.Fund)
	cat := model.KasCategory(r.Category)

	inflow, err := resolveDirection(fund, cat, r.Direction)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}

	t := &model.KasTransaksiModel{
		KasTransaksiFund:           fund,
		KasTransaksiDate:           date,
		KasTransaksiCategory:       cat,
		KasTransaksiNote:           r.Note,
		KasTransaksiKeluargaID:     r.KeluargaID,
		KasTransaksiApprovalStatus: model.ApprovalStatusPending,
		KasTransaksiCreatedBy:      createdBy,
	}
	if inflow {
		t.KasTransaksiDebitIDR = r.AmountIDR
	} else {
		t.KasTransaksiCreditIDR = r.AmountIDR
	}
	return t, nil
}

// ApplyTo menyalin field yang dikirim ke model yang sudah ada.
func (r *UpdateKasTransaksiRequest) ApplyTo(t *model.KasTransaksiModel) error {
	if r.Date != nil {
		date, err := time.Parse("2006-01-02", *r.Date)
		if err != nil {
			return err
		}
		t.KasTransaksiDate = date
	}
	if r.Category != nil {
		t.KasTransaksiCategory = model.KasCategory(*r.Category)
	}
	if r.Note != nil {
		t.KasTransaksiNote = *r.Note
	}
	if r.KeluargaID != nil {
		t.KasTransaksiKeluargaID = r.KeluargaID
	}

	// nominal/kategori berubah → hitung ulang arah dari state final
	if r.AmountIDR != nil || r.Category != nil || r.Direction != nil {
		amount := t.KasTransaksiDebitIDR + t.KasTransaksiCreditIDR
		if r.AmountIDR != nil {
			amount = *r.AmountIDR
		}
		if amount <= 0 {
			return ErrNominalNonPositif
		}
		inflow, err := resolveDirection(t.KasTransaksiFund, t.KasTransaksiCategory, r.Direction)
		if err != nil {
			return err
		}
		if inflow {
			t.KasTransaksiDebitIDR = amount
			t.KasTransaksiCreditIDR = 0
		} else {
			t.KasTransaksiCreditIDR = amount
			t.KasTransaksiDebitIDR = 0
		}
	}
	return nil
}

// ToModel membangun baris saldo awal (approved + locked sejak lahir,
// keunikan per kas dijaga index di DB).
func (r *SaldoAwalRequest) ToModel(createdBy *uuid.UUID) (*model.KasTransaksiModel, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, err
	}
	return &model.KasTransaksiModel{
		KasTransaksiFund:           model.KasFund(r.Fund),
		KasTransaksiDate:           date,
		KasTransaksiCategory:       model.CategoryLainLain,
		KasTransaksiNote:           model.NoteSaldoAwal,
		KasTransaksiDebitIDR:       r.AmountIDR,
		KasTransaksiApprovalStatus: model.ApprovalStatusApproved,
		KasTransaksiLocked:         true,
		KasTransaksiIsInitial:      true,
		KasTransaksiCreatedBy:      createdBy,
	}, nil
}

type KasTransaksiResponse struct {
	KasTransaksiID uuid.UUID       `json:"kas_transaksi_id"`
	Fund           model.KasFund   `json:"fund"`
	Date           string          `json:"date"`
	DebitIDR       int64           `json:"debit_idr"`
	CreditIDR      int64           `json:"credit_idr"`
	Category       model.KasCategory `json:"category"`
	Note           string          `json:"note,omitempty"`
	KeluargaID     *uuid.UUID      `json:"keluarga_id,omitempty"`
	ApprovalStatus model.ApprovalStatus `json:"approval_status"`
	Locked         bool            `json:"locked"`
	IsInitial      bool            `json:"is_initial"`
	MirrorID       *uuid.UUID      `json:"mirror_id,omitempty"`
	CreatedBy      *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func FromKasModel(t *model.KasTransaksiModel) KasTransaksiResponse {
	return KasTransaksiResponse{
		KasTransaksiID: t.KasTransaksiID,
		Fund:           t.KasTransaksiFund,
		Date:           t.KasTransaksiDate.Format("2006-01-02"),
		DebitIDR:       t.KasTransaksiDebitIDR,
		CreditIDR:      t.KasTransaksiCreditIDR,
		Category:       t.KasTransaksiCategory,
		Note:           t.KasTransaksiNote,
		KeluargaID:     t.KasTransaksiKeluargaID,
		ApprovalStatus: t.KasTransaksiApprovalStatus,
		Locked:         t.KasTransaksiLocked,
		IsInitial:      t.KasTransaksiIsInitial,
		MirrorID:       t.KasTransaksiMirrorID,
		CreatedBy:      t.KasTransaksiCreatedBy,
		CreatedAt:      t.KasTransaksiCreatedAt,
	}
}
