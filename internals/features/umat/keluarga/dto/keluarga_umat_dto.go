// file: internals/features/umat/keluarga/dto/keluarga_umat_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "lingkunganku_backend/internals/features/umat/keluarga/model"
)

/* =========================================================
   REQUEST: Create (pendaftaran kepala keluarga)
   ========================================================= */

type CreateKeluargaUmatRequest struct {
	NamaKepala string  `json:"nama_kepala" validate:"required,min=3"`
	Alamat     string  `json:"alamat" validate:"required"`
	NoTelp     *string `json:"no_telp" validate:"omitempty,max=20"`
}

func (r *CreateKeluargaUmatRequest) ToModel() *model.KeluargaUmatModel {
	return &model.KeluargaUmatModel{
		KeluargaUmatNamaKepala: r.NamaKepala,
		KeluargaUmatAlamat:     r.Alamat,
		KeluargaUmatNoTelp:     r.NoTelp,
		KeluargaUmatStatus:     model.KeluargaUmatStatusAktif,
	}
}

/* =========================================================
   REQUEST: Update data dasar
   ========================================================= */

type UpdateKeluargaUmatRequest struct {
	NamaKepala *string `json:"nama_kepala" validate:"omitempty,min=3"`
	Alamat     *string `json:"alamat"`
	NoTelp     *string `json:"no_telp" validate:"omitempty,max=20"`
}

func (r *UpdateKeluargaUmatRequest) ApplyTo(k *model.KeluargaUmatModel) {
	if r.NamaKepala != nil {
		k.KeluargaUmatNamaKepala = *r.NamaKepala
	}
	if r.Alamat != nil {
		k.KeluargaUmatAlamat = *r.Alamat
	}
	if r.NoTelp != nil {
		k.KeluargaUmatNoTelp = r.NoTelp
	}
}

/* =========================================================
   REQUEST: Mutasi status (pindah / meninggal / aktif lagi)
   ========================================================= */

type MutasiStatusRequest struct {
	Status        string  `json:"status" validate:"required,oneof=aktif pindah meninggal"`
	TanggalKeluar *string `json:"tanggal_keluar" validate:"omitempty,datetime=2006-01-02"`
}

/* =========================================================
   RESPONSE
   ========================================================= */

type KeluargaUmatResponse struct {
	ID            uuid.UUID  `json:"id"`
	NamaKepala    string     `json:"nama_kepala"`
	Alamat        string     `json:"alamat"`
	NoTelp        *string    `json:"no_telp,omitempty"`
	Status        string     `json:"status"`
	TanggalKeluar *time.Time `json:"tanggal_keluar,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromModel(k *model.KeluargaUmatModel) KeluargaUmatResponse {
	return KeluargaUmatResponse{
		ID:            k.KeluargaUmatID,
		NamaKepala:    k.KeluargaUmatNamaKepala,
		Alamat:        k.KeluargaUmatAlamat,
		NoTelp:        k.KeluargaUmatNoTelp,
		Status:        string(k.KeluargaUmatStatus),
		TanggalKeluar: k.KeluargaUmatTanggalKeluar,
		CreatedAt:     k.KeluargaUmatCreatedAt,
	}
}

func FromModels(rows []model.KeluargaUmatModel) []KeluargaUmatResponse {
	out := make([]KeluargaUmatResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
