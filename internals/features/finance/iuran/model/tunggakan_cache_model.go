// file: internals/features/finance/iuran/model/tunggakan_cache_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/*
   Entitas turunan (denormalized). Sumber kebenaran tetap
   iuran_settings × iuran_payments; tabel ini hanya index multi-tahun
   "siapa menunggak apa" supaya tidak perlu scan semua umat × semua tahun
   di tiap page load.

   Dibangun ulang eager HANYA saat SetDues; untuk query satu tahun,
   projector live (ComputeArrears) yang menang kalau keduanya beda.
*/
type TunggakanCacheModel struct {
	TunggakanID uuid.UUID `json:"tunggakan_id" gorm:"column:tunggakan_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	TunggakanKeluargaID uuid.UUID `json:"tunggakan_keluarga_id" gorm:"column:tunggakan_keluarga_id;type:uuid;not null;uniqueIndex:uq_tunggakan_keluarga_type"`
	TunggakanType       IuranType `json:"tunggakan_type" gorm:"column:tunggakan_type;type:varchar(20);not null;uniqueIndex:uq_tunggakan_keluarga_type"`

	// Tahun-tahun dengan saldo belum lunas
	TunggakanYears pq.Int64Array `json:"tunggakan_years" gorm:"column:tunggakan_years;type:smallint[];not null"`

	// Σ nominal iuran utk tiap tahun di TunggakanYears
	TunggakanTotalIDR int64 `json:"tunggakan_total_idr" gorm:"column:tunggakan_total_idr;type:bigint;not null;default:0"`

	TunggakanUpdatedAt time.Time `json:"tunggakan_updated_at" gorm:"column:tunggakan_updated_at;type:timestamptz;not null;default:now()"`
}

func (TunggakanCacheModel) TableName() string { return "tunggakan_cache" }

// HasYear mengecek apakah sebuah tahun sudah tercatat menunggak.
func (t *TunggakanCacheModel) HasYear(year int) bool {
	for _, y := range t.TunggakanYears {
		if int(y) == year {
			return true
		}
	}
	return false
}
