// file: internals/features/finance/iuran/service/projector.go
package service

import (
	"github.com/google/uuid"

	model "lingkunganku_backend/internals/features/finance/iuran/model"
	keluargaModel "lingkunganku_backend/internals/features/umat/keluarga/model"
)

// TunggakanRow adalah satu baris hasil proyeksi tunggakan.
type TunggakanRow struct {
	KeluargaID   uuid.UUID `json:"keluarga_id"`
	NamaKepala   string    `json:"nama_kepala"`
	Alamat       string    `json:"alamat"`
	NoTelp       *string   `json:"no_telp,omitempty"`
	OwedIDR      int64     `json:"owed_idr"`
	PeriodeLabel string    `json:"periode_label"`
}

/*
   ComputeArrears adalah proyeksi murni: deterministik atas input yang sama,
   tidak menyentuh DB, tidak membaca jam dinding. Tahun acuan implisit lewat
   setting+payments yang diberikan caller (controller yang memilih tahunnya).

   Aturan per kepala keluarga aktif:
   1. Setting (jenis, tahun) belum ada → tidak ada yang menunggak (iuran
      belum dikonfigurasi tahun itu).
   2. Tidak punya record pembayaran → menunggak nominal penuh, setahun penuh.
   3. Punya record:
      - lunas      → tidak masuk hasil.
      - sebagian   → expected = snapshot total_due (kalau ada) else nominal
                     setting; owed = expected - paid; masuk hanya kalau > 0.
      - belum_lunas→ owed = snapshot else nominal setting; setahun penuh.
   4. Status tak dikenal → fallback konservatif: bandingkan total dibayar
      dengan nominal; selisih positif dilaporkan.
*/
func ComputeArrears(
	setting *model.IuranSettingModel,
	members []keluargaModel.KeluargaUmatModel,
	payments []model.IuranPaymentModel,
) []TunggakanRow {
	// Iuran belum dikonfigurasi tahun ini → short-circuit
	if setting == nil || setting.IuranSettingAmountIDR <= 0 {
		return []TunggakanRow{}
	}

	byKeluarga := make(map[uuid.UUID]*model.IuranPaymentModel, len(payments))
	for i := range payments {
		byKeluarga[payments[i].IuranPaymentKeluargaID] = &payments[i]
	}

	rows := make([]TunggakanRow, 0)
	for i := range members {
		m := &members[i]
		if m.KeluargaUmatStatus != keluargaModel.KeluargaUmatStatusAktif {
			continue
		}

		p, ok := byKeluarga[m.KeluargaUmatID]
		if !ok {
			rows = append(rows, TunggakanRow{
				KeluargaID:   m.KeluargaUmatID,
				NamaKepala:   m.KeluargaUmatNamaKepala,
				Alamat:       m.KeluargaUmatAlamat,
				NoTelp:       m.KeluargaUmatNoTelp,
				OwedIDR:      setting.IuranSettingAmountIDR,
				PeriodeLabel: LabelSetahunPenuh,
			})
			continue
		}

		expected := p.IuranPaymentTotalDueIDR
		if expected <= 0 {
			expected = setting.IuranSettingAmountIDR
		}

		var owed int64
		var label string

		switch p.IuranPaymentStatus {
		case model.IuranPaymentStatusLunas:
			continue

		case model.IuranPaymentStatusSebagian:
			owed = expected - p.IuranPaymentAmountPaidIDR
			if owed <= 0 {
				continue
			}
			label = partialPeriodLabel(p, owed)

		case model.IuranPaymentStatusBelumLunas:
			owed = expected
			label = LabelSetahunPenuh

		default:
			// status tak dikenal: fallback konservatif
			owed = expected - p.IuranPaymentAmountPaidIDR
			if owed <= 0 {
				continue
			}
			label = LabelSetahunPenuh
		}

		rows = append(rows, TunggakanRow{
			KeluargaID:   m.KeluargaUmatID,
			NamaKepala:   m.KeluargaUmatNamaKepala,
			Alamat:       m.KeluargaUmatAlamat,
			NoTelp:       m.KeluargaUmatNoTelp,
			OwedIDR:      owed,
			PeriodeLabel: label,
		})
	}

	// Urutan output tidak dijamin; caller mengurutkan sendiri saat perlu.
	return rows
}

// partialPeriodLabel membuat label periode untuk pembayaran sebagian.
// Kalau bulan tercakup adalah prefix {1..k}, tarif per bulan disimpulkan dari
// pembayaran (paid/k) dan rentang kekurangan dihitung dari situ; selain itu
// jatuh ke label setahun penuh.
func partialPeriodLabel(p *model.IuranPaymentModel, owed int64) string {
	k, ok := isPrefixMonths(p.IuranPaymentMonths)
	if !ok || k >= 12 {
		return LabelSetahunPenuh
	}

	rate := int64(0)
	if p.IuranPaymentAmountPaidIDR > 0 {
		rate = p.IuranPaymentAmountPaidIDR / int64(k)
	}
	if rate <= 0 {
		// tidak bisa simpulkan tarif per bulan → sisa tahun
		return MonthRangeLabel(k+1, 12)
	}

	n := owed / rate
	if owed%rate != 0 {
		n++
	}
	to := k + int(n)
	if to > 12 {
		to = 12
	}
	return MonthRangeLabel(k+1, to)
}
