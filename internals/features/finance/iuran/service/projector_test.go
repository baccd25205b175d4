// file: internals/features/finance/iuran/service/projector_test.go
package service

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "lingkunganku_backend/internals/features/finance/iuran/model"
	keluargaModel "lingkunganku_backend/internals/features/umat/keluarga/model"
)

func aktifKeluarga(nama string) keluargaModel.KeluargaUmatModel {
	return keluargaModel.KeluargaUmatModel{
		KeluargaUmatID:         uuid.New(),
		KeluargaUmatNamaKepala: nama,
		KeluargaUmatAlamat:     "Jl. Melati 1",
		KeluargaUmatStatus:     keluargaModel.KeluargaUmatStatusAktif,
	}
}

func TestComputeArrearsTanpaSetting(t *testing.T) {
	members := []keluargaModel.KeluargaUmatModel{aktifKeluarga("Budi")}
	payments := []model.IuranPaymentModel{
		{IuranPaymentKeluargaID: members[0].KeluargaUmatID, IuranPaymentStatus: model.IuranPaymentStatusBelumLunas},
	}

	if got := ComputeArrears(nil, members, payments); len(got) != 0 {
		t.Fatalf("setting nil: mau kosong, dapat %d baris", len(got))
	}

	zero := &model.IuranSettingModel{IuranSettingAmountIDR: 0}
	if got := ComputeArrears(zero, members, payments); len(got) != 0 {
		t.Fatalf("nominal 0: mau kosong, dapat %d baris", len(got))
	}
}

func TestComputeArrearsTanpaRecord(t *testing.T) {
	setting := &model.IuranSettingModel{IuranSettingAmountIDR: 120_000}
	members := []keluargaModel.KeluargaUmatModel{aktifKeluarga("Budi")}

	got := ComputeArrears(setting, members, nil)
	if len(got) != 1 {
		t.Fatalf("mau 1 baris, dapat %d", len(got))
	}
	if got[0].OwedIDR != 120_000 {
		t.Errorf("owed = %d, mau 120000", got[0].OwedIDR)
	}
	if got[0].PeriodeLabel != LabelSetahunPenuh {
		t.Errorf("label = %q, mau %q", got[0].PeriodeLabel, LabelSetahunPenuh)
	}
}

func TestComputeArrearsPerStatus(t *testing.T) {
	setting := &model.IuranSettingModel{IuranSettingAmountIDR: 1_200_000}

	tests := []struct {
		name      string
		payment   model.IuranPaymentModel
		wantRows  int
		wantOwed  int64
		wantLabel string
	}{
		{
			name:     "lunas tidak masuk hasil",
			payment:  model.IuranPaymentModel{IuranPaymentStatus: model.IuranPaymentStatusLunas, IuranPaymentAmountPaidIDR: 1_200_000},
			wantRows: 0,
		},
		{
			name: "sebagian pakai snapshot total_due",
			payment: model.IuranPaymentModel{
				IuranPaymentStatus:        model.IuranPaymentStatusSebagian,
				IuranPaymentAmountPaidIDR: 300_000,
				IuranPaymentTotalDueIDR:   1_200_000,
				IuranPaymentMonths:        pq.Int64Array{1, 2, 3},
			},
			wantRows:  1,
			wantOwed:  900_000,
			wantLabel: "April - Desember",
		},
		{
			name: "sebagian tanpa snapshot jatuh ke nominal setting",
			payment: model.IuranPaymentModel{
				IuranPaymentStatus:        model.IuranPaymentStatusSebagian,
				IuranPaymentAmountPaidIDR: 200_000,
				IuranPaymentMonths:        pq.Int64Array{1, 2},
			},
			wantRows: 1,
			wantOwed: 1_000_000,
			// tarif 100rb/bulan, kurang 1jt = 10 bulan → Maret..Desember
			wantLabel: "Maret - Desember",
		},
		{
			name: "sebagian yang sudah menutup semua tidak masuk",
			payment: model.IuranPaymentModel{
				IuranPaymentStatus:        model.IuranPaymentStatusSebagian,
				IuranPaymentAmountPaidIDR: 1_200_000,
				IuranPaymentTotalDueIDR:   1_200_000,
			},
			wantRows: 0,
		},
		{
			name: "belum_lunas menunggak penuh",
			payment: model.IuranPaymentModel{
				IuranPaymentStatus:      model.IuranPaymentStatusBelumLunas,
				IuranPaymentTotalDueIDR: 1_200_000,
			},
			wantRows:  1,
			wantOwed:  1_200_000,
			wantLabel: LabelSetahunPenuh,
		},
		{
			name: "status tak dikenal fallback konservatif",
			payment: model.IuranPaymentModel{
				IuranPaymentStatus:        model.IuranPaymentStatus("aneh"),
				IuranPaymentAmountPaidIDR: 500_000,
				IuranPaymentTotalDueIDR:   1_200_000,
			},
			wantRows:  1,
			wantOwed:  700_000,
			wantLabel: LabelSetahunPenuh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member := aktifKeluarga("Budi")
			p := tt.payment
			p.IuranPaymentKeluargaID = member.KeluargaUmatID

			got := ComputeArrears(setting, []keluargaModel.KeluargaUmatModel{member}, []model.IuranPaymentModel{p})
			if len(got) != tt.wantRows {
				t.Fatalf("jumlah baris = %d, mau %d", len(got), tt.wantRows)
			}
			if tt.wantRows == 0 {
				return
			}
			if got[0].OwedIDR != tt.wantOwed {
				t.Errorf("owed = %d, mau %d", got[0].OwedIDR, tt.wantOwed)
			}
			if got[0].PeriodeLabel != tt.wantLabel {
				t.Errorf("label = %q, mau %q", got[0].PeriodeLabel, tt.wantLabel)
			}
		})
	}
}

// Skenario: iuran 4 bulan senilai 400rb (100rb/bulan), sudah bayar
// Januari-Februari 200rb → kurang 200rb untuk Maret-April.
func TestComputeArrearsSkenarioEmpatBulan(t *testing.T) {
	setting := &model.IuranSettingModel{IuranSettingAmountIDR: 400_000}
	member := aktifKeluarga("Sari")
	payment := model.IuranPaymentModel{
		IuranPaymentKeluargaID:    member.KeluargaUmatID,
		IuranPaymentStatus:        model.IuranPaymentStatusSebagian,
		IuranPaymentAmountPaidIDR: 200_000,
		IuranPaymentTotalDueIDR:   400_000,
		IuranPaymentMonths:        pq.Int64Array{1, 2},
	}

	got := ComputeArrears(setting, []keluargaModel.KeluargaUmatModel{member}, []model.IuranPaymentModel{payment})
	if len(got) != 1 {
		t.Fatalf("mau 1 baris, dapat %d", len(got))
	}
	if got[0].OwedIDR != 200_000 {
		t.Errorf("owed = %d, mau 200000", got[0].OwedIDR)
	}
	if got[0].PeriodeLabel != "Maret - April" {
		t.Errorf("label = %q, mau \"Maret - April\"", got[0].PeriodeLabel)
	}
}

// Bulan tercakup loncat-loncat (bukan prefix Januari..k) → label jatuh ke
// setahun penuh, nominal tetap akurat.
func TestComputeArrearsBulanNonPrefix(t *testing.T) {
	setting := &model.IuranSettingModel{IuranSettingAmountIDR: 1_200_000}
	member := aktifKeluarga("Tono")
	payment := model.IuranPaymentModel{
		IuranPaymentKeluargaID:    member.KeluargaUmatID,
		IuranPaymentStatus:        model.IuranPaymentStatusSebagian,
		IuranPaymentAmountPaidIDR: 200_000,
		IuranPaymentTotalDueIDR:   1_200_000,
		IuranPaymentMonths:        pq.Int64Array{3, 7},
	}

	got := ComputeArrears(setting, []keluargaModel.KeluargaUmatModel{member}, []model.IuranPaymentModel{payment})
	if len(got) != 1 {
		t.Fatalf("mau 1 baris, dapat %d", len(got))
	}
	if got[0].OwedIDR != 1_000_000 {
		t.Errorf("owed = %d, mau 1000000", got[0].OwedIDR)
	}
	if got[0].PeriodeLabel != LabelSetahunPenuh {
		t.Errorf("label = %q, mau %q", got[0].PeriodeLabel, LabelSetahunPenuh)
	}
}

func TestComputeArrearsLewatiNonAktif(t *testing.T) {
	setting := &model.IuranSettingModel{IuranSettingAmountIDR: 120_000}
	pindah := aktifKeluarga("Pindah")
	pindah.KeluargaUmatStatus = keluargaModel.KeluargaUmatStatusPindah
	meninggal := aktifKeluarga("Meninggal")
	meninggal.KeluargaUmatStatus = keluargaModel.KeluargaUmatStatusMeninggal
	aktif := aktifKeluarga("Aktif")

	got := ComputeArrears(setting, []keluargaModel.KeluargaUmatModel{pindah, meninggal, aktif}, nil)
	if len(got) != 1 {
		t.Fatalf("mau 1 baris (hanya yang aktif), dapat %d", len(got))
	}
	if got[0].NamaKepala != "Aktif" {
		t.Errorf("nama = %q, mau \"Aktif\"", got[0].NamaKepala)
	}
}

// Proyeksi murni: input sama dua kali harus identik.
func TestComputeArrearsDeterministik(t *testing.T) {
	setting := &model.IuranSettingModel{IuranSettingAmountIDR: 250_000}
	members := []keluargaModel.KeluargaUmatModel{aktifKeluarga("A"), aktifKeluarga("B"), aktifKeluarga("C")}
	payments := []model.IuranPaymentModel{
		{
			IuranPaymentKeluargaID:    members[0].KeluargaUmatID,
			IuranPaymentStatus:        model.IuranPaymentStatusLunas,
			IuranPaymentAmountPaidIDR: 250_000,
		},
		{
			IuranPaymentKeluargaID:    members[1].KeluargaUmatID,
			IuranPaymentStatus:        model.IuranPaymentStatusSebagian,
			IuranPaymentAmountPaidIDR: 100_000,
			IuranPaymentTotalDueIDR:   250_000,
			IuranPaymentMonths:        pq.Int64Array{1, 2, 3, 4, 5},
		},
	}

	first := ComputeArrears(setting, members, payments)
	second := ComputeArrears(setting, members, payments)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("dua panggilan dengan input sama menghasilkan output berbeda:\n%+v\n%+v", first, second)
	}
}
