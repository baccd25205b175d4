// file: internals/features/finance/kas/dto/kas_dto_test.go
package dto

import (
	"errors"
	"testing"

	model "lingkunganku_backend/internals/features/finance/kas/model"
)

func strPtr(s string) *string { return &s }

func TestCreateRequestToModelArah(t *testing.T) {
	tests := []struct {
		name       string
		req        CreateKasTransaksiRequest
		wantDebit  int64
		wantCredit int64
		wantErr    error
	}{
		{
			name:      "kategori pemasukan jadi debit",
			req:       CreateKasTransaksiRequest{Fund: "lingkungan", Date: "2025-03-01", Category: "kolekte_1", AmountIDR: 150_000},
			wantDebit: 150_000,
		},
		{
			name:       "kategori pengeluaran jadi kredit",
			req:        CreateKasTransaksiRequest{Fund: "lingkungan", Date: "2025-03-01", Category: "biaya_kegiatan", AmountIDR: 80_000},
			wantCredit: 80_000,
		},
		{
			name:    "lain_lain tanpa direction ditolak",
			req:     CreateKasTransaksiRequest{Fund: "ikata", Date: "2025-03-01", Category: "lain_lain", AmountIDR: 50_000},
			wantErr: ErrArahWajib,
		},
		{
			name:       "lain_lain direction kredit",
			req:        CreateKasTransaksiRequest{Fund: "ikata", Date: "2025-03-01", Category: "lain_lain", AmountIDR: 50_000, Direction: strPtr("kredit")},
			wantCredit: 50_000,
		},
		{
			name:      "lain_lain direction debit",
			req:       CreateKasTransaksiRequest{Fund: "ikata", Date: "2025-03-01", Category: "lain_lain", AmountIDR: 50_000, Direction: strPtr("debit")},
			wantDebit: 50_000,
		},
		{
			name:    "kategori milik kas lain ditolak",
			req:     CreateKasTransaksiRequest{Fund: "lingkungan", Date: "2025-03-01", Category: "iuran_anggota", AmountIDR: 50_000},
			wantErr: ErrKategoriTidakValid,
		},
		{
			name:    "nominal nol ditolak",
			req:     CreateKasTransaksiRequest{Fund: "lingkungan", Date: "2025-03-01", Category: "kolekte_1", AmountIDR: 0},
			wantErr: ErrNominalNonPositif,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToModel(nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, mau %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if got.KasTransaksiDebitIDR != tt.wantDebit || got.KasTransaksiCreditIDR != tt.wantCredit {
				t.Errorf("debit/kredit = %d/%d, mau %d/%d",
					got.KasTransaksiDebitIDR, got.KasTransaksiCreditIDR, tt.wantDebit, tt.wantCredit)
			}
			if got.KasTransaksiApprovalStatus != model.ApprovalStatusPending {
				t.Errorf("status awal = %s, mau pending", got.KasTransaksiApprovalStatus)
			}
		})
	}
}

func TestSaldoAwalToModel(t *testing.T) {
	req := SaldoAwalRequest{Fund: "lingkungan", Date: "2025-01-01", AmountIDR: 2_500_000}
	got, err := req.ToModel(nil)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if !got.KasTransaksiIsInitial {
		t.Error("is_initial = false, mau true")
	}
	if got.KasTransaksiNote != model.NoteSaldoAwal {
		t.Errorf("note = %q, mau %q", got.KasTransaksiNote, model.NoteSaldoAwal)
	}
	if got.KasTransaksiCategory != model.CategoryLainLain {
		t.Errorf("kategori = %s, mau lain_lain", got.KasTransaksiCategory)
	}
	if got.KasTransaksiApprovalStatus != model.ApprovalStatusApproved || !got.KasTransaksiLocked {
		t.Errorf("saldo awal harus approved+locked, dapat %s locked=%v",
			got.KasTransaksiApprovalStatus, got.KasTransaksiLocked)
	}
	if got.KasTransaksiDebitIDR != 2_500_000 {
		t.Errorf("debit = %d, mau 2500000", got.KasTransaksiDebitIDR)
	}
}

func TestUpdateRequestApplyTo(t *testing.T) {
	base := &model.KasTransaksiModel{
		KasTransaksiFund:     model.KasFundLingkungan,
		KasTransaksiCategory: model.CategoryKolekte1,
		KasTransaksiDebitIDR: 100_000,
	}

	// ganti kategori ke pengeluaran → nominal pindah sisi kredit
	cat := "biaya_operasional"
	if err := (&UpdateKasTransaksiRequest{Category: &cat}).ApplyTo(base); err != nil {
		t.Fatalf("err = %v", err)
	}
	if base.KasTransaksiDebitIDR != 0 || base.KasTransaksiCreditIDR != 100_000 {
		t.Errorf("debit/kredit = %d/%d, mau 0/100000",
			base.KasTransaksiDebitIDR, base.KasTransaksiCreditIDR)
	}

	// nominal baru mengikuti arah kategori terkini
	amount := int64(250_000)
	if err := (&UpdateKasTransaksiRequest{AmountIDR: &amount}).ApplyTo(base); err != nil {
		t.Fatalf("err = %v", err)
	}
	if base.KasTransaksiCreditIDR != 250_000 {
		t.Errorf("kredit = %d, mau 250000", base.KasTransaksiCreditIDR)
	}

	bad := int64(-5)
	if err := (&UpdateKasTransaksiRequest{AmountIDR: &bad}).ApplyTo(base); !errors.Is(err, ErrNominalNonPositif) {
		t.Errorf("nominal negatif = %v, mau ErrNominalNonPositif", err)
	}
}
