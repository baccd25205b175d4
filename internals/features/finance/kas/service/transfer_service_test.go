// file: internals/features/finance/kas/service/transfer_service_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	dto "lingkunganku_backend/internals/features/finance/kas/dto"
	model "lingkunganku_backend/internals/features/finance/kas/model"
)

func TestIsTransfer(t *testing.T) {
	tests := []struct {
		name string
		fund model.KasFund
		cat  model.KasCategory
		want bool
	}{
		{"transfer dari lingkungan", model.KasFundLingkungan, model.CategoryTransferDanaMandiri, true},
		{"pengeluaran biasa", model.KasFundLingkungan, model.CategoryBiayaKegiatan, false},
		{"kategori transfer di kas ikata bukan sumber", model.KasFundIkata, model.CategoryTransferDanaMandiri, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &model.KasTransaksiModel{KasTransaksiFund: tt.fund, KasTransaksiCategory: tt.cat}
			if got := IsTransfer(tr); got != tt.want {
				t.Errorf("IsTransfer = %v, mau %v", got, tt.want)
			}
		})
	}
}

// Sumber transfer yang diedit ganti kategori akan meninggalkan cermin yatim
// di Kas IKATA kalau lolos; transisi status transfer lewat edit harus ditolak
// dua arah.
func TestCheckTransferEdit(t *testing.T) {
	mirrorID := uuid.New()
	transfer := func() *model.KasTransaksiModel {
		return &model.KasTransaksiModel{
			KasTransaksiFund:      model.KasFundLingkungan,
			KasTransaksiCategory:  model.CategoryTransferDanaMandiri,
			KasTransaksiCreditIDR: 500_000,
			KasTransaksiMirrorID:  &mirrorID,
		}
	}
	biasa := func() *model.KasTransaksiModel {
		return &model.KasTransaksiModel{
			KasTransaksiFund:      model.KasFundLingkungan,
			KasTransaksiCategory:  model.CategoryBiayaOperasional,
			KasTransaksiCreditIDR: 500_000,
		}
	}

	// transfer diganti jadi pengeluaran biasa lewat jalur edit sungguhan (dto)
	before := transfer()
	after := *before
	cat := string(model.CategoryBiayaOperasional)
	if err := (&dto.UpdateKasTransaksiRequest{Category: &cat}).ApplyTo(&after); err != nil {
		t.Fatalf("ApplyTo = %v", err)
	}
	if IsTransfer(&after) {
		t.Fatal("setelah ganti kategori harusnya bukan transfer lagi")
	}
	if err := CheckTransferEdit(before, &after); !errors.Is(err, ErrKategoriTransferBerubah) {
		t.Errorf("transfer → biasa: err = %v, mau ErrKategoriTransferBerubah", err)
	}

	// arah sebaliknya: transaksi biasa diganti jadi kategori transfer
	before2 := biasa()
	after2 := *before2
	after2.KasTransaksiCategory = model.CategoryTransferDanaMandiri
	if err := CheckTransferEdit(before2, &after2); !errors.Is(err, ErrKategoriTransferBerubah) {
		t.Errorf("biasa → transfer: err = %v, mau ErrKategoriTransferBerubah", err)
	}

	// edit yang tidak menyentuh status transfer tetap boleh
	if err := CheckTransferEdit(transfer(), transfer()); err != nil {
		t.Errorf("transfer tetap transfer: err = %v", err)
	}
	if err := CheckTransferEdit(biasa(), biasa()); err != nil {
		t.Errorf("biasa tetap biasa: err = %v", err)
	}
}

func TestBuildMirrorEntry(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	src := &model.KasTransaksiModel{
		KasTransaksiFund:      model.KasFundLingkungan,
		KasTransaksiDate:      date,
		KasTransaksiCreditIDR: 750_000,
		KasTransaksiCategory:  model.CategoryTransferDanaMandiri,
		KasTransaksiNote:      "Setoran Dana Mandiri Juni",
	}

	mirror := BuildMirrorEntry(src)

	if mirror.KasTransaksiFund != model.KasFundIkata {
		t.Errorf("fund cermin = %s, mau ikata", mirror.KasTransaksiFund)
	}
	// kredit di sumber jadi debit senilai sama di tujuan
	if mirror.KasTransaksiDebitIDR != 750_000 || mirror.KasTransaksiCreditIDR != 0 {
		t.Errorf("debit/kredit cermin = %d/%d, mau 750000/0",
			mirror.KasTransaksiDebitIDR, mirror.KasTransaksiCreditIDR)
	}
	if mirror.KasTransaksiCategory != model.CategoryTransferDanaLingkungan {
		t.Errorf("kategori cermin = %s, mau transfer_dana_lingkungan", mirror.KasTransaksiCategory)
	}
	if !mirror.KasTransaksiDate.Equal(date) {
		t.Errorf("tanggal cermin = %v, mau %v", mirror.KasTransaksiDate, date)
	}
	// cermin lahir approved + locked, tidak ikut antrian persetujuan
	if mirror.KasTransaksiApprovalStatus != model.ApprovalStatusApproved || !mirror.KasTransaksiLocked {
		t.Errorf("cermin status=%s locked=%v, mau approved/true",
			mirror.KasTransaksiApprovalStatus, mirror.KasTransaksiLocked)
	}
}
