// file: internals/features/finance/kas/service/summary_service.go
package service

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	model "lingkunganku_backend/internals/features/finance/kas/model"
)

// KasSummary adalah rekap satu kas untuk laporan (konsumen PDF di hilir).
type KasSummary struct {
	Fund         model.KasFund   `json:"fund"`
	SaldoAwal    decimal.Decimal `json:"saldo_awal"`
	TotalDebit   decimal.Decimal `json:"total_debit"`
	TotalKredit  decimal.Decimal `json:"total_kredit"`
	SaldoAkhir   decimal.Decimal `json:"saldo_akhir"`
	JumlahPending int64          `json:"jumlah_pending"`
}

/*
   ComputeSummary merekap transaksi approved sebuah kas pada rentang tanggal
   (batas opsional). Saldo awal (sentinel is_initial) selalu ikut dihitung
   ke saldo akhir terlepas dari rentang; hanya transaksi approved yang
   masuk rekap.
*/
func ComputeSummary(db *gorm.DB, fund model.KasFund, from, to *time.Time) (*KasSummary, error) {
	base := model.ScopeAlive(db.Model(&model.KasTransaksiModel{})).
		Where("kas_transaksi_fund = ?", fund)

	// saldo awal
	var initial struct{ Debit int64 }
	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(kas_transaksi_debit_idr),0) AS debit").
		Where("kas_transaksi_is_initial = TRUE").
		Scan(&initial).Error; err != nil {
		return nil, err
	}

	ranged := base.Session(&gorm.Session{}).
		Where("kas_transaksi_is_initial = FALSE").
		Where("kas_transaksi_approval_status = ?", model.ApprovalStatusApproved)
	if from != nil {
		ranged = ranged.Where("kas_transaksi_date >= ?", *from)
	}
	if to != nil {
		ranged = ranged.Where("kas_transaksi_date <= ?", *to)
	}

	var totals struct {
		Debit  int64
		Kredit int64
	}
	if err := ranged.
		Select("COALESCE(SUM(kas_transaksi_debit_idr),0) AS debit, COALESCE(SUM(kas_transaksi_credit_idr),0) AS kredit").
		Scan(&totals).Error; err != nil {
		return nil, err
	}

	var pending int64
	if err := base.Session(&gorm.Session{}).
		Where("kas_transaksi_approval_status = ?", model.ApprovalStatusPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}

	saldoAwal := decimal.NewFromInt(initial.Debit)
	debit := decimal.NewFromInt(totals.Debit)
	kredit := decimal.NewFromInt(totals.Kredit)

	return &KasSummary{
		Fund:          fund,
		SaldoAwal:     saldoAwal,
		TotalDebit:    debit,
		TotalKredit:   kredit,
		SaldoAkhir:    saldoAwal.Add(debit).Sub(kredit),
		JumlahPending: pending,
	}, nil
}
