// file: internals/features/finance/kas/service/transfer_service.go
package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	model "lingkunganku_backend/internals/features/finance/kas/model"
)

var (
	ErrMirrorHilang            = errors.New("pasangan transaksi transfer tidak ditemukan")
	ErrKategoriTransferBerubah = errors.New("status transfer transaksi tidak bisa diubah lewat edit; hapus transaksi lalu catat ulang")
)

/*
   Transfer lingkungan → IKATA: transaksi sumber (kategori
   transfer_dana_mandiri, kredit di Kas Lingkungan) selalu berpasangan dengan
   satu transaksi cermin di Kas IKATA (transfer_dana_lingkungan, debit,
   locked+approved). Create/edit/delete sumber dan cermin berjalan dalam satu
   transaksi DB — tidak boleh ada cermin yatim.
*/

// BuildMirrorEntry membangun transaksi cermin untuk sebuah transfer.
// Murni: tidak menyentuh DB, mudah diuji.
func BuildMirrorEntry(src *model.KasTransaksiModel) *model.KasTransaksiModel {
	return &model.KasTransaksiModel{
		KasTransaksiFund:           model.KasFundIkata,
		KasTransaksiDate:           src.KasTransaksiDate,
		KasTransaksiDebitIDR:       src.KasTransaksiCreditIDR,
		KasTransaksiCreditIDR:      0,
		KasTransaksiCategory:       model.CategoryTransferDanaLingkungan,
		KasTransaksiNote:           fmt.Sprintf("Transfer dari Kas Lingkungan: %s", src.KasTransaksiNote),
		KasTransaksiApprovalStatus: model.ApprovalStatusApproved,
		KasTransaksiLocked:         true,
		KasTransaksiCreatedBy:      src.KasTransaksiCreatedBy,
	}
}

// IsTransfer: transaksi sumber transfer antar kas?
func IsTransfer(t *model.KasTransaksiModel) bool {
	return t.KasTransaksiFund == model.KasFundLingkungan &&
		t.KasTransaksiCategory == model.CategoryTransferDanaMandiri
}

// CheckTransferEdit menolak edit yang mengubah status transfer sebuah
// transaksi. Sumber transfer yang berganti kategori akan meninggalkan cermin
// yatim di Kas IKATA; transaksi biasa yang berganti ke kategori transfer
// tidak pernah punya cermin untuk diselaraskan. Dua-duanya: hapus dulu,
// catat ulang.
func CheckTransferEdit(before, after *model.KasTransaksiModel) error {
	if IsTransfer(before) != IsTransfer(after) {
		return ErrKategoriTransferBerubah
	}
	return nil
}

// mirrorCreateFailpoint, bila di-set, dipanggil tepat sebelum insert cermin;
// error yang dikembalikan membatalkan seluruh transaksi. Hanya untuk test.
var mirrorCreateFailpoint func(*model.KasTransaksiModel) error

// CreateWithMirror menyimpan transaksi sumber + cermin secara atomik.
func CreateWithMirror(db *gorm.DB, src *model.KasTransaksiModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(src).Error; err != nil {
			return err
		}
		mirror := BuildMirrorEntry(src)
		mirror.KasTransaksiMirrorID = &src.KasTransaksiID
		if mirrorCreateFailpoint != nil {
			if err := mirrorCreateFailpoint(mirror); err != nil {
				return err
			}
		}
		if err := tx.Create(mirror).Error; err != nil {
			return err
		}
		// tautan dua arah
		src.KasTransaksiMirrorID = &mirror.KasTransaksiID
		return tx.Model(&model.KasTransaksiModel{}).
			Where("kas_transaksi_id = ?", src.KasTransaksiID).
			Update("kas_transaksi_mirror_id", mirror.KasTransaksiID).Error
	})
}

// SaveWithMirror menyimpan perubahan transaksi sumber dan menyelaraskan cermin.
func SaveWithMirror(db *gorm.DB, src *model.KasTransaksiModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(src).Error; err != nil {
			return err
		}
		if src.KasTransaksiMirrorID == nil {
			return ErrMirrorHilang
		}
		res := tx.Model(&model.KasTransaksiModel{}).
			Where("kas_transaksi_id = ? AND kas_transaksi_deleted_at IS NULL", *src.KasTransaksiMirrorID).
			Updates(map[string]interface{}{
				"kas_transaksi_date":      src.KasTransaksiDate,
				"kas_transaksi_debit_idr": src.KasTransaksiCreditIDR,
				"kas_transaksi_note":      fmt.Sprintf("Transfer dari Kas Lingkungan: %s", src.KasTransaksiNote),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrMirrorHilang
		}
		return nil
	})
}

// DeleteWithMirror soft-delete sumber + cermin; gagal semua kalau salah satu gagal.
func DeleteWithMirror(db *gorm.DB, src *model.KasTransaksiModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := softDelete(tx, src.KasTransaksiID); err != nil {
			return err
		}
		if src.KasTransaksiMirrorID == nil {
			return ErrMirrorHilang
		}
		if err := softDelete(tx, *src.KasTransaksiMirrorID); err != nil {
			return err
		}
		return nil
	})
}

func softDelete(tx *gorm.DB, id interface{}) error {
	res := tx.Model(&model.KasTransaksiModel{}).
		Where("kas_transaksi_id = ? AND kas_transaksi_deleted_at IS NULL", id).
		Update("kas_transaksi_deleted_at", gorm.Expr("NOW()"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMirrorHilang
	}
	return nil
}
