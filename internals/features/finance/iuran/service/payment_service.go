// file: internals/features/finance/iuran/service/payment_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	model "lingkunganku_backend/internals/features/finance/iuran/model"
	kasModel "lingkunganku_backend/internals/features/finance/kas/model"
	keluargaModel "lingkunganku_backend/internals/features/umat/keluarga/model"
)

var (
	ErrBulanWajib       = errors.New("status sebagian membutuhkan daftar bulan tercakup (1..12)")
	ErrBulanTidakValid  = errors.New("daftar bulan harus subset {1..12} tanpa duplikat")
	ErrKeluargaTidakAda = errors.New("kepala keluarga tidak ditemukan")
	ErrSudahDisetor     = errors.New("pembayaran sudah disetor ke paroki dan tidak bisa dihapus")
)

// RecordPaymentInput: parameter pencatatan pembayaran iuran.
type RecordPaymentInput struct {
	KeluargaID uuid.UUID
	Type       model.IuranType
	Year       int
	AmountIDR  int64
	Status     model.IuranPaymentStatus
	Months     []int64 // hanya untuk status sebagian
	Date       time.Time
	ActorID    *uuid.UUID
}

/*
   RecordPayment membuat atau mengganti record pembayaran (keluarga, jenis,
   tahun), men-snapshot total_due dari setting terkini (0 kalau belum ada).
   TIDAK menyentuh tunggakan_cache: konsistensi cache dipulihkan lazy oleh
   SetDues berikutnya, sementara projector live selalu mengutamakan data
   pembayaran terbaru untuk tahun yang ditanya.

   Side effect: record lunas/sebagian PERTAMA di tahun itu dicerminkan
   sebagai pemasukan kas (iuran IKATA → Kas IKATA iuran_anggota;
   Dana Mandiri → Kas Lingkungan penerimaan_lain). Semua dalam satu
   transaksi DB.
*/
func RecordPayment(db *gorm.DB, in RecordPaymentInput) (*model.IuranPaymentModel, error) {
	if !model.ValidIuranType(in.Type) {
		return nil, fmt.Errorf("jenis iuran tidak dikenal: %s", in.Type)
	}
	if !model.ValidIuranPaymentStatus(in.Status) {
		return nil, fmt.Errorf("status pembayaran tidak dikenal: %s", in.Status)
	}
	if in.AmountIDR < 0 {
		return nil, errors.New("nominal pembayaran tidak boleh negatif")
	}

	// invariant bulan tercakup
	if in.Status == model.IuranPaymentStatusSebagian {
		if len(in.Months) == 0 {
			return nil, ErrBulanWajib
		}
		if !ValidMonths(in.Months) {
			return nil, ErrBulanTidakValid
		}
	} else {
		in.Months = nil // diabaikan untuk lunas/belum_lunas
	}

	var saved *model.IuranPaymentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		// referential: keluarga harus ada
		var keluarga keluargaModel.KeluargaUmatModel
		if err := keluargaModel.ScopeAlive(tx).
			First(&keluarga, "keluarga_umat_id = ?", in.KeluargaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrKeluargaTidakAda
			}
			return err
		}

		// snapshot nominal setting terkini (0 kalau belum di-set)
		setting, err := GetSetting(tx, in.Type, in.Year)
		if err != nil {
			return err
		}
		var totalDue int64
		if setting != nil {
			totalDue = setting.IuranSettingAmountIDR
		}

		// create-or-replace record (keluarga, jenis, tahun)
		var existing model.IuranPaymentModel
		err = tx.Where(
			"iuran_payment_keluarga_id = ? AND iuran_payment_type = ? AND iuran_payment_year = ?",
			in.KeluargaID, in.Type, in.Year,
		).First(&existing).Error

		isPaying := in.Status == model.IuranPaymentStatusLunas ||
			in.Status == model.IuranPaymentStatusSebagian

		firstPaymentOfYear := false
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			firstPaymentOfYear = isPaying
			existing = model.IuranPaymentModel{
				IuranPaymentKeluargaID: in.KeluargaID,
				IuranPaymentType:       in.Type,
				IuranPaymentYear:       in.Year,
			}
		case err != nil:
			return err
		default:
			// record lama belum_lunas yang baru dibayar juga dihitung
			// sebagai pembayaran pertama tahun itu
			firstPaymentOfYear = isPaying &&
				existing.IuranPaymentStatus == model.IuranPaymentStatusBelumLunas
		}

		existing.IuranPaymentAmountPaidIDR = in.AmountIDR
		existing.IuranPaymentStatus = in.Status
		existing.IuranPaymentTotalDueIDR = totalDue
		existing.IuranPaymentMonths = pq.Int64Array(in.Months)

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		// cermin ke buku kas untuk pembayaran pertama tahun itu
		if firstPaymentOfYear && in.AmountIDR > 0 {
			mirror := buildKasEntry(&existing, &keluarga, in)
			if err := tx.Create(mirror).Error; err != nil {
				return err
			}
		}

		saved = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// buildKasEntry membangun transaksi kas untuk setoran iuran.
func buildKasEntry(p *model.IuranPaymentModel, k *keluargaModel.KeluargaUmatModel, in RecordPaymentInput) *kasModel.KasTransaksiModel {
	fund := kasModel.KasFundIkata
	category := kasModel.CategoryIuranAnggota
	note := fmt.Sprintf("Iuran IKATA %d - %s", in.Year, k.KeluargaUmatNamaKepala)
	if in.Type == model.IuranTypeDanaMandiri {
		fund = kasModel.KasFundLingkungan
		category = kasModel.CategoryPenerimaanLain
		note = fmt.Sprintf("Setoran Dana Mandiri %d - %s", in.Year, k.KeluargaUmatNamaKepala)
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	return &kasModel.KasTransaksiModel{
		KasTransaksiFund:           fund,
		KasTransaksiDate:           date,
		KasTransaksiDebitIDR:       in.AmountIDR,
		KasTransaksiCategory:       category,
		KasTransaksiNote:           note,
		KasTransaksiKeluargaID:     &k.KeluargaUmatID,
		KasTransaksiApprovalStatus: kasModel.ApprovalStatusPending,
		KasTransaksiCreatedBy:      in.ActorID,
	}
}

// DeletePayment menghapus record pembayaran; ditolak kalau sudah disetor.
func DeletePayment(db *gorm.DB, paymentID uuid.UUID) error {
	var p model.IuranPaymentModel
	if err := db.First(&p, "iuran_payment_id = ?", paymentID).Error; err != nil {
		return err
	}
	if p.IuranPaymentSubmitted {
		return ErrSudahDisetor
	}
	return db.Delete(&p).Error
}

// MarkSubmitted menandai pembayaran sudah disetor ke paroki/keuskupan.
func MarkSubmitted(db *gorm.DB, paymentID uuid.UUID) error {
	res := db.Model(&model.IuranPaymentModel{}).
		Where("iuran_payment_id = ?", paymentID).
		Update("iuran_payment_submitted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
