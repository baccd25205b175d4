// file: internals/features/finance/iuran/service/dues_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	model "lingkunganku_backend/internals/features/finance/iuran/model"
	keluargaModel "lingkunganku_backend/internals/features/umat/keluarga/model"
)

var ErrNominalInvalid = errors.New("nominal iuran harus lebih dari 0")

/*
   SetDues meng-upsert nominal iuran (jenis, tahun) lalu membangun ulang
   tunggakan_cache untuk tahun itu. Seluruh mutasi berjalan dalam SATU
   transaksi DB: sukses semua atau batal semua. Mengembalikan jumlah entri
   cache yang diperbarui.

   Aturan rebuild:
   - Tiap kepala keluarga aktif TANPA record pembayaran (jenis, tahun):
     pastikan entri cache ada, tambah tahun bila belum tercatat.
   - Entri cache lama yang sudah mencakup tahun itu ikut dihitung ulang
     dengan nominal baru, meski keluarganya tidak masuk set "baru menunggak".
   - Total tiap entri = Σ nominal per tahun di daftar tahunnya; tahun yang
     sedang dimutasi memakai nominal baru, tahun lain memakai setting
     masing-masing. Satu keluarga diproses paling banyak sekali per call.
*/
func SetDues(db *gorm.DB, iuranType model.IuranType, year int, amountIDR int64) (int, error) {
	if amountIDR <= 0 {
		return 0, ErrNominalInvalid
	}
	if !model.ValidIuranType(iuranType) {
		return 0, fmt.Errorf("jenis iuran tidak dikenal: %s", iuranType)
	}

	updated := 0
	err := db.Transaction(func(tx *gorm.DB) error {
		// 1) Upsert setting (jenis, tahun)
		var setting model.IuranSettingModel
		err := tx.Where("iuran_setting_type = ? AND iuran_setting_year = ?", iuranType, year).
			First(&setting).Error
		switch {
		case err == nil:
			setting.IuranSettingAmountIDR = amountIDR
			if err := tx.Save(&setting).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			setting = model.IuranSettingModel{
				IuranSettingType:      iuranType,
				IuranSettingYear:      year,
				IuranSettingAmountIDR: amountIDR,
			}
			if err := tx.Create(&setting).Error; err != nil {
				return err
			}
		default:
			return err
		}

		// 2) Semua setting jenis ini → map tahun → nominal (utk recompute)
		var allSettings []model.IuranSettingModel
		if err := tx.Where("iuran_setting_type = ?", iuranType).Find(&allSettings).Error; err != nil {
			return err
		}
		amountByYear := make(map[int]int64, len(allSettings))
		for _, s := range allSettings {
			amountByYear[s.IuranSettingYear] = s.IuranSettingAmountIDR
		}
		amountByYear[year] = amountIDR // nominal yang baru di-set menang

		// 3) Kepala keluarga aktif TANPA record pembayaran (jenis, tahun)
		var unpaid []keluargaModel.KeluargaUmatModel
		if err := keluargaModel.ScopeAktif(tx).
			Where(`NOT EXISTS (
				SELECT 1 FROM iuran_payments p
				WHERE p.iuran_payment_keluarga_id = keluarga_umat.keluarga_umat_id
				  AND p.iuran_payment_type = ?
				  AND p.iuran_payment_year = ?
			)`, iuranType, year).
			Find(&unpaid).Error; err != nil {
			return err
		}

		// 4) Entri cache jenis ini yang sudah ada
		var cached []model.TunggakanCacheModel
		if err := tx.Where("tunggakan_type = ?", iuranType).Find(&cached).Error; err != nil {
			return err
		}
		cacheByKeluarga := make(map[uuid.UUID]*model.TunggakanCacheModel, len(cached))
		for i := range cached {
			cacheByKeluarga[cached[i].TunggakanKeluargaID] = &cached[i]
		}

		// 5) Kumpulkan entri yang tersentuh; tiap keluarga hanya sekali
		touched := make(map[uuid.UUID]*model.TunggakanCacheModel)

		for i := range unpaid {
			kid := unpaid[i].KeluargaUmatID
			entry, ok := cacheByKeluarga[kid]
			if !ok {
				entry = &model.TunggakanCacheModel{
					TunggakanKeluargaID: kid,
					TunggakanType:       iuranType,
					TunggakanYears:      pq.Int64Array{},
				}
				cacheByKeluarga[kid] = entry
			}
			if !entry.HasYear(year) {
				entry.TunggakanYears = append(entry.TunggakanYears, int64(year))
			}
			touched[kid] = entry
		}

		// entri lama yang sudah mencakup tahun ini ikut dihitung ulang
		for i := range cached {
			if cached[i].HasYear(year) {
				if _, already := touched[cached[i].TunggakanKeluargaID]; !already {
					touched[cached[i].TunggakanKeluargaID] = &cached[i]
				}
			}
		}

		// 6) Recompute total per entri, lalu simpan
		for _, entry := range touched {
			var total int64
			for _, y := range entry.TunggakanYears {
				total += amountByYear[int(y)]
			}
			entry.TunggakanTotalIDR = total
			entry.TunggakanUpdatedAt = time.Now().UTC()

			if err := tx.Save(entry).Error; err != nil {
				return err
			}
			updated++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// GetSetting mengambil setting iuran (jenis, tahun); nil kalau belum ada.
func GetSetting(db *gorm.DB, iuranType model.IuranType, year int) (*model.IuranSettingModel, error) {
	var setting model.IuranSettingModel
	err := db.Where("iuran_setting_type = ? AND iuran_setting_year = ?", iuranType, year).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
