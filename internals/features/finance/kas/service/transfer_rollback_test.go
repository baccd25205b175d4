// file: internals/features/finance/kas/service/transfer_rollback_test.go
package service

import (
	"errors"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	model "lingkunganku_backend/internals/features/finance/kas/model"
)

// Butuh Postgres sungguhan: rollback transaksi tidak bisa diverifikasi tanpa DB.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL belum diset, lewati test ber-DB")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("konek DB test: %v", err)
	}
	if err := db.AutoMigrate(&model.KasTransaksiModel{}); err != nil {
		t.Fatalf("migrasi DB test: %v", err)
	}
	return db
}

// Insert cermin dipaksa gagal → insert sumber ikut batal, tidak ada baris
// setengah jadi di kedua kas.
func TestCreateWithMirrorRollback(t *testing.T) {
	db := openTestDB(t)
	marker := "rollback-transfer-" + time.Now().Format("20060102150405.000000000")
	t.Cleanup(func() {
		db.Where("kas_transaksi_note LIKE ?", "%"+marker+"%").Delete(&model.KasTransaksiModel{})
	})

	gagal := errors.New("insert cermin dipaksa gagal")
	mirrorCreateFailpoint = func(*model.KasTransaksiModel) error { return gagal }
	defer func() { mirrorCreateFailpoint = nil }()

	src := &model.KasTransaksiModel{
		KasTransaksiFund:      model.KasFundLingkungan,
		KasTransaksiDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		KasTransaksiCreditIDR: 300_000,
		KasTransaksiCategory:  model.CategoryTransferDanaMandiri,
		KasTransaksiNote:      marker,
	}

	if err := CreateWithMirror(db, src); !errors.Is(err, gagal) {
		t.Fatalf("CreateWithMirror = %v, mau error failpoint", err)
	}

	var n int64
	if err := db.Model(&model.KasTransaksiModel{}).
		Where("kas_transaksi_note LIKE ?", "%"+marker+"%").
		Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("setelah rollback tersisa %d baris, mau 0", n)
	}
}

func TestCreateWithMirrorBerhasil(t *testing.T) {
	db := openTestDB(t)
	marker := "transfer-ok-" + time.Now().Format("20060102150405.000000000")
	t.Cleanup(func() {
		db.Where("kas_transaksi_note LIKE ?", "%"+marker+"%").Delete(&model.KasTransaksiModel{})
	})

	src := &model.KasTransaksiModel{
		KasTransaksiFund:      model.KasFundLingkungan,
		KasTransaksiDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		KasTransaksiCreditIDR: 300_000,
		KasTransaksiCategory:  model.CategoryTransferDanaMandiri,
		KasTransaksiNote:      marker,
	}

	if err := CreateWithMirror(db, src); err != nil {
		t.Fatalf("CreateWithMirror = %v", err)
	}
	if src.KasTransaksiMirrorID == nil {
		t.Fatal("mirror_id sumber tidak terisi")
	}

	var mirror model.KasTransaksiModel
	if err := db.Where("kas_transaksi_id = ?", *src.KasTransaksiMirrorID).
		First(&mirror).Error; err != nil {
		t.Fatalf("cermin tidak ditemukan: %v", err)
	}
	if mirror.KasTransaksiFund != model.KasFundIkata ||
		mirror.KasTransaksiDebitIDR != 300_000 ||
		mirror.KasTransaksiMirrorID == nil ||
		*mirror.KasTransaksiMirrorID != src.KasTransaksiID {
		t.Errorf("cermin tidak sesuai: %+v", mirror)
	}
}
