// file: internals/features/finance/kas/model/kas_category_model.go
package model

// Enum kategori transaksi kas. Daftar tertutup, beda per kas.
type KasCategory string

// Kategori Kas Lingkungan
const (
	CategoryKolekte1            KasCategory = "kolekte_1"
	CategoryKolekte2            KasCategory = "kolekte_2"
	CategorySumbanganUmat       KasCategory = "sumbangan_umat"
	CategoryPenerimaanLain      KasCategory = "penerimaan_lain"
	CategoryBiayaOperasional    KasCategory = "biaya_operasional"
	CategoryBiayaKegiatan       KasCategory = "biaya_kegiatan"
	CategoryPembelian           KasCategory = "pembelian"
	CategorySumbanganDuka       KasCategory = "sumbangan_duka"
	CategoryTransferDanaMandiri KasCategory = "transfer_dana_mandiri"
	CategoryLainLain            KasCategory = "lain_lain"
)

// Kategori Kas IKATA
const (
	CategoryIuranAnggota           KasCategory = "iuran_anggota"
	CategoryTransferDanaLingkungan KasCategory = "transfer_dana_lingkungan"
	CategorySumbanganAnggota       KasCategory = "sumbangan_anggota"
	CategoryUangDuka               KasCategory = "uang_duka"
	CategoryKunjunganKasih         KasCategory = "kunjungan_kasih"
	CategoryCinderamataKelahiran   KasCategory = "cinderamata_kelahiran"
	CategoryCinderamataPernikahan  KasCategory = "cinderamata_pernikahan"
	CategoryUangAkomodasi          KasCategory = "uang_akomodasi"
	// penerimaan_lain, pembelian, lain_lain dipakai kedua kas
)

// Arah kategori: true = pemasukan (debit), false = pengeluaran (kredit).
// lain_lain bisa dua arah; di map ini dianggap pemasukan, arah final
// ditentukan request (lihat dto).
var categoryDirection = map[KasFund]map[KasCategory]bool{
	KasFundLingkungan: {
		CategoryKolekte1:            true,
		CategoryKolekte2:            true,
		CategorySumbanganUmat:       true,
		CategoryPenerimaanLain:      true,
		CategoryBiayaOperasional:    false,
		CategoryBiayaKegiatan:       false,
		CategoryPembelian:           false,
		CategorySumbanganDuka:       false,
		CategoryTransferDanaMandiri: false,
		CategoryLainLain:            true,
	},
	KasFundIkata: {
		CategoryIuranAnggota:           true,
		CategoryTransferDanaLingkungan: true,
		CategorySumbanganAnggota:       true,
		CategoryPenerimaanLain:         true,
		CategoryUangDuka:               false,
		CategoryKunjunganKasih:         false,
		CategoryCinderamataKelahiran:   false,
		CategoryCinderamataPernikahan:  false,
		CategoryUangAkomodasi:          false,
		CategoryPembelian:              false,
		CategoryLainLain:               true,
	},
}

// ValidCategory mengecek kategori terdaftar untuk kas tersebut.
func ValidCategory(fund KasFund, cat KasCategory) bool {
	dirs, ok := categoryDirection[fund]
	if !ok {
		return false
	}
	_, ok = dirs[cat]
	return ok
}

// CategoryIsInflow: arah default kategori (pemasukan?).
func CategoryIsInflow(fund KasFund, cat KasCategory) bool {
	return categoryDirection[fund][cat]
}

// Categories mengembalikan daftar kategori sebuah kas (untuk endpoint meta/UI).
func Categories(fund KasFund) []KasCategory {
	dirs := categoryDirection[fund]
	out := make([]KasCategory, 0, len(dirs))
	for cat := range dirs {
		out = append(out, cat)
	}
	return out
}
