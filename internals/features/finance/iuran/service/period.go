// file: internals/features/finance/iuran/service/period.go
package service

import "github.com/lib/pq"

// Nama bulan untuk label periode tunggakan.
var namaBulan = [13]string{
	"", // index 0 tidak dipakai
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

const LabelSetahunPenuh = "Januari - Desember"

// MonthRangeLabel membuat label "Maret - April" (atau "Maret" kalau satu bulan).
// from/to di luar 1..12 dianggap setahun penuh.
func MonthRangeLabel(from, to int) string {
	if from < 1 || to > 12 || from > to {
		return LabelSetahunPenuh
	}
	if from == to {
		return namaBulan[from]
	}
	return namaBulan[from] + " - " + namaBulan[to]
}

// isPrefixMonths: true kalau bulan tercakup persis {1..k} (urutan bebas, tanpa duplikat).
// Pembayaran bulan loncat-loncat (mis. hanya Maret) TIDAK dianggap prefix;
// label periode jatuh ke setahun penuh. Perilaku ini disengaja dipertahankan
// sebagai aproksimasi yang sudah dikenal, jangan "diperbaiki" diam-diam.
func isPrefixMonths(months pq.Int64Array) (int, bool) {
	if len(months) == 0 {
		return 0, false
	}
	seen := [13]bool{}
	max := 0
	for _, m := range months {
		if m < 1 || m > 12 || seen[m] {
			return 0, false
		}
		seen[m] = true
		if int(m) > max {
			max = int(m)
		}
	}
	if max != len(months) {
		return 0, false
	}
	return max, true
}

// ValidMonths memastikan daftar bulan ⊆ {1..12} tanpa duplikat.
func ValidMonths(months []int64) bool {
	if len(months) == 0 {
		return false
	}
	seen := [13]bool{}
	for _, m := range months {
		if m < 1 || m > 12 || seen[m] {
			return false
		}
		seen[m] = true
	}
	return true
}
