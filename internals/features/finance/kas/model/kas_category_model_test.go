// file: internals/features/finance/kas/model/kas_category_model_test.go
package model

import "testing"

func TestValidCategory(t *testing.T) {
	tests := []struct {
		name string
		fund KasFund
		cat  KasCategory
		want bool
	}{
		{"kolekte di lingkungan", KasFundLingkungan, CategoryKolekte1, true},
		{"iuran anggota di ikata", KasFundIkata, CategoryIuranAnggota, true},
		{"iuran anggota bukan kategori lingkungan", KasFundLingkungan, CategoryIuranAnggota, false},
		{"kolekte bukan kategori ikata", KasFundIkata, CategoryKolekte1, false},
		{"lain_lain berlaku di kedua kas", KasFundIkata, CategoryLainLain, true},
		{"pembelian berlaku di kedua kas", KasFundLingkungan, CategoryPembelian, true},
		{"fund tak dikenal", KasFund("parkir"), CategoryKolekte1, false},
		{"kategori ngarang", KasFundLingkungan, KasCategory("arisan"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidCategory(tt.fund, tt.cat); got != tt.want {
				t.Errorf("ValidCategory(%s, %s) = %v, mau %v", tt.fund, tt.cat, got, tt.want)
			}
		})
	}
}

func TestCategoryIsInflow(t *testing.T) {
	tests := []struct {
		fund KasFund
		cat  KasCategory
		want bool
	}{
		{KasFundLingkungan, CategoryKolekte1, true},
		{KasFundLingkungan, CategoryBiayaOperasional, false},
		{KasFundLingkungan, CategoryTransferDanaMandiri, false},
		{KasFundIkata, CategoryTransferDanaLingkungan, true},
		{KasFundIkata, CategoryUangDuka, false},
	}
	for _, tt := range tests {
		if got := CategoryIsInflow(tt.fund, tt.cat); got != tt.want {
			t.Errorf("CategoryIsInflow(%s, %s) = %v, mau %v", tt.fund, tt.cat, got, tt.want)
		}
	}
}

func TestCategoriesLengkap(t *testing.T) {
	if got := len(Categories(KasFundLingkungan)); got != 10 {
		t.Errorf("kategori lingkungan = %d, mau 10", got)
	}
	if got := len(Categories(KasFundIkata)); got != 11 {
		t.Errorf("kategori ikata = %d, mau 11", got)
	}
}
